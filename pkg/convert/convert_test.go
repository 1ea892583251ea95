package convert_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calintat/sd-visualiser/internal/fixture"
	"github.com/calintat/sd-visualiser/pkg/convert"
	sderrors "github.com/calintat/sd-visualiser/pkg/errors"
	"github.com/calintat/sd-visualiser/pkg/hypergraph"
	"github.com/calintat/sd-visualiser/pkg/syntax"
	"github.com/calintat/sd-visualiser/pkg/syntax/spartan"
)

func variable(name string) spartan.Value {
	return spartan.Variable{Name: spartan.Var(name)}
}

func op(o spartan.Op, args ...spartan.Arg) spartan.Operation {
	return spartan.Operation{Op: o, Args: args}
}

func thunk(body spartan.Expr, params ...spartan.Var) *spartan.Thunk {
	return &spartan.Thunk{Params: params, Body: body}
}

func TestConvert_Simple(t *testing.T) {
	// bind x = 1; bind y = plus(x, 2); yield y
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "x", Value: op(spartan.Number(1))},
			{Def: "y", Value: op(spartan.Plus, variable("x"), op(spartan.Number(2)))},
		},
		Values: []spartan.Value{variable("y")},
	}

	g, err := convert.Convert(e)
	require.NoError(t, err)

	assert.Len(t, g.Nodes(), 3)
	assert.Empty(t, g.Inputs())

	out, ok := g.Outputs()[0].Link()
	require.True(t, ok)
	v, ok := out.Weight().ToVar()
	require.True(t, ok)
	assert.Equal(t, spartan.Var("y"), v)
}

func TestConvert_Shadowed(t *testing.T) {
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "x", Value: op(spartan.Number(1))},
			{Def: "x", Value: op(spartan.Number(2))},
		},
		Values: []spartan.Value{variable("x")},
	}

	_, err := convert.Convert(e)
	require.Error(t, err)
	assert.Equal(t, sderrors.ErrCodeShadowed, sderrors.GetCode(err))
}

func TestConvert_ThunkParamShadowsOuterName(t *testing.T) {
	// shadowing is rejected within a scope only; a thunk parameter may
	// reuse an enclosing name, and the body resolves to the parameter
	body := spartan.Expr{
		Values: []spartan.Value{op(spartan.Plus, variable("x"), op(spartan.Number(2)))},
	}
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "x", Value: op(spartan.Number(1))},
		},
		Values: []spartan.Value{variable("x"), op(spartan.Lambda, thunk(body, "x"))},
	}

	g, err := convert.Convert(e)
	require.NoError(t, err)

	th := findThunks(g)
	require.Len(t, th, 1)
	assert.Empty(t, th[0].FreeInputs(), "body should capture nothing: x is the parameter")
}

func TestConvert_Aliased(t *testing.T) {
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "x", Value: op(spartan.Number(1))},
			{Def: "y", Value: variable("x")},
		},
		Values: []spartan.Value{variable("y")},
	}

	_, err := convert.Convert(e)
	require.Error(t, err)
	assert.Equal(t, sderrors.ErrCodeAliased, sderrors.GetCode(err))
}

func TestConvert_UndefinedVariable(t *testing.T) {
	e := &spartan.Expr{
		Values: []spartan.Value{op(spartan.Plus, variable("y"), op(spartan.Number(1)))},
	}

	_, err := convert.Convert(e)
	require.Error(t, err)
	assert.Equal(t, sderrors.ErrCodeUndefinedVariable, sderrors.GetCode(err))
	assert.Contains(t, err.Error(), "y")
}

func TestConvert_AllowFreeVariables(t *testing.T) {
	// plus(a, times(b, 2)) with a and b open becomes a graph with two
	// inputs, ordered by name
	e := &spartan.Expr{
		Values: []spartan.Value{op(spartan.Plus, variable("a"), op(spartan.Times, variable("b"), op(spartan.Number(2))))},
	}

	g, err := convert.ConvertWith(e, convert.Options{AllowFreeVariables: true})
	require.NoError(t, err)

	inputs := g.Inputs()
	require.Len(t, inputs, 2)
	for i, want := range []spartan.Var{"a", "b"} {
		w := inputs[i].Weight()
		assert.Equal(t, convert.NameFreeVar, w.Kind)
		assert.Equal(t, want, w.Var)
	}
}

func TestConvert_ThunkOutputArity(t *testing.T) {
	body := spartan.Expr{
		Values: []spartan.Value{op(spartan.Number(1)), op(spartan.Number(2))},
	}
	e := &spartan.Expr{
		Values: []spartan.Value{op(spartan.Lambda, thunk(body, "z"))},
	}

	_, err := convert.Convert(e)
	require.Error(t, err)
	assert.Equal(t, sderrors.ErrCodeThunkOutput, sderrors.GetCode(err))
}

func TestConvert_ThunkCapture(t *testing.T) {
	// bind one = 1
	// bind f = lambda(thunk z. bind w = plus(z, one); yield w)
	// yield app(f, 2)
	body := spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "w", Value: op(spartan.Plus, variable("z"), variable("one"))},
		},
		Values: []spartan.Value{variable("w")},
	}
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "one", Value: op(spartan.Number(1))},
			{Def: "f", Value: op(spartan.Lambda, thunk(body, "z"))},
		},
		Values: []spartan.Value{op(spartan.App, variable("f"), op(spartan.Number(2)))},
	}

	g, err := convert.Convert(e)
	require.NoError(t, err)

	th := findThunks(g)
	require.Len(t, th, 1)

	free := th[0].FreeInputs()
	require.Len(t, free, 1)
	v, ok := free[0].Weight().ToVar()
	require.True(t, ok)
	assert.Equal(t, spartan.Var("one"), v)

	// the capture is fed by the binding in the enclosing region
	node, ok := free[0].Node()
	require.True(t, ok)
	one, ok := node.(hypergraph.Operation[spartan.Op, convert.Name[spartan.Var]])
	require.True(t, ok)
	assert.Equal(t, spartan.Number(1), one.Label())
}

func TestConvert_MutualRecursion(t *testing.T) {
	// bind f = lambda(thunk n. app(g, n))
	// bind g = lambda(thunk n. app(f, n))
	// yield f
	lam := func(callee string) spartan.Value {
		body := spartan.Expr{
			Values: []spartan.Value{op(spartan.App, variable(callee), variable("n"))},
		}
		return op(spartan.Lambda, thunk(body, "n"))
	}
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "f", Value: lam("g")},
			{Def: "g", Value: lam("f")},
		},
		Values: []spartan.Value{variable("f")},
	}

	g, err := convert.Convert(e)
	require.NoError(t, err)

	th := findThunks(g)
	require.Len(t, th, 2)

	captured := make(map[spartan.Var]bool)
	for _, t2 := range th {
		free := t2.FreeInputs()
		require.Len(t, free, 1)
		v, ok := free[0].Weight().ToVar()
		require.True(t, ok)
		captured[v] = true
	}
	assert.Equal(t, map[spartan.Var]bool{"f": true, "g": true}, captured)
}

func TestConvert_Fixtures(t *testing.T) {
	programs, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, programs)

	for _, p := range programs {
		t.Run(p.Name, func(t *testing.T) {
			expr := p.Build()

			fv := syntax.NewFreeVars[spartan.Op, spartan.Var]()
			free := syntax.SortedVars(fv.Expr(expr))
			names := make([]string, len(free))
			for i, v := range free {
				names[i] = string(v)
			}
			want := make([]string, 0, len(p.FreeVars))
			want = append(want, p.FreeVars...)
			sort.Strings(want)
			assert.Equal(t, want, names)

			opts := convert.Options{AllowFreeVariables: true}
			g1, err := convert.ConvertWith(expr, opts)
			require.NoError(t, err)

			// converting the same program again yields the same shape
			g2, err := convert.ConvertWith(expr, opts)
			require.NoError(t, err)
			assert.Equal(t, signature(g1), signature(g2))
		})
	}
}

func findThunks(g convert.Graph[spartan.Op, spartan.Var]) []hypergraph.Thunk[spartan.Op, convert.Name[spartan.Var]] {
	var out []hypergraph.Thunk[spartan.Op, convert.Name[spartan.Var]]
	for _, n := range g.AllNodes() {
		if th, ok := n.(hypergraph.Thunk[spartan.Op, convert.Name[spartan.Var]]); ok {
			out = append(out, th)
		}
	}
	return out
}

// signature flattens a graph into a comparable shape string: each node's
// kind and label in traversal order, with the variables its free inputs
// capture. Thunk addresses are random per conversion and deliberately
// excluded.
func signature(g convert.Graph[spartan.Op, spartan.Var]) []string {
	var sig []string
	for _, n := range g.AllNodes() {
		switch n := n.(type) {
		case hypergraph.Operation[spartan.Op, convert.Name[spartan.Var]]:
			sig = append(sig, "op:"+string(n.Label()))
		case hypergraph.Thunk[spartan.Op, convert.Name[spartan.Var]]:
			entry := "thunk:"
			for _, free := range n.FreeInputs() {
				if v, ok := free.Weight().ToVar(); ok {
					entry += fmt.Sprintf("[%s]", v)
				}
			}
			sig = append(sig, entry)
		}
	}
	return sig
}

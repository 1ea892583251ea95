package convert

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	sderrors "github.com/calintat/sd-visualiser/pkg/errors"
	"github.com/calintat/sd-visualiser/pkg/hypergraph"
	"github.com/calintat/sd-visualiser/pkg/observability"
	"github.com/calintat/sd-visualiser/pkg/syntax"
)

// Options configures a conversion.
type Options struct {
	// Logger receives debug-level progress events. Nil discards them.
	Logger *log.Logger

	// AllowFreeVariables exposes the program's free variables as graph
	// input ports instead of failing with UNDEFINED_VARIABLE. Inputs are
	// ordered by the variables' display strings.
	AllowFreeVariables bool
}

// Convert builds the hypergraph of expr with default options: no logging,
// free variables rejected.
func Convert[O, V hypergraph.Label](expr *syntax.Expr[O, V]) (Graph[O, V], error) {
	return ConvertWith(expr, Options{})
}

// ConvertWith builds the hypergraph of expr. On error no partial graph is
// returned. Conversion is synchronous and single-threaded; the returned
// graph is frozen and safe for concurrent reads.
func ConvertWith[O, V hypergraph.Label](expr *syntax.Expr[O, V], opts Options) (Graph[O, V], error) {
	start := time.Now()
	g, err := run(expr, opts)
	nodes := 0
	if err == nil {
		nodes = len(g.AllNodes())
	}
	observability.Convert().OnConvertComplete(nodes, time.Since(start), err)
	return g, err
}

func run[O, V hypergraph.Label](expr *syntax.Expr[O, V], opts Options) (Graph[O, V], error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fv := syntax.NewFreeVars[O, V]()
	free := syntax.SortedVars(fv.Expr(expr))
	observability.Convert().OnConvertStart(len(free))
	logger.Debug("analyzed program", "free variables", len(free))

	if !opts.AllowFreeVariables && len(free) > 0 {
		return Graph[O, V]{}, sderrors.New(sderrors.ErrCodeUndefinedVariable,
			"undefined variables: %s", joinVars(free))
	}

	weights := make([]Name[V], len(free))
	for i, v := range free {
		weights[i] = FreeVar(v)
	}
	b := hypergraph.New[O, Name[V]](weights, len(expr.Values))

	env := &environment[O, V]{
		frag:    b.Fragment,
		outputs: make(map[V]hypergraph.OutPort[O, Name[V]]),
		logger:  logger,
	}
	inputs := b.GraphInputs()
	for i, v := range free {
		if err := env.define(v, inputs[i]); err != nil {
			return Graph[O, V]{}, err
		}
	}

	if err := env.processExpr(expr); err != nil {
		return Graph[O, V]{}, err
	}
	if len(env.inputs) > 0 {
		names := make([]V, len(env.inputs))
		for i, p := range env.inputs {
			names[i] = p.name
		}
		return Graph[O, V]{}, sderrors.New(sderrors.ErrCodeUndefinedVariable,
			"undefined variables: %s", joinVars(names))
	}

	g, err := b.Build()
	if err != nil {
		return Graph[O, V]{}, sderrors.Wrap(sderrors.ErrCodeHypergraph, err, "building hypergraph")
	}
	return g, nil
}

// pendingInput is one unresolved variable reference: the in port that wants
// the value, and the name that should produce it.
type pendingInput[O, V hypergraph.Label] struct {
	port hypergraph.InPort[O, Name[V]]
	name V
}

// environment is the converter's per-scope state: the fragment being
// populated, the names the scope has defined, and the worklist of
// references still waiting for a definition. Each thunk gets a fresh
// environment; its leftover worklist is merged into the parent's when the
// thunk closes.
type environment[O, V hypergraph.Label] struct {
	frag    hypergraph.Fragment[O, Name[V]]
	inputs  []pendingInput[O, V]
	outputs map[V]hypergraph.OutPort[O, Name[V]]
	logger  *log.Logger
}

func (env *environment[O, V]) define(def V, out hypergraph.OutPort[O, Name[V]]) error {
	if _, ok := env.outputs[def]; ok {
		return sderrors.New(sderrors.ErrCodeShadowed, "cannot shadow %q", def)
	}
	env.outputs[def] = out
	return nil
}

func (env *environment[O, V]) link(out hypergraph.OutPort[O, Name[V]], in hypergraph.InPort[O, Name[V]]) error {
	if err := env.frag.Link(out, in); err != nil {
		return sderrors.Wrap(sderrors.ErrCodeHypergraph, err, "linking %s to %s", out, in)
	}
	return nil
}

// processExpr emits one scope: the yielded values into the region's graph
// outputs, then the bindings in reverse declaration order, then the
// worklist rescan that links up forward and recursive references.
func (env *environment[O, V]) processExpr(e *syntax.Expr[O, V]) error {
	outs := env.frag.GraphOutputs()
	for i, v := range e.Values {
		if err := env.valueInto(v, outs[i]); err != nil {
			return err
		}
	}

	for i := len(e.Binds) - 1; i >= 0; i-- {
		if err := env.bindValue(e.Binds[i].Def, e.Binds[i].Value); err != nil {
			return err
		}
	}
	env.logger.Debug("processed binds", "defined", len(env.outputs), "pending", len(env.inputs))

	// link up loops: references this scope can now satisfy are linked; the
	// rest stay pending for the enclosing scope
	rest := env.inputs[:0]
	for _, p := range env.inputs {
		out, ok := env.outputs[p.name]
		if !ok {
			rest = append(rest, p)
			continue
		}
		if err := env.link(out, p.port); err != nil {
			return err
		}
	}
	env.inputs = rest
	return nil
}

// bindValue emits a binding: the defined name becomes the weight of the
// operation's result port. A bare variable on the right-hand side is an
// aliasing error; bindings must define, not rename.
func (env *environment[O, V]) bindValue(def V, v syntax.Value[O, V]) error {
	switch val := v.(type) {
	case syntax.Variable[O, V]:
		return sderrors.New(sderrors.ErrCodeAliased, "cannot alias %q to %q", def, val.Name)
	case syntax.Operation[O, V]:
		out, err := env.emitOperation(val, BoundVar(def))
		if err != nil {
			return err
		}
		return env.define(def, out)
	default:
		return sderrors.New(sderrors.ErrCodeInternal, "unknown value type %T", v)
	}
}

// valueInto emits a value in consumption position, linking its result into
// the given in port. Variable references are deferred to the worklist.
func (env *environment[O, V]) valueInto(v syntax.Value[O, V], in hypergraph.InPort[O, Name[V]]) error {
	switch val := v.(type) {
	case syntax.Variable[O, V]:
		env.inputs = append(env.inputs, pendingInput[O, V]{port: in, name: val.Name})
		return nil
	case syntax.Operation[O, V]:
		out, err := env.emitOperation(val, Name[V]{Kind: NameResult})
		if err != nil {
			return err
		}
		return env.link(out, in)
	default:
		return sderrors.New(sderrors.ErrCodeInternal, "unknown value type %T", v)
	}
}

func (env *environment[O, V]) emitOperation(op syntax.Operation[O, V], result Name[V]) (hypergraph.OutPort[O, Name[V]], error) {
	var zero hypergraph.OutPort[O, Name[V]]
	node := env.frag.AddOperation(len(op.Args), []Name[V]{result}, op.Op)
	ins := node.Inputs()
	// arguments are processed right to left
	for i := len(op.Args) - 1; i >= 0; i-- {
		if th, ok := op.Args[i].(*syntax.Thunk[O, V]); ok {
			if err := env.thunkInto(th, ins[i]); err != nil {
				return zero, err
			}
			continue
		}
		if err := env.valueInto(op.Args[i].(syntax.Value[O, V]), ins[i]); err != nil {
			return zero, err
		}
	}
	outs := node.Outputs()
	if len(outs) == 0 {
		return zero, sderrors.New(sderrors.ErrCodeNoOutput, "operation %q has no output", op.Op)
	}
	return outs[0], nil
}

// thunkInto emits a thunk argument: a thunk node whose interior is
// populated by a fresh environment seeded with the formal parameters.
func (env *environment[O, V]) thunkInto(th *syntax.Thunk[O, V], in hypergraph.InPort[O, Name[V]]) error {
	if len(th.Body.Values) != 1 {
		return sderrors.New(sderrors.ErrCodeThunkOutput,
			"thunk body must yield exactly one value, got %d", len(th.Body.Values))
	}
	bound := make([]Name[V], len(th.Params))
	for i, p := range th.Params {
		bound[i] = BoundVar(p)
	}
	tnode := env.frag.AddThunk(bound, []Name[V]{{Kind: NameThunk, Addr: uuid.New()}})

	err := env.frag.InThunk(tnode, func(inner hypergraph.Fragment[O, Name[V]]) error {
		tenv := &environment[O, V]{
			frag:    inner,
			outputs: make(map[V]hypergraph.OutPort[O, Name[V]]),
			logger:  env.logger,
		}
		boundPorts := tnode.BoundInputs()
		for i, p := range th.Params {
			if err := tenv.define(p, boundPorts[i]); err != nil {
				return err
			}
		}
		if err := tenv.processExpr(&th.Body); err != nil {
			return err
		}
		// leftovers are captures, not errors: the enclosing scope (or an
		// ancestor) resolves them, and the build derives the free ports
		env.inputs = append(env.inputs, tenv.inputs...)
		return nil
	})
	if err != nil {
		return err
	}

	outs := tnode.Outputs()
	if len(outs) == 0 {
		return sderrors.New(sderrors.ErrCodeNoOutput, "thunk has no output")
	}
	return env.link(outs[0], in)
}

func joinVars[V hypergraph.Label](names []V) string {
	var b strings.Builder
	for i, v := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

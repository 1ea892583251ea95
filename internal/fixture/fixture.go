// Package fixture loads TOML-encoded example programs for tests. Each
// fixture file holds one program as a nested table tree mirroring the AST,
// together with the expected free variables. The format is test tooling
// only; the conversion core itself consumes ASTs, never files.
package fixture

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/calintat/sd-visualiser/pkg/syntax/spartan"
)

// Program is one decoded fixture.
type Program struct {
	Name     string   `toml:"name"`
	FreeVars []string `toml:"free_vars"`
	Expr     ExprSpec `toml:"expr"`
}

// ExprSpec mirrors syntax.Expr.
type ExprSpec struct {
	Binds  []BindSpec  `toml:"bind"`
	Values []ValueSpec `toml:"value"`
}

// BindSpec mirrors syntax.Bind.
type BindSpec struct {
	Def   string    `toml:"def"`
	Value ValueSpec `toml:"value"`
}

// ValueSpec is a variable reference (var set) or an operation (op set).
type ValueSpec struct {
	Var  string    `toml:"var"`
	Op   string    `toml:"op"`
	Args []ArgSpec `toml:"args"`
}

// ArgSpec is a value argument, or a thunk when body is present.
type ArgSpec struct {
	Var    string    `toml:"var"`
	Op     string    `toml:"op"`
	Args   []ArgSpec `toml:"args"`
	Params []string  `toml:"params"`
	Body   *ExprSpec `toml:"body"`
}

// Load decodes one fixture file.
func Load(path string) (*Program, error) {
	var p Program
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("decoding fixture %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(path)
	}
	return &p, nil
}

// LoadDir decodes every *.toml fixture in dir, sorted by filename.
func LoadDir(dir string) ([]*Program, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	programs := make([]*Program, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// Build converts the decoded program into a spartan AST.
func (p *Program) Build() *spartan.Expr {
	return buildExpr(&p.Expr)
}

func buildExpr(s *ExprSpec) *spartan.Expr {
	e := &spartan.Expr{}
	for _, b := range s.Binds {
		e.Binds = append(e.Binds, spartan.Bind{
			Def:   spartan.Var(b.Def),
			Value: buildValue(&b.Value),
		})
	}
	for i := range s.Values {
		e.Values = append(e.Values, buildValue(&s.Values[i]))
	}
	return e
}

func buildValue(s *ValueSpec) spartan.Value {
	if s.Var != "" {
		return spartan.Variable{Name: spartan.Var(s.Var)}
	}
	return spartan.Operation{Op: spartan.Op(s.Op), Args: buildArgs(s.Args)}
}

func buildArgs(specs []ArgSpec) []spartan.Arg {
	args := make([]spartan.Arg, 0, len(specs))
	for i := range specs {
		args = append(args, buildArg(&specs[i]))
	}
	return args
}

func buildArg(s *ArgSpec) spartan.Arg {
	if s.Body != nil {
		params := make([]spartan.Var, len(s.Params))
		for i, p := range s.Params {
			params[i] = spartan.Var(p)
		}
		return &spartan.Thunk{Params: params, Body: *buildExpr(s.Body)}
	}
	if s.Var != "" {
		return spartan.Variable{Name: spartan.Var(s.Var)}
	}
	return spartan.Operation{Op: spartan.Op(s.Op), Args: buildArgs(s.Args)}
}

// Package pkg provides the core libraries for hierarchical string diagram
// construction.
//
// # Overview
//
// The libraries turn a scoped term language into a hierarchical hypergraph,
// the intermediate representation behind string diagram visualization.
// Nested thunks become nested graph regions, and variable capture becomes
// explicit wiring across region boundaries. The pkg directory is organized
// into four main areas:
//
//  1. [syntax] - The generic term language (binding groups, operations,
//     thunks) and free variable analysis
//  2. [hypergraph] - The hierarchical hypergraph arena, builder, and build
//     validation
//  3. [convert] - The translation from terms to hypergraphs
//  4. [errors] / [observability] - Structured errors and instrumentation
//     hooks shared by the above
//
// # Architecture
//
// The typical data flow:
//
//	syntax.Expr (AST with thunks and binding groups)
//	         ↓
//	    [syntax] free variable analysis
//	         ↓
//	    [convert] scope-by-scope emission into a builder
//	         ↓
//	    [hypergraph] build: validation, free input derivation, ordering
//	         ↓
//	    frozen hypergraph.Graph, ready for layout and rendering
//
// # Quick Start
//
// Convert a small program and walk the resulting graph:
//
//	import (
//	    "github.com/calintat/sd-visualiser/pkg/convert"
//	    "github.com/calintat/sd-visualiser/pkg/syntax/spartan"
//	)
//
//	// bind x = 1; bind y = plus(x, 2); yield y
//	e := &spartan.Expr{
//	    Binds: []spartan.Bind{
//	        {Def: "x", Value: spartan.Operation{Op: spartan.Number(1)}},
//	        {Def: "y", Value: spartan.Operation{Op: spartan.Plus, Args: []spartan.Arg{
//	            spartan.Variable{Name: "x"},
//	            spartan.Operation{Op: spartan.Number(2)},
//	        }}},
//	    },
//	    Values: []spartan.Value{spartan.Variable{Name: "y"}},
//	}
//
//	g, err := convert.Convert(e)
//	for _, node := range g.Nodes() {
//	    fmt.Println(node)
//	}
//
// # Main Packages
//
// [syntax] - The generic AST, parameterized over operator and variable label
// types. Binding groups are mutually recursive: every definition in a group
// is visible to every right-hand side. Free variable analysis is memoized
// per expression and per thunk.
//
// [syntax/spartan] - A concrete label vocabulary (arithmetic, conditionals,
// reference cells, lambda and application) used by examples, fixtures, and
// tests.
//
// [hypergraph] - The hierarchical hypergraph. All ports, nodes, and regions
// live in one arena; handles are cheap comparable values. A builder accepts
// nodes and links in any order, and Build validates linkage, derives each
// thunk's free inputs structurally, orders every region topologically
// (cycles allowed), and freezes the arena for concurrent reads.
//
// [convert] - The translation from terms to hypergraphs. Works scope by
// scope with a worklist of unresolved references, so forward references and
// recursion through thunks need no pre-pass. Each out port is weighted with
// a [convert.Name] recording what it stood for in the source.
//
// [errors] - Structured errors with machine-readable codes (SHADOWED,
// ALIASED, UNDEFINED_VARIABLE, THUNK_OUTPUT, ...).
//
// [observability] - Hook registration for conversion and build events,
// no-op by default.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/hypergraph/... # Specific package
//	go test -run Example         # Examples only
//
// [syntax]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/syntax
// [syntax/spartan]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/syntax/spartan
// [hypergraph]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/hypergraph
// [convert]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/convert
// [errors]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/errors
// [observability]: https://pkg.go.dev/github.com/calintat/sd-visualiser/pkg/observability
package pkg

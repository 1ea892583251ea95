// Package convert turns a scoped abstract syntax tree into a hierarchical
// hypergraph.
//
// The converter walks the tree once, top down, driving a hypergraph builder
// with a per-scope environment: names already defined map to their producing
// out ports, and references that cannot be resolved yet sit on a pending
// worklist. Bindings of a scope are emitted in declaration order but
// resolved in reverse, and the worklist is rescanned after every binding
// group, which is what makes forward references and mutual recursion inside
// one group work. Pending references left over when a thunk's scope closes
// are not errors; they bubble into the enclosing scope's worklist and the
// build's structural derivation turns them into the thunk's free input
// ports.
//
// Scope errors (shadowing, aliasing a name to a bare variable) abort the
// conversion immediately with no partial graph. Undefined names are an
// error by default; [Options.AllowFreeVariables] instead exposes them as
// graph input ports, ordered by display string.
package convert

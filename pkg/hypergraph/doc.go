// Package hypergraph implements a hierarchical hypergraph: a directed graph
// whose edges connect one producing out port to any number of consuming in
// ports, and whose thunk nodes contain nested interior graphs of their own.
//
// The package is the construction core of the string-diagram toolchain.
// Downstream consumers (diagram normalization, layout, rendering) operate on
// the frozen [Graph] produced here; they live outside this module.
//
// # Construction
//
// A [Builder] is created with the graph's interface ports and mutated through
// its embedded [Fragment]: [Fragment.AddOperation] allocates leaf computation
// nodes, [Fragment.AddThunk] allocates nested regions, and [Fragment.Link]
// connects an out port to an in port. Thunk interiors are populated through
// [Fragment.InThunk], which hands the callback a fragment scoped to the
// interior graph.
//
// Construction is permissive: an unlinked in port is not an error until
// [Builder.Build], which validates the whole structure, derives every thunk's
// free input ports, topologically orders each scope, and freezes the result.
//
// # Handles
//
// [OutPort], [InPort], [Operation], [Thunk], and [Graph] are small value
// handles into a shared arena. Handles are comparable with ==; two handles are
// equal exactly when they identify the same port, node, or scope. The zero
// value of a handle is not usable.
//
// # Concurrency
//
// A Builder and its fragments assume a single writer; concurrent construction
// requires external synchronization. Once built, the graph is immutable and
// safe for concurrent reads.
package hypergraph

package hypergraph

// Graph is a view of one lexical region of a built hypergraph: the root
// region returned by [Builder.Build], or a thunk interior returned by
// [Thunk.Graph]. A thunk's interior and its enclosing graph are distinct
// regions linked only across the thunk boundary.
//
// Graphs returned by Build are frozen: node lists are in topological order
// and no further mutation is possible.
type Graph[O, W Label] struct {
	s     *store[O, W]
	scope int
}

// Inputs returns the region's interface out ports in declaration order.
// For the root region these are the graph inputs; for a thunk interior
// they are the thunk's bound inputs.
func (g Graph[O, W]) Inputs() []OutPort[O, W] {
	return g.s.outPorts(g.s.scopes[g.scope].inputs)
}

// Outputs returns the region's interface in ports in declaration order.
func (g Graph[O, W]) Outputs() []InPort[O, W] {
	return g.s.inPorts(g.s.scopes[g.scope].outputs)
}

// Nodes returns the region's direct nodes. After Build the slice is in
// topological order: every producer precedes its consumers, except inside
// a strongly connected component, where insertion order is kept.
func (g Graph[O, W]) Nodes() []Node[O, W] {
	return g.s.nodeHandles(g.s.scopes[g.scope].nodes)
}

// AllNodes returns the region's nodes and, recursively, the nodes of every
// thunk interior below it, parents before their interiors.
func (g Graph[O, W]) AllNodes() []Node[O, W] {
	var out []Node[O, W]
	var walk func(scope int)
	walk = func(scope int) {
		for _, id := range g.s.scopes[scope].nodes {
			out = append(out, g.s.node(id))
			if g.s.nodes[id].kind == kindThunk {
				walk(g.s.nodes[id].interior)
			}
		}
	}
	walk(g.scope)
	return out
}

package hypergraph

// sortScope rewrites the scope's node list into topological order using
// Tarjan's strongly connected component decomposition over the
// produces-input-to relation. Components are emitted in reverse postorder,
// so every producer precedes its consumers; inside one component (a true
// cycle, which operation nodes can only form through a thunk boundary) the
// original insertion order is kept. Cycles are ordered, never rejected.
func (st *store[O, W]) sortScope(scope int) {
	nodes := st.scopes[scope].nodes
	if len(nodes) < 2 {
		return
	}

	pos := make(map[int]int, len(nodes))
	for i, id := range nodes {
		pos[id] = i
	}

	// successors of node id within this scope, consumers lifted through
	// thunk boundaries, deduplicated, in deterministic link order
	succs := func(id int) []int {
		var out []int
		emitted := make(map[int]bool)
		for _, o := range st.nodes[id].outputs {
			for _, l := range st.outs[o].links {
				c, ok := st.consumerAt(scope, l)
				if ok && c != id && !emitted[c] {
					emitted[c] = true
					out = append(out, c)
				}
			}
		}
		return out
	}

	index := make(map[int]int, len(nodes))
	low := make(map[int]int, len(nodes))
	onStack := make(map[int]bool, len(nodes))
	var stack []int
	var comps [][]int
	next := 0

	var connect func(v int)
	connect = func(v int) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range succs(v) {
			if _, ok := index[w]; !ok {
				connect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
			}
		}

		if low[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for _, id := range nodes {
		if _, ok := index[id]; !ok {
			connect(id)
		}
	}

	// components complete in postorder (consumers first); reverse them and
	// restore insertion order inside each component
	sorted := make([]int, 0, len(nodes))
	for i := len(comps) - 1; i >= 0; i-- {
		comp := comps[i]
		insertionSort(comp, pos)
		sorted = append(sorted, comp...)
	}
	st.scopes[scope].nodes = sorted
}

func insertionSort(comp []int, pos map[int]int) {
	for i := 1; i < len(comp); i++ {
		for j := i; j > 0 && pos[comp[j-1]] > pos[comp[j]]; j-- {
			comp[j-1], comp[j] = comp[j], comp[j-1]
		}
	}
}

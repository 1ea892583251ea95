package hypergraph

import "fmt"

// Node is either an [Operation] or a [Thunk]. Use a type switch to
// distinguish the two:
//
//	switch n := node.(type) {
//	case hypergraph.Operation[O, W]:
//		// leaf computation
//	case hypergraph.Thunk[O, W]:
//		// nested region
//	}
type Node[O, W Label] interface {
	// Sources returns the out ports feeding this node, in port order.
	// For operations these are the producers linked to the argument
	// ports; for thunks they are the derived free input ports.
	Sources() []OutPort[O, W]

	// Outputs returns the node's result out ports in declaration order.
	Outputs() []OutPort[O, W]

	fmt.Stringer
}

// Operation is a leaf computation node: an operator label applied to an
// ordered list of argument in ports, producing an ordered list of results.
type Operation[O, W Label] struct {
	s  *store[O, W]
	id int
}

// Label returns the operator label.
func (n Operation[O, W]) Label() O { return n.s.nodes[n.id].op }

// Inputs returns the operation's argument in ports in declaration order.
func (n Operation[O, W]) Inputs() []InPort[O, W] {
	return n.s.inPorts(n.s.nodes[n.id].inputs)
}

// Sources returns the producers linked to the argument ports, skipping any
// argument that has not been linked yet.
func (n Operation[O, W]) Sources() []OutPort[O, W] {
	var out []OutPort[O, W]
	for _, in := range n.s.nodes[n.id].inputs {
		if l := n.s.ins[in].link; l != none {
			out = append(out, OutPort[O, W]{n.s, l})
		}
	}
	return out
}

// Outputs returns the operation's result out ports in declaration order.
func (n Operation[O, W]) Outputs() []OutPort[O, W] {
	return n.s.outPorts(n.s.nodes[n.id].outputs)
}

func (n Operation[O, W]) String() string {
	return fmt.Sprintf("op[%d](%s)", n.id, n.s.nodes[n.id].op)
}

// Thunk is a nested region node: a delayed sub-graph with explicit bound
// inputs (formal parameters) and derived free inputs (captured values).
type Thunk[O, W Label] struct {
	s  *store[O, W]
	id int
}

// BoundInputs returns the thunk's formal parameter out ports. They belong
// to the interior graph and are only visible inside it.
func (n Thunk[O, W]) BoundInputs() []OutPort[O, W] {
	return n.s.outPorts(n.s.nodes[n.id].bound)
}

// FreeInputs returns the out ports of the enclosing graph referenced from
// inside the thunk, in first-reference order. The set is derived
// structurally by [Builder.Build]; before the build it is empty.
func (n Thunk[O, W]) FreeInputs() []OutPort[O, W] {
	return n.s.outPorts(n.s.nodes[n.id].free)
}

// Sources returns the thunk's derived free input ports.
func (n Thunk[O, W]) Sources() []OutPort[O, W] { return n.FreeInputs() }

// Outputs returns the thunk's result out ports in the enclosing graph.
func (n Thunk[O, W]) Outputs() []OutPort[O, W] {
	return n.s.outPorts(n.s.nodes[n.id].outputs)
}

// GraphOutputs returns the interior graph's output in ports. The value
// linked to GraphOutputs()[i] becomes the thunk's result Outputs()[i].
func (n Thunk[O, W]) GraphOutputs() []InPort[O, W] {
	return n.s.inPorts(n.s.scopes[n.s.nodes[n.id].interior].outputs)
}

// Graph returns the thunk's interior graph.
func (n Thunk[O, W]) Graph() Graph[O, W] {
	return Graph[O, W]{n.s, n.s.nodes[n.id].interior}
}

func (n Thunk[O, W]) String() string {
	return fmt.Sprintf("thunk[%d]", n.id)
}

func (st *store[O, W]) node(id int) Node[O, W] {
	if st.nodes[id].kind == kindThunk {
		return Thunk[O, W]{st, id}
	}
	return Operation[O, W]{st, id}
}

func (st *store[O, W]) nodeHandles(ids []int) []Node[O, W] {
	out := make([]Node[O, W], len(ids))
	for i, id := range ids {
		out[i] = st.node(id)
	}
	return out
}

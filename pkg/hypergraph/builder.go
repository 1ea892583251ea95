package hypergraph

import (
	"fmt"
	"time"

	"github.com/calintat/sd-visualiser/pkg/observability"
)

// Fragment is a mutable view of one region of a hypergraph under
// construction: the root region of a [Builder], or a thunk interior handed
// to an [Fragment.InThunk] callback. All fragments of one builder share the
// same arena; a fragment only controls which region new nodes land in.
//
// Fragments are single-writer: ownership is handed to the InThunk callback
// for the duration of the call and must not be retained across frames.
type Fragment[O, W Label] struct {
	s     *store[O, W]
	scope int
}

// AddOperation allocates an operation node in the fragment's region with
// arity unlinked argument ports and one result port per output weight.
// Unlinked argument ports are not an error until [Builder.Build].
func (f Fragment[O, W]) AddOperation(arity int, outputWeights []W, op O) Operation[O, W] {
	if f.s.frozen {
		panic("hypergraph: AddOperation after Build")
	}
	id := len(f.s.nodes)
	nd := nodeData[O]{kind: kindOperation, op: op, scope: f.scope, interior: none}
	for i := 0; i < arity; i++ {
		nd.inputs = append(nd.inputs, f.s.newInPort(id, f.scope))
	}
	for _, w := range outputWeights {
		nd.outputs = append(nd.outputs, f.s.newOutPort(w, id, f.scope))
	}
	f.s.nodes = append(f.s.nodes, nd)
	sd := &f.s.scopes[f.scope]
	sd.nodes = append(sd.nodes, id)
	return Operation[O, W]{f.s, id}
}

// AddThunk allocates a thunk node in the fragment's region. The thunk gets
// one bound input port per bound weight (the interior's formal parameters),
// one result out port per output weight, and a fresh interior region with
// one graph output in port per result. Populate the interior with
// [Fragment.InThunk]. Free input ports are not declared here; they are
// derived structurally by [Builder.Build].
func (f Fragment[O, W]) AddThunk(boundWeights, outputWeights []W) Thunk[O, W] {
	if f.s.frozen {
		panic("hypergraph: AddThunk after Build")
	}
	id := len(f.s.nodes)
	interior := f.s.newScope(f.scope, id)
	nd := nodeData[O]{kind: kindThunk, scope: f.scope, interior: interior}
	for _, w := range boundWeights {
		nd.bound = append(nd.bound, f.s.newOutPort(w, none, interior))
	}
	for _, w := range outputWeights {
		nd.outputs = append(nd.outputs, f.s.newOutPort(w, id, f.scope))
		isd := &f.s.scopes[interior]
		isd.outputs = append(isd.outputs, f.s.newInPort(none, interior))
	}
	isd := &f.s.scopes[interior]
	isd.inputs = append(isd.inputs, nd.bound...)
	f.s.nodes = append(f.s.nodes, nd)
	sd := &f.s.scopes[f.scope]
	sd.nodes = append(sd.nodes, id)
	return Thunk[O, W]{f.s, id}
}

// InThunk runs fn with a fragment scoped to the thunk's interior region.
// The thunk must have been allocated by this fragment.
func (f Fragment[O, W]) InThunk(t Thunk[O, W], fn func(Fragment[O, W]) error) error {
	if f.s != t.s || f.s.nodes[t.id].scope != f.scope {
		return fmt.Errorf("%w: %s was not allocated in this fragment", ErrScopeViolation, t)
	}
	return fn(Fragment[O, W]{f.s, f.s.nodes[t.id].interior})
}

// Link connects an out port to an in port. Linking is idempotent for the
// same pair and fails with [ErrLinkConflict] if the in port already holds a
// different out port, or with [ErrScopeViolation] if the out port is not
// visible from the in port's region.
func (f Fragment[O, W]) Link(from OutPort[O, W], to InPort[O, W]) error {
	if f.s.frozen {
		return ErrAlreadyBuilt
	}
	in := &f.s.ins[to.id]
	if in.link == from.id {
		return nil
	}
	if in.link != none {
		return fmt.Errorf("%w: %s already holds %s", ErrLinkConflict, to, OutPort[O, W]{f.s, in.link})
	}
	if !f.s.visibleFrom(f.s.outs[from.id].scope, in.scope) {
		return fmt.Errorf("%w: cannot link %s to %s", ErrScopeViolation, from, to)
	}
	in.link = from.id
	out := &f.s.outs[from.id]
	out.links = append(out.links, to.id)
	return nil
}

// GraphInputs returns the region's interface out ports in declaration order.
func (f Fragment[O, W]) GraphInputs() []OutPort[O, W] {
	return f.s.outPorts(f.s.scopes[f.scope].inputs)
}

// GraphOutputs returns the region's interface in ports in declaration order.
func (f Fragment[O, W]) GraphOutputs() []InPort[O, W] {
	return f.s.inPorts(f.s.scopes[f.scope].outputs)
}

// Builder constructs a hypergraph. It embeds the [Fragment] of the root
// region, so nodes and links are added directly on the builder. Builders
// are not safe for concurrent use.
type Builder[O, W Label] struct {
	Fragment[O, W]
}

// New creates a builder for a graph with one input out port per input
// weight and the given number of output in ports.
func New[O, W Label](inputWeights []W, outputs int) *Builder[O, W] {
	st := newStore[O, W]()
	root := st.newScope(none, none)
	sd := &st.scopes[root]
	for _, w := range inputWeights {
		sd.inputs = append(sd.inputs, st.newOutPort(w, none, root))
	}
	for i := 0; i < outputs; i++ {
		sd.outputs = append(sd.outputs, st.newInPort(none, root))
	}
	return &Builder[O, W]{Fragment[O, W]{st, root}}
}

// Build validates the hypergraph, derives thunk free inputs, orders every
// region topologically, and freezes the arena. In order it checks that
//
//  1. every in port, including those inside thunk interiors, is linked
//     ([ErrUninitializedInPort]);
//  2. every out port's recorded links are symmetric
//     ([ErrUninitializedOutPort]);
//
// then derives each thunk's free input ports (interior-referenced out ports
// not owned by the interior, minus bound inputs, deepest thunks first) and
// topologically sorts the root region and every interior independently.
//
// A successful Build consumes the builder: further mutation fails.
func (b *Builder[O, W]) Build() (Graph[O, W], error) {
	start := time.Now()
	g, err := b.build()
	thunks := 0
	for _, nd := range b.s.nodes {
		if nd.kind == kindThunk {
			thunks++
		}
	}
	observability.Build().OnBuildComplete(len(b.s.nodes), thunks, time.Since(start), err)
	return g, err
}

func (b *Builder[O, W]) build() (Graph[O, W], error) {
	st := b.s
	if st.frozen {
		return Graph[O, W]{}, ErrAlreadyBuilt
	}
	observability.Build().OnBuildStart(len(st.nodes))

	for id, in := range st.ins {
		if in.link == none {
			return Graph[O, W]{}, fmt.Errorf("%w: %s", ErrUninitializedInPort, InPort[O, W]{st, id})
		}
	}
	for id, out := range st.outs {
		for _, l := range out.links {
			if st.ins[l].link != id {
				return Graph[O, W]{}, fmt.Errorf("%w: %s", ErrUninitializedOutPort, OutPort[O, W]{st, id})
			}
		}
	}

	st.deriveThunkInputs(b.scope)
	for scope := range st.scopes {
		st.sortScope(scope)
	}

	st.frozen = true
	return Graph[O, W]{st, b.scope}, nil
}

// deriveThunkInputs computes the free input ports of every thunk in the
// scope, deepest thunks first so that a nested thunk's free set is ready
// when its parent's derivation consumes it.
func (st *store[O, W]) deriveThunkInputs(scope int) {
	for _, id := range st.scopes[scope].nodes {
		nd := &st.nodes[id]
		if nd.kind != kindThunk {
			continue
		}
		st.deriveThunkInputs(nd.interior)
		nd.free = st.freeInputsOf(id)
	}
}

// freeInputsOf derives thunk t's free inputs: every out port consumed in
// its interior that the interior does not own, in first-reference order.
// Bound inputs are owned; so are the results of the interior's own nodes.
// The derivation is structural and independent of any AST-level analysis.
func (st *store[O, W]) freeInputsOf(t int) []int {
	interior := st.nodes[t].interior
	seen := make(map[int]bool)
	var free []int

	consider := func(out int) {
		if out == none {
			return
		}
		od := st.outs[out]
		if od.node != none {
			if st.nodes[od.node].scope == interior {
				return
			}
		} else if od.scope == interior {
			// a bound input of this thunk
			return
		}
		if !seen[out] {
			seen[out] = true
			free = append(free, out)
		}
	}

	for _, id := range st.scopes[interior].nodes {
		nd := st.nodes[id]
		if nd.kind == kindOperation {
			for _, in := range nd.inputs {
				consider(st.ins[in].link)
			}
		} else {
			for _, out := range nd.free {
				consider(out)
			}
		}
	}
	for _, in := range st.scopes[interior].outputs {
		consider(st.ins[in].link)
	}
	return free
}

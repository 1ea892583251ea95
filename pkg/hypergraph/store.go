package hypergraph

import "fmt"

// Label constrains the weight types carried by nodes and out ports.
// Weights must be usable as map keys and printable for diagnostics.
type Label interface {
	comparable
	fmt.Stringer
}

// none marks an absent arena index (no owning node, no link, no parent scope).
const none = -1

type nodeKind int

const (
	kindOperation nodeKind = iota
	kindThunk
)

// outPortData is the arena record for a production site. Interface ports
// (graph inputs and thunk bound inputs) have no owning node.
type outPortData[W Label] struct {
	weight W
	node   int
	scope  int
	links  []int // consuming in ports, in link order
}

// inPortData is the arena record for a consumption site. link stays none
// until the port is linked; Build rejects any port still at none.
type inPortData struct {
	node  int
	scope int
	link  int
}

type nodeData[O Label] struct {
	kind    nodeKind
	op      O
	scope   int
	inputs  []int // operation argument in ports
	outputs []int // result out ports

	// thunk fields
	interior int
	bound    []int // formal parameter out ports, interior scope
	free     []int // derived at build: external out ports referenced inside
}

// scopeData is one lexical region: the root graph or a thunk interior.
// nodes holds the region's node list in insertion order until Build
// replaces it with the topological order.
type scopeData struct {
	parent  int
	owner   int // thunk node whose interior this is, none for the root
	nodes   []int
	inputs  []int // interface out ports (root inputs or thunk bound inputs)
	outputs []int // interface in ports (graph outputs)
}

// store is the arena shared by every handle of one hypergraph. Ports and
// nodes are integer indices into these slices; following a link is an array
// lookup rather than a pointer chase.
type store[O, W Label] struct {
	outs   []outPortData[W]
	ins    []inPortData
	nodes  []nodeData[O]
	scopes []scopeData
	frozen bool
}

func newStore[O, W Label]() *store[O, W] {
	return &store[O, W]{}
}

func (st *store[O, W]) newScope(parent, owner int) int {
	st.scopes = append(st.scopes, scopeData{parent: parent, owner: owner})
	return len(st.scopes) - 1
}

func (st *store[O, W]) newOutPort(weight W, node, scope int) int {
	st.outs = append(st.outs, outPortData[W]{weight: weight, node: node, scope: scope})
	return len(st.outs) - 1
}

func (st *store[O, W]) newInPort(node, scope int) int {
	st.ins = append(st.ins, inPortData{node: node, scope: scope, link: none})
	return len(st.ins) - 1
}

// visibleFrom reports whether scope anc is the scope from or one of its
// ancestors. An out port in anc may be consumed anywhere inside from.
func (st *store[O, W]) visibleFrom(anc, from int) bool {
	for sc := from; sc != none; sc = st.scopes[sc].parent {
		if sc == anc {
			return true
		}
	}
	return false
}

// consumerAt lifts the consumer of in port inID to the node it belongs to
// when viewed from scope s: an in port inside a nested thunk belongs, at
// scope s, to the thunk node containing it. The second result is false when
// the consumer is scope s's own graph output.
func (st *store[O, W]) consumerAt(s, inID int) (int, bool) {
	d := st.ins[inID]
	scope, node := d.scope, d.node
	for scope != s {
		node = st.scopes[scope].owner
		if node == none {
			return 0, false
		}
		scope = st.nodes[node].scope
	}
	if node == none {
		return 0, false
	}
	return node, true
}

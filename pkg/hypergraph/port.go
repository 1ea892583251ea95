package hypergraph

import "fmt"

// OutPort is the production site of one value. Every out port carries a
// weight and may be linked to any number of in ports. Graph inputs and thunk
// bound inputs are interface ports and have no owning node.
type OutPort[O, W Label] struct {
	s  *store[O, W]
	id int
}

// Weight returns the weight attached to the port.
func (p OutPort[O, W]) Weight() W { return p.s.outs[p.id].weight }

// Node returns the node owning this port, or false for interface ports.
func (p OutPort[O, W]) Node() (Node[O, W], bool) {
	n := p.s.outs[p.id].node
	if n == none {
		return nil, false
	}
	return p.s.node(n), true
}

// Links returns the in ports consuming this port's value, in link order.
func (p OutPort[O, W]) Links() []InPort[O, W] {
	links := p.s.outs[p.id].links
	out := make([]InPort[O, W], len(links))
	for i, l := range links {
		out[i] = InPort[O, W]{p.s, l}
	}
	return out
}

func (p OutPort[O, W]) String() string {
	return fmt.Sprintf("out[%d](%s)", p.id, p.s.outs[p.id].weight)
}

// InPort is the consumption site of one value. After a successful build
// every in port is linked to exactly one out port.
type InPort[O, W Label] struct {
	s  *store[O, W]
	id int
}

// Node returns the node owning this port, or false for graph output ports.
func (p InPort[O, W]) Node() (Node[O, W], bool) {
	n := p.s.ins[p.id].node
	if n == none {
		return nil, false
	}
	return p.s.node(n), true
}

// Link returns the out port feeding this port, or false if it is unlinked.
func (p InPort[O, W]) Link() (OutPort[O, W], bool) {
	l := p.s.ins[p.id].link
	if l == none {
		return OutPort[O, W]{}, false
	}
	return OutPort[O, W]{p.s, l}, true
}

func (p InPort[O, W]) String() string {
	return fmt.Sprintf("in[%d]", p.id)
}

func (st *store[O, W]) outPorts(ids []int) []OutPort[O, W] {
	out := make([]OutPort[O, W], len(ids))
	for i, id := range ids {
		out[i] = OutPort[O, W]{st, id}
	}
	return out
}

func (st *store[O, W]) inPorts(ids []int) []InPort[O, W] {
	out := make([]InPort[O, W], len(ids))
	for i, id := range ids {
		out[i] = InPort[O, W]{st, id}
	}
	return out
}

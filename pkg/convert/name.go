package convert

import (
	"github.com/google/uuid"

	"github.com/calintat/sd-visualiser/pkg/hypergraph"
)

// NameKind distinguishes what a hypergraph out port stands for in the
// source program.
type NameKind int

const (
	// NameResult marks the anonymous result of an operation consumed in
	// place, without ever being named.
	NameResult NameKind = iota
	// NameThunk marks a thunk's result. Each converted thunk gets a fresh
	// address so distinct thunks stay distinguishable downstream.
	NameThunk
	// NameFreeVar marks a graph input standing for a free variable.
	NameFreeVar
	// NameBoundVar marks the value a binding or thunk parameter defines.
	NameBoundVar
)

// Name is the edge weight the converter attaches to every out port.
type Name[V hypergraph.Label] struct {
	Kind NameKind
	Var  V         // NameFreeVar and NameBoundVar only
	Addr uuid.UUID // NameThunk only
}

// FreeVar returns the weight for a graph input standing for v.
func FreeVar[V hypergraph.Label](v V) Name[V] {
	return Name[V]{Kind: NameFreeVar, Var: v}
}

// BoundVar returns the weight for the port defining v.
func BoundVar[V hypergraph.Label](v V) Name[V] {
	return Name[V]{Kind: NameBoundVar, Var: v}
}

// ToVar returns the variable the weight names, or false for anonymous
// operation results and thunk results.
func (n Name[V]) ToVar() (V, bool) {
	if n.Kind == NameFreeVar || n.Kind == NameBoundVar {
		return n.Var, true
	}
	var zero V
	return zero, false
}

func (n Name[V]) String() string {
	switch n.Kind {
	case NameThunk:
		return "thunk:" + n.Addr.String()[:8]
	case NameFreeVar, NameBoundVar:
		return n.Var.String()
	default:
		return "·"
	}
}

// Graph is the hypergraph a conversion produces: operator labels on the
// nodes, [Name] weights on the out ports.
type Graph[O, V hypergraph.Label] = hypergraph.Graph[O, Name[V]]

package syntax

import "sort"

// VarSet is a set of variable names. Iteration order is unspecified.
type VarSet[V comparable] map[V]struct{}

// Contains reports whether the set holds v.
func (s VarSet[V]) Contains(v V) bool {
	_, ok := s[v]
	return ok
}

// SortedVars returns the set's elements ordered by their display string.
// Free-variable sets have no inherent order; callers that turn them into
// port lists impose this one.
func SortedVars[V Label](s VarSet[V]) []V {
	out := make([]V, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// FreeVars computes free-variable sets for expressions and thunks, caching
// results per AST node by pointer identity. A zero FreeVars is not usable;
// create one with [NewFreeVars]. Not safe for concurrent use.
type FreeVars[O, V Label] struct {
	exprs  map[*Expr[O, V]]VarSet[V]
	thunks map[*Thunk[O, V]]VarSet[V]
}

// NewFreeVars creates an empty analysis cache.
func NewFreeVars[O, V Label]() *FreeVars[O, V] {
	return &FreeVars[O, V]{
		exprs:  make(map[*Expr[O, V]]VarSet[V]),
		thunks: make(map[*Thunk[O, V]]VarSet[V]),
	}
}

// Expr returns the names e mentions but does not bind. Every name bound in
// e is visible to every value and binding of e, so a binding group never
// contributes its own definitions, even on forward or mutually recursive
// references. The returned set is shared with the cache; treat it as
// read-only.
func (fv *FreeVars[O, V]) Expr(e *Expr[O, V]) VarSet[V] {
	if s, ok := fv.exprs[e]; ok {
		return s
	}
	s := make(VarSet[V])
	for _, b := range e.Binds {
		fv.value(b.Value, s)
	}
	for _, v := range e.Values {
		fv.value(v, s)
	}
	for _, b := range e.Binds {
		delete(s, b.Def)
	}
	fv.exprs[e] = s
	return s
}

// Thunk returns the names t's body mentions minus t's parameters.
func (fv *FreeVars[O, V]) Thunk(t *Thunk[O, V]) VarSet[V] {
	if s, ok := fv.thunks[t]; ok {
		return s
	}
	s := make(VarSet[V])
	for v := range fv.Expr(&t.Body) {
		s[v] = struct{}{}
	}
	for _, p := range t.Params {
		delete(s, p)
	}
	fv.thunks[t] = s
	return s
}

func (fv *FreeVars[O, V]) value(v Value[O, V], out VarSet[V]) {
	switch val := v.(type) {
	case Variable[O, V]:
		out[val.Name] = struct{}{}
	case Operation[O, V]:
		for _, arg := range val.Args {
			if th, ok := arg.(*Thunk[O, V]); ok {
				for name := range fv.Thunk(th) {
					out[name] = struct{}{}
				}
				continue
			}
			fv.value(arg.(Value[O, V]), out)
		}
	}
}

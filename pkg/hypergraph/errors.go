package hypergraph

import "errors"

var (
	// ErrLinkConflict is returned by [Fragment.Link] when the in port is
	// already linked to a different out port. Re-linking a port to the out
	// port it already holds is a no-op.
	ErrLinkConflict = errors.New("in port is already linked to a different out port")

	// ErrScopeViolation is returned by [Fragment.Link] when the out port is
	// not visible from the in port's region. An in port may only consume an
	// out port of its own graph or of an ancestor graph.
	ErrScopeViolation = errors.New("out port is not visible from the in port's graph")

	// ErrUninitializedInPort is returned by [Builder.Build] when some in
	// port, anywhere in the hierarchy, was never linked.
	ErrUninitializedInPort = errors.New("in port has no linked out port")

	// ErrUninitializedOutPort is returned by [Builder.Build] when an out
	// port claims a link its in port does not hold. This indicates arena
	// corruption and should not occur through the builder API.
	ErrUninitializedOutPort = errors.New("out port claims a link its in port does not hold")

	// ErrAlreadyBuilt is returned when a builder or fragment is used after
	// a successful [Builder.Build].
	ErrAlreadyBuilt = errors.New("hypergraph has already been built")
)

// Package syntax defines the scoped abstract syntax tree consumed by the
// hypergraph converter, together with its free-variable analysis.
//
// The AST is generic over an operator label type O and a variable name type
// V; a surface language supplies these (see pkg/syntax/spartan for the
// reference instantiation) plus a front end producing the tree. Parsing is
// out of scope here: trees arrive already name-resolved.
//
// # Shape
//
// An [Expr] is a group of bindings followed by the values the expression
// yields. A [Value] is either a [Variable] reference or an [Operation]
// applied to arguments; an argument is a [Value] or a [*Thunk], a delayed
// sub-expression with its own formal parameters.
//
// # Free variables
//
// [FreeVars] computes, for an expression or thunk, the set of names it
// mentions but does not bind. Results are cached per AST node by pointer
// identity, so repeated queries during conversion are O(1). The returned
// sets carry no iteration order; use [SortedVars] when a stable order is
// needed.
package syntax

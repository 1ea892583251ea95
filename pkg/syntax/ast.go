package syntax

import "fmt"

// Label constrains operator and variable label types: any comparable,
// printable type can instantiate the AST.
type Label interface {
	comparable
	fmt.Stringer
}

// Expr is one lexical scope: a group of bindings, all visible to each other
// regardless of order, followed by the values the scope yields.
type Expr[O, V Label] struct {
	Binds  []Bind[O, V]
	Values []Value[O, V]
}

// Bind attaches a name to the value it defines. Within one Expr a name may
// be bound at most once; rebinding is a shadowing error at conversion time.
type Bind[O, V Label] struct {
	Def   V
	Value Value[O, V]
}

// Value is a [Variable] or an [Operation]. The interface is sealed.
type Value[O, V Label] interface {
	Arg[O, V]
	isValue(O, V)
}

// Arg is an operation argument: a [Value] or a [*Thunk]. Sealed.
type Arg[O, V Label] interface {
	isArg(O, V)
}

// Variable is a reference to a bound or free name.
type Variable[O, V Label] struct {
	Name V
}

// Operation applies an operator label to an ordered list of arguments.
type Operation[O, V Label] struct {
	Op   O
	Args []Arg[O, V]
}

// Thunk is a delayed sub-expression with formal parameters. The parameters
// are bound only within the body; anything else the body mentions is
// captured from the enclosing scope.
type Thunk[O, V Label] struct {
	Params []V
	Body   Expr[O, V]
}

func (Variable[O, V]) isValue(O, V)  {}
func (Variable[O, V]) isArg(O, V)    {}
func (Operation[O, V]) isValue(O, V) {}
func (Operation[O, V]) isArg(O, V)   {}
func (*Thunk[O, V]) isArg(O, V)      {}

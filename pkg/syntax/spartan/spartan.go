// Package spartan supplies the reference label types for the generic AST:
// a small untyped calculus with arithmetic, comparison, reference-cell, and
// higher-order operators. Operators are named textually ("plus", "lambda")
// and display symbolically ("+", "λ"). The package carries no parser; it
// exists so that examples, fixtures, and tests have a concrete language to
// instantiate the converter with.
package spartan

import (
	"fmt"
	"strconv"

	"github.com/calintat/sd-visualiser/pkg/syntax"
)

// Op is a spartan operator label. Beyond the named operators below, any
// integer or boolean literal is a nullary operator (see [Number] and
// [Bool]).
type Op string

// Named operators.
const (
	Plus    Op = "plus"
	Minus   Op = "minus"
	Times   Op = "times"
	Div     Op = "div"
	Rem     Op = "rem"
	And     Op = "and"
	Or      Op = "or"
	Not     Op = "not"
	If      Op = "if"
	Eq      Op = "eq"
	Neq     Op = "neq"
	Lt      Op = "lt"
	Leq     Op = "leq"
	Gt      Op = "gt"
	Geq     Op = "geq"
	App     Op = "app"
	Lambda  Op = "lambda"
	Atom    Op = "atom"
	Deref   Op = "deref"
	Assign  Op = "assign"
	Tuple   Op = "tuple"
	Detuple Op = "detuple"
)

// Number returns the nullary operator for an integer literal.
func Number(n int) Op { return Op(strconv.Itoa(n)) }

// Bool returns the nullary operator for a boolean literal.
func Bool(b bool) Op { return Op(strconv.FormatBool(b)) }

var symbols = map[Op]string{
	Plus:    "+",
	Minus:   "-",
	Times:   "×",
	Div:     "/",
	Rem:     "%",
	And:     "∧",
	Or:      "∨",
	Not:     "¬",
	If:      "if",
	Eq:      "=",
	Neq:     "≠",
	Lt:      "<",
	Leq:     "≤",
	Gt:      ">",
	Geq:     "≥",
	App:     "@",
	Lambda:  "λ",
	Atom:    "&",
	Deref:   "!",
	Assign:  ":=",
	Tuple:   "()",
	Detuple: ")(",
}

// String returns the operator's symbolic form; literals render as
// themselves.
func (o Op) String() string {
	if s, ok := symbols[o]; ok {
		return s
	}
	return string(o)
}

// Var is a spartan variable name.
type Var string

func (v Var) String() string { return string(v) }

// Fresh returns the nth generated variable name. Generated names use a "?"
// prefix, which the (external) parser never produces, so they cannot
// collide with source names.
func Fresh(n int) Var { return Var(fmt.Sprintf("?%d", n)) }

// Instantiations of the generic AST with spartan labels.
type (
	Expr      = syntax.Expr[Op, Var]
	Bind      = syntax.Bind[Op, Var]
	Value     = syntax.Value[Op, Var]
	Arg       = syntax.Arg[Op, Var]
	Variable  = syntax.Variable[Op, Var]
	Operation = syntax.Operation[Op, Var]
	Thunk     = syntax.Thunk[Op, Var]
)

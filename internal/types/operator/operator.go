package operator

import (
	"fmt"
	"sort"
)

// Associativity decides which side binds first between operators of equal precedence.
type Associativity int

const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Arity is the number of operands an operator consumes from the stack.
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// UnaryMinus is the postfix spelling of a negation operator.
const UnaryMinus = "u-"

// Operator is the static metadata of an arithmetic operator.
//
// Usage:
//
//	op, ok := operator.Lookup("^")   // precedence 4, right associative
//	op.BindsBefore(plus)              // true
type Operator struct {
	Symbol     string
	Precedence int
	Assoc      Associativity
	Arity      Arity
}

var table = map[string]Operator{
	"+":        {Symbol: "+", Precedence: 1, Assoc: Left, Arity: Binary},
	"-":        {Symbol: "-", Precedence: 1, Assoc: Left, Arity: Binary},
	"*":        {Symbol: "*", Precedence: 2, Assoc: Left, Arity: Binary},
	"/":        {Symbol: "/", Precedence: 2, Assoc: Left, Arity: Binary},
	"^":        {Symbol: "^", Precedence: 4, Assoc: Right, Arity: Binary},
	"**":       {Symbol: "**", Precedence: 4, Assoc: Right, Arity: Binary},
	UnaryMinus: {Symbol: UnaryMinus, Precedence: 5, Assoc: Right, Arity: Unary},
}

var functions = map[string]struct{}{
	"sin":  {},
	"cos":  {},
	"tan":  {},
	"log":  {},
	"ln":   {},
	"sqrt": {},
	"abs":  {},
}

// Lookup returns the descriptor of a known operator symbol.
func Lookup(symbol string) (Operator, bool) {
	op, ok := table[symbol]
	return op, ok
}

// Parse is like Lookup but reports unknown symbols as an error.
func Parse(symbol string) (Operator, error) {
	op, ok := table[symbol]
	if !ok {
		return Operator{}, fmt.Errorf("unknown operator: %q", symbol)
	}
	return op, nil
}

// Describe returns the descriptor of symbol, falling back to a left
// associative level 0 binary operator for functions and unknown symbols.
func Describe(symbol string) Operator {
	if op, ok := table[symbol]; ok {
		return op
	}
	return Operator{Symbol: symbol, Precedence: 0, Assoc: Left, Arity: Binary}
}

// Precedence returns the binding level of symbol. Functions and unknown
// symbols bind at level 0.
func Precedence(symbol string) int {
	return table[symbol].Precedence
}

// IsRightAssoc reports whether symbol is a right associative operator.
func IsRightAssoc(symbol string) bool {
	op, ok := table[symbol]
	return ok && op.Assoc == Right
}

// IsBinary reports whether symbol pops two operands.
func IsBinary(symbol string) bool {
	op, ok := table[symbol]
	return ok && op.Arity == Binary
}

// IsUnary reports whether symbol pops one operand: unary minus or a function.
func IsUnary(symbol string) bool {
	if IsFunction(symbol) {
		return true
	}
	op, ok := table[symbol]
	return ok && op.Arity == Unary
}

func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// Functions returns the supported function names in lexical order.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindsBefore reports whether o, sitting on the operator stack, must be
// emitted before incoming is pushed.
func (o Operator) BindsBefore(incoming Operator) bool {
	if o.Precedence > incoming.Precedence {
		return true
	}
	return o.Precedence == incoming.Precedence && incoming.Assoc == Left
}

func (o Operator) String() string {
	return o.Symbol
}

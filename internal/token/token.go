package token

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Unknown Kind = iota
	Number
	Identifier
	Function
	BinaryOperator
	UnaryOperator
	LeftParen
	RightParen
	Comma
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case Identifier:
		return "IDENTIFIER"
	case Function:
		return "FUNCTION"
	case BinaryOperator:
		return "BINARY_OPERATOR"
	case UnaryOperator:
		return "UNARY_OPERATOR"
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case Comma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether k is a binary or unary operator kind.
func (k Kind) IsOperator() bool {
	return k == BinaryOperator || k == UnaryOperator
}

// IsOperand reports whether k is a number or an identifier.
func (k Kind) IsOperand() bool {
	return k == Number || k == Identifier
}

// Token represents a lexical token with its kind and literal value.
type Token struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Value + ")"
}

// Values returns the literal value of every token in order.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}

// Join renders tokens as their values separated by a single space.
func Join(tokens []Token) string {
	return strings.Join(Values(tokens), " ")
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for c := Unknown; c <= Comma; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

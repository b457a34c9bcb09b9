package postfix

import (
	"errors"
	"fmt"
)

var ErrMismatchedParentheses = errors.New("mismatched parentheses")

// MismatchedParenthesesError reports a parenthesis that has no partner.
// Pos is the index of the offending token in the infix token sequence.
type MismatchedParenthesesError struct {
	Paren string
	Pos   int
}

func (e *MismatchedParenthesesError) Error() string {
	return fmt.Sprintf("%s: unmatched %q at token %d", ErrMismatchedParentheses, e.Paren, e.Pos)
}

func (e *MismatchedParenthesesError) Is(target error) bool {
	return target == ErrMismatchedParentheses
}

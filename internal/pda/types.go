package pda

import (
	"fmt"

	"github.com/DjordjeVuckovic/expr-pda/internal/token"
)

// Action is the transition taken for one input token.
type Action int

const (
	Push   Action = iota // operand: push one marker
	Reduce               // binary operator: pop 2, push 1
	Apply                // unary operator or function: pop 1, push 1
)

func (a Action) String() string {
	switch a {
	case Reduce:
		return "POP 2, PUSH 1"
	case Apply:
		return "POP 1, PUSH 1"
	default:
		return "PUSH"
	}
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	for _, c := range []Action{Push, Reduce, Apply} {
		if c.String() == string(text) {
			*a = c
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

type Reason int

const (
	Accepted Reason = iota
	Underflow
	Leftover
	Empty
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Underflow:
		return "not enough operands"
	case Leftover:
		return "leftover operands"
	case Empty:
		return "empty expression"
	default:
		return "unknown"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Marker is one stack slot. Index is the token that produced it; a reduced
// marker also records the token indices of the slots it consumed.
type Marker struct {
	Index    int    `json:"index"`
	Value    string `json:"value"`
	Reduced  bool   `json:"reduced"`
	Operands []int  `json:"operands,omitempty"`
}

type Step struct {
	Index    int         `json:"index"`
	Token    token.Token `json:"token"`
	Action   Action      `json:"action"`
	Depth    int         `json:"depth"`
	Rejected bool        `json:"rejected,omitempty"`
}

// Result describes a finished run. FailedAt is the index of the token that
// underflowed the stack, or -1.
type Result struct {
	Accepted bool     `json:"accepted"`
	Reason   Reason   `json:"reason"`
	FailedAt int      `json:"failed_at"`
	Depth    int      `json:"depth"`
	Steps    []Step   `json:"steps,omitempty"`
	Stack    []Marker `json:"-"`
}

type stack struct {
	markers []Marker
}

func (s *stack) push(m Marker) {
	s.markers = append(s.markers, m)
}

func (s *stack) pop() Marker {
	top := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	return top
}

func (s *stack) depth() int {
	return len(s.markers)
}

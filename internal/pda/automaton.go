package pda

import (
	"github.com/DjordjeVuckovic/expr-pda/internal/token"
	"github.com/DjordjeVuckovic/expr-pda/internal/types/operator"
)

// Automaton is a single-state pushdown acceptor for postfix expressions.
// Its stack alphabet is one "value" marker: operands push a marker, binary
// operators reduce two markers to one and unary operators or functions
// replace one marker. A sequence is accepted when exactly one marker is left.
type Automaton struct {
	tokenizer token.Tokenizer
}

func New() *Automaton {
	return &Automaton{
		tokenizer: token.NewExprTokenizer(token.WithPostfix()),
	}
}

// Accepts lexes postfix text and reports whether it is well formed.
func (a *Automaton) Accepts(postfix string) bool {
	return a.Run(a.tokenizer.Tokenize(postfix)).Accepted
}

// Evaluate lexes postfix text and returns the full run result.
func (a *Automaton) Evaluate(postfix string) Result {
	return a.Run(a.tokenizer.Tokenize(postfix))
}

// Run feeds tokens to the automaton left to right. It stops at the first
// token that would pop more markers than the stack holds.
func (a *Automaton) Run(tokens []token.Token) Result {
	var st stack
	steps := make([]Step, 0, len(tokens))

	for i, tok := range tokens {
		action := classify(tok)
		step := Step{Index: i, Token: tok, Action: action}

		switch action {
		case Reduce:
			if st.depth() < 2 {
				step.Depth = st.depth()
				step.Rejected = true
				return reject(Underflow, i, st, append(steps, step))
			}
			right := st.pop()
			left := st.pop()
			st.push(Marker{Index: i, Value: tok.Value, Reduced: true, Operands: []int{left.Index, right.Index}})
		case Apply:
			if st.depth() < 1 {
				step.Depth = st.depth()
				step.Rejected = true
				return reject(Underflow, i, st, append(steps, step))
			}
			arg := st.pop()
			st.push(Marker{Index: i, Value: tok.Value, Reduced: true, Operands: []int{arg.Index}})
		default:
			st.push(Marker{Index: i, Value: tok.Value})
		}

		step.Depth = st.depth()
		steps = append(steps, step)
	}

	switch st.depth() {
	case 1:
		return Result{Accepted: true, Reason: Accepted, FailedAt: -1, Depth: 1, Steps: steps, Stack: st.markers}
	case 0:
		return reject(Empty, -1, st, steps)
	default:
		return reject(Leftover, -1, st, steps)
	}
}

func reject(reason Reason, at int, st stack, steps []Step) Result {
	return Result{
		Accepted: false,
		Reason:   reason,
		FailedAt: at,
		Depth:    st.depth(),
		Steps:    steps,
		Stack:    st.markers,
	}
}

func classify(tok token.Token) Action {
	switch {
	case operator.IsBinary(tok.Value):
		return Reduce
	case operator.IsUnary(tok.Value):
		return Apply
	default:
		return Push
	}
}

package checker

import (
	"errors"
	"log/slog"

	"github.com/DjordjeVuckovic/expr-pda/internal/pda"
	"github.com/DjordjeVuckovic/expr-pda/internal/postfix"
	"github.com/DjordjeVuckovic/expr-pda/internal/token"
)

// Checker chains the shunting-yard converter and the postfix automaton.
// It holds no mutable state and can be shared between goroutines.
type Checker struct {
	tokenizer        token.Tokenizer
	postfixTokenizer token.Tokenizer
	converter        *postfix.Converter
	automaton        *pda.Automaton
}

func New() *Checker {
	return &Checker{
		tokenizer:        token.NewExprTokenizer(),
		postfixTokenizer: token.NewExprTokenizer(token.WithPostfix()),
		converter:        postfix.NewConverter(),
		automaton:        pda.New(),
	}
}

// Convert rewrites an infix expression to postfix text.
func (c *Checker) Convert(expr string) (string, error) {
	return c.converter.Convert(expr)
}

func (c *Checker) ValidatePostfix(expr string) bool {
	return c.automaton.Accepts(expr)
}

// ValidateInfix converts expr and validates the result. Conversion failures
// are reported as rejection.
func (c *Checker) ValidateInfix(expr string) bool {
	out, err := c.converter.Convert(expr)
	if err != nil {
		slog.Debug("infix conversion failed", "expression", expr, "error", err)
		return false
	}
	return c.automaton.Accepts(out)
}

// Report is the outcome of checking one expression, with every intermediate
// product of the pipeline.
type Report struct {
	Expression string        `json:"expression"`
	Tokens     []token.Token `json:"tokens"`
	Postfix    string        `json:"postfix"`
	Err        error         `json:"-"`
	Result     pda.Result    `json:"result"`
}

func (r Report) Accepted() bool {
	return r.Err == nil && r.Result.Accepted
}

// Reason describes the verdict in a few words.
func (r Report) Reason() string {
	if r.Err != nil {
		if errors.Is(r.Err, postfix.ErrMismatchedParentheses) {
			return postfix.ErrMismatchedParentheses.Error()
		}
		return r.Err.Error()
	}
	return r.Result.Reason.String()
}

// CheckInfix runs the whole pipeline on an infix expression.
func (c *Checker) CheckInfix(expr string) Report {
	r := Report{Expression: expr, Tokens: c.tokenizer.Tokenize(expr)}

	out, err := c.converter.ConvertTokens(r.Tokens)
	if err != nil {
		r.Err = err
		r.Result = pda.Result{Reason: pda.Empty, FailedAt: -1}
		return r
	}
	r.Postfix = token.Join(out)
	r.Result = c.automaton.Evaluate(r.Postfix)

	slog.Debug("infix checked", "expression", expr, "postfix", r.Postfix, "accepted", r.Result.Accepted)
	return r
}

// CheckPostfix runs the automaton on postfix text.
func (c *Checker) CheckPostfix(expr string) Report {
	r := Report{Expression: expr, Postfix: expr, Tokens: c.postfixTokenizer.Tokenize(expr)}
	r.Result = c.automaton.Run(r.Tokens)
	return r
}

var std = New()

// Convert rewrites an infix expression to postfix text using a shared Checker.
func Convert(expr string) (string, error) {
	return std.Convert(expr)
}

func ValidatePostfix(expr string) bool {
	return std.ValidatePostfix(expr)
}

func ValidateInfix(expr string) bool {
	return std.ValidateInfix(expr)
}

package postfix

import (
	"github.com/DjordjeVuckovic/expr-pda/internal/token"
	"github.com/DjordjeVuckovic/expr-pda/internal/types/operator"
)

// Converter rewrites infix expressions into postfix order using the
// shunting-yard algorithm.
type Converter struct {
	tokenizer token.Tokenizer
}

func NewConverter() *Converter {
	return &Converter{
		tokenizer: token.NewExprTokenizer(),
	}
}

// Convert returns the postfix form of expr with tokens separated by a single
// space. Unbalanced parentheses fail with *MismatchedParenthesesError.
func (c *Converter) Convert(expr string) (string, error) {
	out, err := c.ConvertTokens(c.tokenizer.Tokenize(expr))
	if err != nil {
		return "", err
	}
	return token.Join(out), nil
}

type stackEntry struct {
	tok token.Token
	pos int
}

func (c *Converter) ConvertTokens(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var stack []stackEntry

	pop := func() stackEntry {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}
	topIs := func(kind token.Kind) bool {
		return len(stack) > 0 && stack[len(stack)-1].tok.Kind == kind
	}

	for i, tok := range tokens {
		switch {
		case tok.Kind == token.Function:
			stack = append(stack, stackEntry{tok: tok, pos: i})

		case tok.Kind.IsOperand():
			output = append(output, tok)

		case tok.Kind == token.LeftParen:
			stack = append(stack, stackEntry{tok: tok, pos: i})

		case tok.Kind == token.RightParen:
			for len(stack) > 0 && !topIs(token.LeftParen) {
				output = append(output, pop().tok)
			}
			if !topIs(token.LeftParen) {
				return nil, &MismatchedParenthesesError{Paren: tok.Value, Pos: i}
			}
			pop()
			if topIs(token.Function) {
				output = append(output, pop().tok)
			}

		default:
			incoming := tok
			if tok.Kind == token.UnaryOperator && tok.Value == "-" {
				incoming = token.Token{Kind: token.UnaryOperator, Value: operator.UnaryMinus}
			}
			op := operator.Describe(incoming.Value)
			for len(stack) > 0 && !topIs(token.LeftParen) &&
				operator.Describe(stack[len(stack)-1].tok.Value).BindsBefore(op) {
				output = append(output, pop().tok)
			}
			stack = append(stack, stackEntry{tok: incoming, pos: i})
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top.tok.Kind == token.LeftParen || top.tok.Kind == token.RightParen {
			return nil, &MismatchedParenthesesError{Paren: top.tok.Value, Pos: top.pos}
		}
		output = append(output, top.tok)
	}

	return output, nil
}

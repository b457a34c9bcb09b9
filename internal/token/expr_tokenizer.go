package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/expr-pda/internal/types/operator"
)

var twoCharOperators = map[string]struct{}{
	"**": {},
	"==": {},
	"!=": {},
	"<=": {},
	">=": {},
	"&&": {},
	"||": {},
}

const operatorChars = "+-*/^%=<>!&|"

// ExprTokenizer breaks arithmetic expressions into tokens. It holds no
// per-call state and is safe for concurrent use.
type ExprTokenizer struct {
	postfix bool
}

type Option func(*ExprTokenizer)

// WithPostfix switches the tokenizer to postfix text: a bare '-' is always a
// binary operator, "u-" is unary minus and signed numbers start at a token
// boundary.
func WithPostfix() Option {
	return func(t *ExprTokenizer) {
		t.postfix = true
	}
}

func NewExprTokenizer(opts ...Option) *ExprTokenizer {
	t := &ExprTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `sin(x) + -3.5*y` -> sin ( x ) + -3.5 * y
// Token values are slices of input, so invalid UTF-8 bytes survive as
// single-byte Unknown tokens.
func (t *ExprTokenizer) Tokenize(input string) []Token {
	s := newScanner(input, t.postfix)
	return s.scan()
}

type scanner struct {
	src     string
	input   []rune
	offsets []int // byte offset of each rune in src, plus len(src)
	pos     int
	postfix bool
	tokens  []Token
}

func newScanner(src string, postfix bool) *scanner {
	s := &scanner{src: src, postfix: postfix}
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		s.input = append(s.input, r)
		s.offsets = append(s.offsets, i)
		i += size
	}
	s.offsets = append(s.offsets, len(src))
	return s
}

// text returns the source bytes covering runes [start, end).
func (s *scanner) text(start, end int) string {
	return s.src[s.offsets[start]:s.offsets[end]]
}

func (s *scanner) scan() []Token {
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		switch {
		case unicode.IsSpace(ch):
			s.pos++
		case s.atNumber():
			s.emit(Number, s.readNumber(s.pos))
		case s.atSignedNumber():
			s.emit(Number, s.readNumber(s.pos+1))
		case unicode.IsLetter(ch):
			s.readWord()
		case s.atTwoCharOperator():
			s.emit(BinaryOperator, s.text(s.pos, s.pos+2))
		case ch == '(':
			s.emit(LeftParen, "(")
			s.pos++
		case ch == ')':
			s.emit(RightParen, ")")
			s.pos++
		case ch == ',':
			s.emit(Comma, ",")
			s.pos++
		case ch == '-':
			s.emit(s.classifyMinus(), "-")
			s.pos++
		case strings.ContainsRune(operatorChars, ch):
			s.emit(BinaryOperator, s.text(s.pos, s.pos+1))
			s.pos++
		default:
			s.emit(Unknown, s.text(s.pos, s.pos+1))
			s.pos++
		}
	}
	return s.tokens
}

func (s *scanner) emit(kind Kind, value string) {
	s.tokens = append(s.tokens, Token{Kind: kind, Value: value})
}

func (s *scanner) peek(offset int) (rune, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.input) {
		return 0, false
	}
	return s.input[i], true
}

func (s *scanner) digitAt(offset int) bool {
	r, ok := s.peek(offset)
	return ok && unicode.IsDigit(r)
}

// atNumber reports a digit, or a '.' directly followed by a digit.
func (s *scanner) atNumber() bool {
	ch := s.input[s.pos]
	return unicode.IsDigit(ch) || (ch == '.' && s.digitAt(1))
}

func (s *scanner) atSignedNumber() bool {
	if s.input[s.pos] != '-' {
		return false
	}
	if !s.digitAt(1) {
		if r, ok := s.peek(1); !ok || r != '.' || !s.digitAt(2) {
			return false
		}
	}
	if s.postfix {
		prev, ok := s.peek(-1)
		return !ok || unicode.IsSpace(prev)
	}
	return expectsOperand(s.last())
}

// readNumber consumes digits with at most one '.' starting at from and
// returns the literal including anything between s.pos and from.
func (s *scanner) readNumber(from int) string {
	start := s.pos
	s.pos = from
	hasDot := false
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if ch == '.' && !hasDot {
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			break
		}
		s.pos++
	}
	return s.text(start, s.pos)
}

func (s *scanner) readWord() {
	start := s.pos
	for s.pos < len(s.input) && unicode.IsLetter(s.input[s.pos]) {
		s.pos++
	}
	word := s.text(start, s.pos)

	if s.postfix && word == "u" && s.pos < len(s.input) && s.input[s.pos] == '-' {
		s.pos++
		s.emit(UnaryOperator, operator.UnaryMinus)
		return
	}
	if operator.IsFunction(word) {
		s.emit(Function, word)
		return
	}
	s.emit(Identifier, word)
}

func (s *scanner) atTwoCharOperator() bool {
	if s.pos+1 >= len(s.input) {
		return false
	}
	_, ok := twoCharOperators[s.text(s.pos, s.pos+2)]
	return ok
}

func (s *scanner) last() *Token {
	if len(s.tokens) == 0 {
		return nil
	}
	return &s.tokens[len(s.tokens)-1]
}

func (s *scanner) classifyMinus() Kind {
	if s.postfix {
		return BinaryOperator
	}
	return ClassifyMinus(s.last())
}

// ClassifyMinus decides whether a '-' following prev negates (UnaryOperator)
// or subtracts (BinaryOperator). prev is nil at the start of input.
func ClassifyMinus(prev *Token) Kind {
	if expectsOperand(prev) {
		return UnaryOperator
	}
	return BinaryOperator
}

func expectsOperand(prev *Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Kind {
	case BinaryOperator, UnaryOperator, LeftParen, Comma:
		return true
	default:
		return false
	}
}

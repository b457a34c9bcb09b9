package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "parenthesized sum",
			input: "(a+b)*c",
			expected: []Token{
				{LeftParen, "("}, {Identifier, "a"}, {BinaryOperator, "+"}, {Identifier, "b"},
				{RightParen, ")"}, {BinaryOperator, "*"}, {Identifier, "c"},
			},
		},
		{
			name:     "leading negative number",
			input:    "-3+4",
			expected: []Token{{Number, "-3"}, {BinaryOperator, "+"}, {Number, "4"}},
		},
		{
			name:     "minus after operand is binary",
			input:    "a-3",
			expected: []Token{{Identifier, "a"}, {BinaryOperator, "-"}, {Number, "3"}},
		},
		{
			name:  "negative number after operator and paren",
			input: "2*(-3)",
			expected: []Token{
				{Number, "2"}, {BinaryOperator, "*"}, {LeftParen, "("}, {Number, "-3"}, {RightParen, ")"},
			},
		},
		{
			name:     "unary minus before identifier",
			input:    "-x",
			expected: []Token{{UnaryOperator, "-"}, {Identifier, "x"}},
		},
		{
			name:     "double negation",
			input:    "--3",
			expected: []Token{{UnaryOperator, "-"}, {Number, "-3"}},
		},
		{
			name:     "decimal numbers",
			input:    "3.14 * .5",
			expected: []Token{{Number, "3.14"}, {BinaryOperator, "*"}, {Number, ".5"}},
		},
		{
			name:     "trailing decimal point",
			input:    "3.",
			expected: []Token{{Number, "3."}},
		},
		{
			name:     "second dot starts a new number",
			input:    "1.2.3",
			expected: []Token{{Number, "1.2"}, {Number, ".3"}},
		},
		{
			name:     "isolated dot is unknown",
			input:    "a . b",
			expected: []Token{{Identifier, "a"}, {Unknown, "."}, {Identifier, "b"}},
		},
		{
			name:  "functions",
			input: "sin(x)+sqrt(y)",
			expected: []Token{
				{Function, "sin"}, {LeftParen, "("}, {Identifier, "x"}, {RightParen, ")"}, {BinaryOperator, "+"},
				{Function, "sqrt"}, {LeftParen, "("}, {Identifier, "y"}, {RightParen, ")"},
			},
		},
		{
			name:     "minus after function is binary",
			input:    "sin-3",
			expected: []Token{{Function, "sin"}, {BinaryOperator, "-"}, {Number, "3"}},
		},
		{
			name:     "two char operators",
			input:    "a**2 == b && c || d <= e",
			expected: []Token{
				{Identifier, "a"}, {BinaryOperator, "**"}, {Number, "2"}, {BinaryOperator, "=="}, {Identifier, "b"},
				{BinaryOperator, "&&"}, {Identifier, "c"}, {BinaryOperator, "||"}, {Identifier, "d"},
				{BinaryOperator, "<="}, {Identifier, "e"},
			},
		},
		{
			name:     "adjacent operators tokenize independently",
			input:    "a+*b",
			expected: []Token{{Identifier, "a"}, {BinaryOperator, "+"}, {BinaryOperator, "*"}, {Identifier, "b"}},
		},
		{
			name:     "comma and negative argument",
			input:    "f(a,-1)",
			expected: []Token{
				{Identifier, "f"}, {LeftParen, "("}, {Identifier, "a"}, {Comma, ","}, {Number, "-1"}, {RightParen, ")"},
			},
		},
		{
			name:     "unknown characters pass through",
			input:    "a $ b#",
			expected: []Token{{Identifier, "a"}, {Unknown, "$"}, {Identifier, "b"}, {Unknown, "#"}},
		},
		{
			name:     "letters and digits split",
			input:    "x2",
			expected: []Token{{Identifier, "x"}, {Number, "2"}},
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: nil,
		},
	}

	tokenizer := NewExprTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizer.Tokenize(tt.input))
		})
	}
}

func TestExprTokenizer_Postfix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "trailing minus is binary",
			input:    "a b - -",
			expected: []Token{{Identifier, "a"}, {Identifier, "b"}, {BinaryOperator, "-"}, {BinaryOperator, "-"}},
		},
		{
			name:     "unary minus spelling",
			input:    "-3 u-",
			expected: []Token{{Number, "-3"}, {UnaryOperator, "u-"}},
		},
		{
			name:     "signed number at token boundary",
			input:    "a -3 *",
			expected: []Token{{Identifier, "a"}, {Number, "-3"}, {BinaryOperator, "*"}},
		},
		{
			name:     "glued minus stays an operator",
			input:    "a b-3",
			expected: []Token{{Identifier, "a"}, {Identifier, "b"}, {BinaryOperator, "-"}, {Number, "3"}},
		},
		{
			name:     "function",
			input:    "x sin",
			expected: []Token{{Identifier, "x"}, {Function, "sin"}},
		},
	}

	tokenizer := NewExprTokenizer(WithPostfix())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizer.Tokenize(tt.input))
		})
	}
}

func TestExprTokenizer_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"(a + b) * c",
		"-5 * (3 + 2)",
		"sin( x ) ** 2 / ln(y)",
		"a == b != c && d",
		"1.5.2 - - x @ ~",
		"a+\xffb",
		"\xc3(x\x80) - é",
	}

	tokenizer := NewExprTokenizer()
	stripSpace := strings.NewReplacer(" ", "", "\t", "")

	for _, input := range inputs {
		joined := strings.Join(Values(tokenizer.Tokenize(input)), "")
		assert.Equal(t, stripSpace.Replace(input), joined, input)
	}
}

func TestExprTokenizer_InvalidUTF8(t *testing.T) {
	tokens := NewExprTokenizer().Tokenize("a+\xffb")

	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Kind: Unknown, Value: "\xff"}, tokens[2])
	assert.Equal(t, []byte("a+\xffb"), []byte(strings.Join(Values(tokens), "")))
}

func TestClassifyMinus(t *testing.T) {
	tests := []struct {
		prev     *Token
		expected Kind
	}{
		{nil, UnaryOperator},
		{&Token{BinaryOperator, "*"}, UnaryOperator},
		{&Token{UnaryOperator, "-"}, UnaryOperator},
		{&Token{LeftParen, "("}, UnaryOperator},
		{&Token{Comma, ","}, UnaryOperator},
		{&Token{Identifier, "a"}, BinaryOperator},
		{&Token{Number, "1"}, BinaryOperator},
		{&Token{RightParen, ")"}, BinaryOperator},
		{&Token{Function, "sin"}, BinaryOperator},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyMinus(tt.prev), "%v", tt.prev)
	}
}

func TestJoin(t *testing.T) {
	tokens := []Token{{Identifier, "a"}, {Identifier, "b"}, {BinaryOperator, "+"}}
	assert.Equal(t, "a b +", Join(tokens))
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "NUMBER(3)", Token{Number, "3"}.String())
}

package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
version: "1.0"
cases:
  - id: c1
    kind: Infix
    expression: "a+b"
    expect:
      accepted: true
      postfix: "a b +"
  - id: c2
    kind: convert
    expression: "(a"
    expect:
      error: mismatched
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", s.Name)
		require.Len(t, s.Cases, 2)

		c1 := s.Cases[0]
		assert.Equal(t, domain.KindInfix, c1.Kind)
		require.NotNil(t, c1.Expect.Accepted)
		assert.True(t, *c1.Expect.Accepted)
		require.NotNil(t, c1.Expect.Postfix)
		assert.Equal(t, "a b +", *c1.Expect.Postfix)

		c2 := s.Cases[1]
		assert.Nil(t, c2.Expect.Accepted)
		assert.Equal(t, "mismatched", c2.Expect.Error)
	})

	t.Run("explicit false is kept", func(t *testing.T) {
		yaml := `
name: test
cases:
  - id: c1
    kind: postfix
    expression: "a +"
    expect: { accepted: false }
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		require.NotNil(t, s.Cases[0].Expect.Accepted)
		assert.False(t, *s.Cases[0].Expect.Accepted)
	})

	errCases := []struct {
		name string
		yaml string
		msg  string
	}{
		{
			name: "no cases",
			yaml: "name: empty\ncases: []\n",
			msg:  "suite has no cases",
		},
		{
			name: "missing id",
			yaml: "cases:\n  - kind: infix\n    expression: a\n    expect: {accepted: true}\n",
			msg:  "case at index 0 has no id",
		},
		{
			name: "duplicate id",
			yaml: "cases:\n  - {id: a, kind: infix, expression: a, expect: {accepted: true}}\n  - {id: a, kind: infix, expression: b, expect: {accepted: true}}\n",
			msg:  `duplicate case id "a"`,
		},
		{
			name: "missing kind",
			yaml: "cases:\n  - {id: a, expression: a, expect: {accepted: true}}\n",
			msg:  `case "a" has no kind`,
		},
		{
			name: "unknown kind",
			yaml: "cases:\n  - {id: a, kind: prefix, expression: a, expect: {accepted: true}}\n",
			msg:  "invalid check kind",
		},
		{
			name: "no expectations",
			yaml: "cases:\n  - {id: a, kind: infix, expression: a}\n",
			msg:  `case "a" has no expectations`,
		},
		{
			name: "postfix case expecting conversion",
			yaml: "cases:\n  - {id: a, kind: postfix, expression: a, expect: {postfix: a}}\n",
			msg:  "postfix cases can only expect accepted",
		},
		{
			name: "malformed yaml",
			yaml: "cases: [",
			msg:  "parse suite YAML",
		},
	}

	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "arithmetic", s.Name)
	assert.Len(t, s.Cases, 9)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package suite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestRunner_ArithmeticSuitePasses(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)

	res, err := NewRunner(checker.New()).Run(context.Background(), s)
	require.NoError(t, err)

	for _, c := range res.Cases {
		assert.True(t, c.Passed, "case %s: %v", c.ID, c.Failures)
	}
	assert.True(t, res.AllPassed())
	assert.Equal(t, 9, res.Summary.Total)
	assert.Equal(t, 9, res.Summary.Passed)
	assert.Equal(t, 9, res.Summary.Latency.SampleCount)
}

func TestRunner_ReportsFailures(t *testing.T) {
	s := &Suite{
		Name: "wrong",
		Cases: []Case{
			{ID: "accepted", Kind: domain.KindInfix, Expression: "a+", Expect: Expectation{Accepted: boolPtr(true)}},
			{ID: "postfix", Kind: domain.KindConvert, Expression: "a+b*c", Expect: Expectation{Postfix: strPtr("a b + c *")}},
			{ID: "missing-error", Kind: domain.KindConvert, Expression: "a+b", Expect: Expectation{Error: "mismatched"}},
			{ID: "unexpected-error", Kind: domain.KindConvert, Expression: "a)", Expect: Expectation{Postfix: strPtr("a")}},
		},
	}

	res, err := NewRunner(checker.New()).Run(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, res.AllPassed())
	assert.Equal(t, 4, res.Summary.Failed)

	assert.Equal(t, []string{"accepted: want true, got false (not enough operands)"}, res.Cases[0].Failures)
	assert.Equal(t, []string{`postfix: want "a b + c *", got "a b c * +"`}, res.Cases[1].Failures)
	assert.Equal(t, []string{`error: want "mismatched", got none`}, res.Cases[2].Failures)
	require.Len(t, res.Cases[3].Failures, 2)
	assert.Contains(t, res.Cases[3].Failures[1], "error: unexpected")
}

func TestRunner_RecordsChecks(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)

	store := in_mem.NewInMemStorer()
	_, err = NewRunner(checker.New(), WithRecorder(store)).Run(context.Background(), s)
	require.NoError(t, err)

	page, err := store.List(context.Background(), pagination.OffsetRequest{Size: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(9), page.Total)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Suite{Cases: []Case{{ID: "a", Kind: domain.KindInfix, Expression: "a", Expect: Expectation{Accepted: boolPtr(true)}}}}
	_, err := NewRunner(checker.New()).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

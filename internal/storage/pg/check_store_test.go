//go:build integration

package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/expr-pda/pkg/testing"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *CheckStore
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "pda_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString, MaxConns: 4})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}
	testStore = NewCheckStore(testPool)

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE checks")
	require.NoError(t, err)
}

func TestCheckStore_SaveAndGet(t *testing.T) {
	truncate(t)

	check := domain.Check{
		ID:         uuid.New(),
		Kind:       domain.KindInfix,
		Expression: "(a+b)*c",
		Postfix:    "a b + c *",
		Accepted:   true,
		Reason:     "accepted",
		CreatedAt:  time.Now().UTC(),
	}

	id, err := testStore.Save(testCtx, check)
	require.NoError(t, err)
	assert.Equal(t, check.ID, id)

	got, err := testStore.Get(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, check.Expression, got.Expression)
	assert.Equal(t, check.Postfix, got.Postfix)
	assert.Equal(t, domain.KindInfix, got.Kind)
	assert.True(t, got.Accepted)
	assert.WithinDuration(t, check.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestCheckStore_SaveAssignsID(t *testing.T) {
	truncate(t)

	id, err := testStore.Save(testCtx, domain.Check{Kind: domain.KindPostfix, Expression: "a +", Reason: "not enough operands"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestCheckStore_GetMissing(t *testing.T) {
	_, err := testStore.Get(testCtx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCheckStore_SaveBulkAndList(t *testing.T) {
	truncate(t)

	base := time.Now().UTC().Add(-time.Hour)
	checks := make([]domain.Check, 0, 5)
	for i := 0; i < 5; i++ {
		checks = append(checks, domain.Check{
			Kind:       domain.KindConvert,
			Expression: "a+b",
			Postfix:    "a b +",
			Accepted:   true,
			Reason:     "converted",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	require.NoError(t, testStore.SaveBulk(testCtx, checks))

	page, err := testStore.List(testCtx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)
	assert.True(t, page.Items[0].CreatedAt.After(page.Items[1].CreatedAt))

	last, err := testStore.List(testCtx, pagination.OffsetRequest{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.False(t, last.HasMore)
}

func TestCheckStore_Ping(t *testing.T) {
	assert.NoError(t, testStore.Ping(testCtx))
}

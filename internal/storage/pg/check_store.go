package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

var _ storage.Store = (*CheckStore)(nil)

var checkColumns = []string{"id", "kind", "expression", "postfix", "accepted", "reason", "error", "created_at"}

// CheckStore keeps the check history in the checks table.
type CheckStore struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewCheckStore(pool *ConnectionPool) *CheckStore {
	return &CheckStore{pool: pool, db: pool.conn}
}

func (s *CheckStore) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	normalize(&check, time.Now().UTC())

	cmd := `
        INSERT INTO checks (id, kind, expression, postfix, accepted, reason, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		check.ID,
		string(check.Kind),
		check.Expression,
		check.Postfix,
		check.Accepted,
		check.Reason,
		check.Error,
		check.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert check: %w", err)
	}

	return id, nil
}

func (s *CheckStore) SaveBulk(ctx context.Context, checks []domain.Check) error {
	if len(checks) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(checks))
	now := time.Now().UTC()

	for i, c := range checks {
		normalize(&c, now)
		rows[i] = []interface{}{
			c.ID,
			string(c.Kind),
			c.Expression,
			c.Postfix,
			c.Accepted,
			c.Reason,
			c.Error,
			c.CreatedAt,
		}
	}

	n, err := s.db.CopyFrom(ctx, pgx.Identifier{"checks"}, checkColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert checks: %w", err)
	}

	slog.Info("Bulk insert completed", "rows", n, "table", "checks")
	return nil
}

func (s *CheckStore) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	query := `
        SELECT id, kind, expression, postfix, accepted, reason, error, created_at
        FROM checks
        WHERE id = $1
    `
	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query check: %w", err)
	}

	check, err := pgx.CollectExactlyOneRow(rows, scanCheck)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan check: %w", err)
	}
	return &check, nil
}

func (s *CheckStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM checks`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count checks: %w", err)
	}

	query := `
        SELECT id, kind, expression, postfix, accepted, reason, error, created_at
        FROM checks
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := s.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	checks, err := pgx.CollectRows(rows, scanCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to scan checks: %w", err)
	}

	return pagination.NewOffsetResult(checks, total, page), nil
}

func (s *CheckStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *CheckStore) Close() {
	s.pool.Close()
}

func scanCheck(row pgx.CollectableRow) (domain.Check, error) {
	var (
		c    domain.Check
		kind string
	)
	err := row.Scan(&c.ID, &kind, &c.Expression, &c.Postfix, &c.Accepted, &c.Reason, &c.Error, &c.CreatedAt)
	if err != nil {
		return domain.Check{}, err
	}
	c.Kind = domain.CheckKind(kind)
	return c, nil
}

func normalize(c *domain.Check, now time.Time) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}

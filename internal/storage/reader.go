package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

type Reader interface {
	// Get returns the check with the given id or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Check, error)
	// List returns checks newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error)
}

// Store is a history backend that can both record and read checks.
type Store interface {
	Recorder
	Reader
	Ping(ctx context.Context) error
	Close()
}

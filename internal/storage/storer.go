package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
)

// Recorder persists finished checks.
type Recorder interface {
	Save(ctx context.Context, check domain.Check) (uuid.UUID, error)
	SaveBulk(ctx context.Context, checks []domain.Check) error
}

type Type string

const (
	ES       Type = "es"
	PG       Type = "pg"
	InMem    Type = "in_mem"
	JSONFile Type = "json_file"
)

var (
	ErrNotFound          = errors.New("check not found")
	ErrUnsupportedStorer = errors.New("unsupported storer type")
)

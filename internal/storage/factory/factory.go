package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/es"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/pg"
)

// NewStore creates the history backend selected by cfg.Type.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewCheckStore(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		store, err := es.NewCheckStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return store, nil

	case storage.JSONFile:
		if cfg.JSONFile == "" {
			return nil, fmt.Errorf("missing JSON history file path")
		}
		return storage.NewJsonFileStorer(cfg.JSONFile), nil

	case storage.InMem, "":
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorer, cfg.Type)
	}
}

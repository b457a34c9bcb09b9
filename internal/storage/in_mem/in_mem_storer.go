package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

var _ storage.Store = (*InMemStorer)(nil)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Check
	order       []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Check),
	}
}

func (s *InMemStorer) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	id := s.put(check)
	slog.Debug("Saved check to in-memory storage", "id", id, "kind", check.Kind)
	return id, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, checks []domain.Check) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, check := range checks {
		s.put(check)
	}
	slog.Debug("Saved checks to in-memory storage", "count", len(checks))
	return nil
}

// put must be called with the write lock held.
func (s *InMemStorer) put(check domain.Check) uuid.UUID {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CreatedAt.IsZero() {
		check.CreatedAt = time.Now().UTC()
	}
	if _, exists := s.storage[check.ID]; !exists {
		s.order = append(s.order, check.ID)
	}
	s.storage[check.ID] = check
	return check.ID
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	check, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &check, nil
}

func (s *InMemStorer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	s.storageLock.RLock()
	all := make([]domain.Check, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		all = append(all, s.storage[s.order[i]])
	}
	s.storageLock.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := max(0, min(page.Offset(), len(all)))
	end := min(start+page.Size, len(all))

	return pagination.NewOffsetResult(all[start:end], int64(len(all)), page), nil
}

func (s *InMemStorer) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemStorer) Close() {}

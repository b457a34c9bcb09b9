package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

var _ Store = (*JsonFileStorer)(nil)

// JsonFileStorer appends checks to a JSON Lines file. Reads scan the whole
// file, so it suits CLI runs and small histories.
type JsonFileStorer struct {
	mu       sync.Mutex
	filePath string
}

func NewJsonFileStorer(filePath string) *JsonFileStorer {
	return &JsonFileStorer{
		filePath: filePath,
	}
}

func (s *JsonFileStorer) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	check = withDefaults(check)
	if err := s.append(check); err != nil {
		return uuid.Nil, err
	}
	slog.Debug("Saved check to JSON file", "id", check.ID, "path", s.filePath)
	return check.ID, nil
}

func (s *JsonFileStorer) SaveBulk(ctx context.Context, checks []domain.Check) error {
	if len(checks) == 0 {
		return nil
	}
	prepared := make([]domain.Check, len(checks))
	for i, c := range checks {
		prepared[i] = withDefaults(c)
	}
	return s.append(prepared...)
}

func (s *JsonFileStorer) append(checks ...domain.Check) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, c := range checks {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode check %s: %w", c.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

func (s *JsonFileStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	// later lines win when an id was written twice
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *JsonFileStorer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	slices.Reverse(all)
	slices.SortStableFunc(all, func(a, b domain.Check) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	start := max(0, min(page.Offset(), len(all)))
	end := min(start+page.Size, len(all))
	return pagination.NewOffsetResult(all[start:end], int64(len(all)), page), nil
}

func (s *JsonFileStorer) readAll() ([]domain.Check, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var checks []domain.Check
	dec := json.NewDecoder(f)
	for dec.More() {
		var c domain.Check
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode history file: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

// Ping verifies the history file can be opened for appending.
func (s *JsonFileStorer) Ping(ctx context.Context) error {
	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func (s *JsonFileStorer) Close() {}

func withDefaults(c domain.Check) domain.Check {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return c
}

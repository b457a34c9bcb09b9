package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

var _ storage.Store = (*CheckStore)(nil)

// Document is the indexed form of a check.
type Document struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Accepted   bool      `json:"accepted"`
	Reason     string    `json:"reason"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

type CheckStore struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewCheckStore(ctx context.Context, config ClientConfig) (*CheckStore, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &CheckStore{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *CheckStore) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	doc := toDocument(check)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index check: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse check ID: %w", err)
	}

	slog.Debug("check indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return id, nil
}

func (s *CheckStore) SaveBulk(ctx context.Context, checks []domain.Check) error {
	if len(checks) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, check := range checks {
		doc := toDocument(check)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(checks),
		"index", s.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d checks", n, len(checks))
	}
	return nil
}

func (s *CheckStore) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get check: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	check, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *CheckStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	sortOrderDesc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortOrderDesc},
			},
		}).
		From(page.Offset()).
		Size(page.Size).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search checks: %w", err)
	}

	checks := make([]domain.Check, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		check, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(checks, total, page), nil
}

func (s *CheckStore) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping returned a non-success status")
	}
	return nil
}

func (s *CheckStore) Close() {}

func (s *CheckStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"kind":       types.NewKeywordProperty(),
			"expression": expression,
			"postfix":    types.NewKeywordProperty(),
			"accepted":   types.NewBooleanProperty(),
			"reason":     types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"created_at": types.NewDateProperty(),
			"indexed_at": types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func toDocument(check domain.Check) Document {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CreatedAt.IsZero() {
		check.CreatedAt = time.Now().UTC()
	}
	return Document{
		ID:         check.ID.String(),
		Kind:       string(check.Kind),
		Expression: check.Expression,
		Postfix:    check.Postfix,
		Accepted:   check.Accepted,
		Reason:     check.Reason,
		Error:      check.Error,
		CreatedAt:  check.CreatedAt,
		IndexedAt:  time.Now().UTC(),
	}
}

func (d Document) toDomain() (domain.Check, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Check{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return domain.Check{
		ID:         id,
		Kind:       domain.CheckKind(d.Kind),
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Accepted:   d.Accepted,
		Reason:     d.Reason,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}, nil
}

package factory

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/es"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/pg"
	"github.com/DjordjeVuckovic/expr-pda/pkg/config/env"
)

const (
	defaultIndexName = "pda-checks"
	defaultJSONFile  = "pda_history.jsonl"
)

var supportedTypes = []storage.Type{storage.ES, storage.PG, storage.InMem, storage.JSONFile}

type StorageConfig struct {
	storage.Type
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
	JSONFile string
}

// LoadEnv reads the history backend settings. STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(env.GetOr("STORAGE_TYPE", string(storage.InMem)))
	if !slices.Contains(supportedTypes, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			supportedTypes)
	}

	var esCfg *es.ClientConfig
	if storageType == storage.ES {
		esCfg = &es.ClientConfig{
			Addresses:  env.GetList("ES_ADDRESSES"),
			IndexName:  env.GetOr("ES_INDEX_NAME", defaultIndexName),
			Username:   env.GetOr("ES_USERNAME", ""),
			Password:   env.GetOr("ES_PASSWORD", ""),
			MaxRetries: env.GetInt("ES_MAX_RETRIES", 0),
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr:  env.GetOr("PG_CONNECTION_STRING", ""),
			MaxConns: int32(env.GetInt("PG_MAX_CONNS", 0)),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	var jsonFile string
	if storageType == storage.JSONFile {
		jsonFile = env.GetOr("JSON_FILE_PATH", defaultJSONFile)
	}

	return &StorageConfig{
		Type:     storageType,
		Pg:       pgCfg,
		Es:       esCfg,
		JSONFile: jsonFile,
	}, nil
}

package es

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

const defaultMaxRetries = 3

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	// MaxRetries of 0 uses defaultMaxRetries; a negative value disables retries.
	MaxRetries int
}

var errNoAddresses = errors.New("no Elasticsearch addresses configured")

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if len(config.Addresses) == 0 {
		return nil, errNoAddresses
	}

	cfg := elasticsearch.Config{
		Addresses:     config.Addresses,
		RetryOnStatus: []int{http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
	}

	switch {
	case config.MaxRetries < 0:
		cfg.DisableRetry = true
	case config.MaxRetries == 0:
		cfg.MaxRetries = defaultMaxRetries
	default:
		cfg.MaxRetries = config.MaxRetries
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

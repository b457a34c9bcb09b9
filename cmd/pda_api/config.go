package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/expr-pda/internal/server"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/factory"
	"github.com/DjordjeVuckovic/expr-pda/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type PdaApiConfig struct {
	ServerConfig  server.Config
	StorageConfig factory.StorageConfig
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*PdaApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/pda_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env.GetOr("LOG_LEVEL", "info"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using info", "error", err)
		level = slog.LevelInfo
	}

	return &PdaApiConfig{
		ServerConfig:  *serverCfg,
		StorageConfig: *storageCfg,
		LogLevel:      level,
	}, nil
}

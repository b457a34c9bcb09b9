// Package main Expression PDA API
// @title Expression PDA API
// @version 1.0
// @description Converts infix arithmetic to postfix and validates postfix with a pushdown automaton
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/expr-pda/api/docs"
	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
	"github.com/DjordjeVuckovic/expr-pda/internal/router"
	"github.com/DjordjeVuckovic/expr-pda/internal/server"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/expr-pda/pkg/server"
)

const storeInitTimeout = 30 * time.Second

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, err := factory.NewStore(initCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create history store", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("History store ready", "type", cfg.StorageConfig.Type)

	healthChecker := pkgserver.NewPingHealthChecker(string(cfg.StorageConfig.Type), store, 2*time.Second)

	s := server.New(&cfg.ServerConfig, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Expression PDA API is running")
	})

	checkRouter := router.NewCheckRouter(s.Echo, checker.New(), store)
	checkRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

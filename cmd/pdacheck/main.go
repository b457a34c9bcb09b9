package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/report"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage/factory"
	"github.com/DjordjeVuckovic/expr-pda/internal/suite"
	"github.com/DjordjeVuckovic/expr-pda/pkg/config/env"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	var store storage.Store
	if cfg.Record {
		store, err = openStore(ctx)
		if err != nil {
			slog.Error("Failed to open history store", "error", err)
			return exitRejected
		}
		defer store.Close()
	}

	c := checker.New()
	switch {
	case cfg.SuitePath != "":
		return runSuite(ctx, cfg, c, store, stdout)
	case cfg.Postfix != "":
		rep := c.CheckPostfix(cfg.Postfix)
		record(ctx, store, domain.KindPostfix, rep)
		return printVerdict(stdout, "postfix", rep, cfg.Trace)
	case cfg.Convert:
		rep := c.CheckInfix(cfg.Infix)
		record(ctx, store, domain.KindConvert, rep)
		if rep.Err != nil {
			fmt.Fprintln(stdout, "Error converting infix to postfix:", rep.Err)
			return exitRejected
		}
		fmt.Fprintln(stdout, "Postfix:", rep.Postfix)
		return exitOK
	default:
		rep := c.CheckInfix(cfg.Infix)
		record(ctx, store, domain.KindInfix, rep)
		if rep.Err != nil {
			fmt.Fprintln(stdout, "Error: mismatched parentheses or invalid infix:", rep.Err)
			return exitRejected
		}
		fmt.Fprintln(stdout, "Converted postfix:", rep.Postfix)
		return printVerdict(stdout, "infix", rep, cfg.Trace)
	}
}

func printVerdict(w io.Writer, kind string, rep checker.Report, trace bool) int {
	if trace {
		report.WriteTrace(rep, w)
	}
	if rep.Accepted() {
		fmt.Fprintf(w, "ACCEPTED: %s expression %q is valid\n", kind, rep.Expression)
		return exitOK
	}
	fmt.Fprintf(w, "REJECTED: %s expression %q is invalid (%s)\n", kind, rep.Expression, rep.Reason())
	return exitRejected
}

func runSuite(ctx context.Context, cfg cliConfig, c *checker.Checker, store storage.Store, stdout io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return exitRejected
	}

	var opts []suite.Option
	if store != nil {
		opts = append(opts, suite.WithRecorder(store))
	}

	res, err := suite.NewRunner(c, opts...).Run(ctx, s)
	if err != nil && res == nil {
		slog.Error("Suite run failed", "suite", s.Name, "error", err)
		return exitRejected
	}
	if err != nil {
		slog.Warn("Suite results were not recorded", "suite", s.Name, "error", err)
	}

	rep := report.New(s, res)
	report.WriteTable(rep, stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rep, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			return exitRejected
		}
		fmt.Fprintf(stdout, "\nReport written to %s\n", cfg.Output)
	}

	if !res.AllPassed() {
		return exitRejected
	}
	return exitOK
}

func openStore(ctx context.Context) (storage.Store, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/pdacheck/.env"); err != nil {
		slog.Debug("No .env loaded, continuing with existing environment", "error", err)
	}

	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	return factory.NewStore(ctx, *cfg)
}

func record(ctx context.Context, store storage.Recorder, kind domain.CheckKind, rep checker.Report) {
	if store == nil {
		return
	}
	id, err := store.Save(ctx, domain.NewCheck(kind, rep))
	if err != nil {
		slog.Warn("Failed to record check", "error", err)
		return
	}
	slog.Debug("Check recorded", "id", id)
}

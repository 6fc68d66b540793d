package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/standings-gopher/internal/app"
	"github.com/riskibarqy/standings-gopher/internal/config"
	"github.com/riskibarqy/standings-gopher/internal/observability"
	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

var errUsage = errors.Mark(errors.New("invalid usage"), usecase.ErrConfig)

// run is main with its process fundamentals passed in, so tests can drive
// it without touching the real environment.
func run(ctx context.Context, args []string, getenv func(string) string, stderr *os.File) error {
	name := "standings"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s [league]\n\n", name)
		fmt.Fprintln(flags.Output(), "Writes gophermap and one <id>.txt standings page per competition.")
		fmt.Fprintln(flags.Output(), "With a league (id or name) only that competition is fetched.")
		fmt.Fprintln(flags.Output(), "API_KEY must be set in the environment.")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.Wrap(errUsage, err.Error())
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return errors.Wrapf(errUsage, "expected at most one league, got %d arguments", flags.NArg())
	}

	cfg, err := config.LoadFrom(getenv)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.NewForTerminal(cfg.LogLevel, stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	publisher, err := app.NewStandingsPublisher(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "build app")
	}

	report, err := publisher.Publish(ctx, flags.Arg(0))
	if errors.Is(err, usecase.ErrNotFound) {
		flags.Usage()
		return errors.Mark(errors.Mark(err, errUsage), usecase.ErrConfig)
	}
	if err != nil {
		return err
	}

	logger.Info("Done.", "competitions", len(report.Tables), "output_dir", cfg.OutputDir)
	return nil
}

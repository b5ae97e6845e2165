// Package main is a smoke check against an Asaas environment: it lists one
// page of customers with the configured API key and prints the totals.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/go-asaas"
	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/internal/platform/config"
	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/internal/platform/metrics"
	"github.com/jsamuelsen/go-asaas/internal/platform/telemetry"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"
)

// pageSize is how many customers are fetched and printed.
const pageSize = 10

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	profile := os.Getenv("ASAAS_PROFILE")
	if profile == "" {
		profile = "sandbox"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	env, err := asaas.ParseEnvironment(cfg.Asaas.Environment)
	if err != nil {
		return err
	}

	logger.Info("starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", env.String()),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     true,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  env.String(),
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	recorder := metrics.NewRecorder()
	if cfg.Metrics.Enabled {
		stopMetrics := serveMetrics(logger, &cfg.Metrics, recorder)
		defer stopMetrics()
	}

	client, err := asaas.NewHTTP(asaas.HTTPConfig{
		Environment: env,
		APIKey:      cfg.Asaas.APIKey,
		Endpoint:    cfg.Asaas.Endpoint,
		Timeout:     cfg.Asaas.Timeout,
		UserAgent:   cfg.Asaas.UserAgent,
		Logger:      logger,
		Metrics:     recorder,
	})
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	var (
		customers *domain.Page[domain.Customer]
		inDebt    *domain.Page[domain.Payment]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = client.Customer().GetAll(gctx, domain.Filters{}.WithPage(0, pageSize))
		if err != nil {
			return fmt.Errorf("listing customers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		filters := domain.NewFilters("status", domain.InDebtFilterValue()).WithPage(0, 1)
		inDebt, err = client.Payment().GetAll(gctx, filters)
		if err != nil {
			return fmt.Errorf("listing payments in debt: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return printSummary(out, client, customers, inDebt)
}

func printSummary(
	out io.Writer,
	client *asaas.Client,
	page *domain.Page[domain.Customer],
	inDebt *domain.Page[domain.Payment],
) error {
	_, err := fmt.Fprintf(out, "%s: %d customers in total, showing %d; %d payments in debt\n",
		client.Endpoint(), page.Meta.TotalCount, page.Len(), inDebt.Meta.TotalCount)
	if err != nil {
		return err
	}

	for _, c := range page.Items {
		if _, err := fmt.Fprintf(out, "  %s\t%s\t%s\n", c.ID, c.Name, c.Email); err != nil {
			return err
		}
	}

	return nil
}

// serveMetrics exposes the recorder on its own listener and returns a stop func.
func serveMetrics(logger *slog.Logger, cfg *config.MetricsConfig, recorder *metrics.Recorder) func() {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, recorder.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	logger.Info("serving metrics", slog.String("addr", cfg.Addr), slog.String("path", cfg.Path))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("metrics server shutdown", slog.Any("error", err))
		}
	}
}

// cmd/sim/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/metrics"
	"line-defense/internal/sim"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("sim failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "line-defense.yaml", "path to the run config")
	serve := flag.Bool("serve", false, "keep serving /metrics and /runs after the batch finishes")
	flag.Parse()

	cfg, err := config.LoadRunConfig(*configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	lib, err := defs.LoadLibrary()
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}

	m := metrics.New()
	store := sim.NewStore()
	runner, err := sim.NewRunner(cfg, lib, m, store)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Sim.Listen,
		Handler:           sim.NewRouter(m, store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	batchDone := make(chan struct{})

	g.Go(func() error {
		slog.Info("metrics server listening", "addr", cfg.Sim.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-batchDone
		if *serve {
			<-gctx.Done()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		defer close(batchDone)
		start := time.Now()
		results, err := runner.RunAll(gctx)
		if err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		logSummary(results, time.Since(start))
		return nil
	})

	return g.Wait()
}

func logSummary(results []sim.Result, elapsed time.Duration) {
	outcomes := map[string]int{}
	bestWave := 0
	for _, r := range results {
		outcomes[r.Outcome]++
		bestWave = max(bestWave, r.Wave)
	}
	slog.Info("batch finished",
		"runs", len(results),
		"victory", outcomes["victory"],
		"defeat", outcomes["defeat"],
		"timeout", outcomes["timeout"],
		"best_wave", bestWave,
		"elapsed", elapsed.Round(time.Millisecond),
	)
}

// Command pathfinder serves shortest and second-best path queries over HTTP.
//
//	pathfinder -config pathfinder.yaml
//
// See internal/config for the recognised keys and environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/internal/catalog"
	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/internal/metrics"
	"github.com/katalvlaran/pathfinder/internal/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("PATHFINDER_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	os.Exit(finish(logger, run(cfg, logger)))
}

// finish logs the outcome of run, flushes the logger and returns the
// process exit code.
func finish(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("Server failed", zap.Error(err))
		code = 1
	} else {
		logger.Info("Server stopped")
	}
	_ = logger.Sync()

	return code
}

// newLogger builds a development or production zap logger at cfg's level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// run serves until SIGINT or SIGTERM, then shuts down gracefully.
func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		collector *metrics.Collector
		cat       *catalog.Catalog
	)
	catOpts := []catalog.Option{catalog.WithLogger(logger.Named("catalog"))}
	if cfg.Features.EnableMetrics {
		collector = metrics.NewCollector("pathfinder")
		catOpts = append(catOpts, catalog.WithReloadHook(func(err error) {
			collector.ObserveReload(err)
			collector.SetGraphVertices(cat.Graph().VertexCount())
		}))
	}

	cat, err := catalog.New(ctx, cfg.Graph.File, catOpts...)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	if collector != nil {
		collector.SetGraphVertices(cat.Graph().VertexCount())
	}
	if cfg.Graph.Watch {
		if err := cat.Watch(ctx, cfg.Graph.WatchDebounce); err != nil {
			return fmt.Errorf("watch graph: %w", err)
		}
	}

	api := server.New(cat, server.Options{
		StaticDir:      cfg.Server.StaticDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		QueryTimeout:   cfg.Server.QueryTimeout,
	}, logger.Named("http"), collector)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("environment", string(cfg.Environment)),
			zap.String("graph", cat.Snapshot().Source),
			zap.Bool("metrics", collector != nil),
			zap.Bool("watch", cfg.Graph.Watch),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/router"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := cfg.Logger()
	defer syncLogger(log)

	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close()

	verifier, err := newVerifier(cfg, log)
	if err != nil {
		return err
	}
	cache, err := newCatalogCache(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache(cache, log)

	h := router.NewRouter(router.Options{
		AuthVerifier:         verifier,
		DB:                   b.db,
		Badger:               b.kv,
		Logger:               log,
		Policy:               cfg.StorePolicy(),
		Metrics:              metrics.New(),
		Cache:                cache,
		CacheTTL:             cfg.CatalogCacheTTL,
		ReconcileConcurrency: cfg.ReconcileConcurrency,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func syncLogger(l any) {
	if s, ok := l.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

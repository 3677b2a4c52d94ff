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

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api"
	"inventory-release/internal/config"
	"inventory-release/internal/store"
	"inventory-release/pkg/logger"
)

func main() {
	cfg := config.LoadServer()
	logger.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger.UseJSON(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runs, err := store.New(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("run cache unavailable, falling back to memory")
		runs = store.NewMemoryStore(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	}
	if mem, ok := runs.(*store.MemoryStore); ok {
		go mem.RunJanitor(ctx, 5*time.Minute)
	}

	router := api.NewRouter(api.Options{
		ScenarioDir:    cfg.ScenarioDir,
		AllowedOrigins: cfg.AllowedOrigins,
		Runs:           runs,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if closer, ok := runs.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	logger.Log.Info().Msg("server stopped")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	routes := handler.Routes{
		JWTSecret:     cfg.JWTSecret,
		GenerateRPS:   cfg.GenerateRPS,
		GenerateBurst: cfg.GenerateBurst,
	}

	// Generation statistics and operator login need the database.
	var genOpts []service.GeneratorOption
	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, stats routes disabled", "error", err)
	} else {
		defer db.Close()

		events := repository.NewEventRepository(db)
		genOpts = append(genOpts, service.WithRecorder(events))

		if cfg.AdminKeyHash == "" {
			slog.Warn("ADMIN_KEY_HASH not set, operator login will reject every key")
		}
		routes.Auth = handler.NewAuthHandler(service.NewAuthService(cfg.AdminKeyHash, cfg.JWTSecret, cfg.JWTExpiry))
		routes.Stats = handler.NewStatsHandler(service.NewStatsService(events))
	}

	routes.Generator = handler.NewGeneratorHandler(service.NewGeneratorService(genOpts...))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

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
	"github.com/msomdec/supportlog/internal/handler"
	"github.com/msomdec/supportlog/internal/repository/sqlite"
	"github.com/msomdec/supportlog/internal/service"
)

func main() {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8000")
	dbPath := envOrDefault("DATABASE_PATH", "supportlog.db")
	webDir := envOrDefault("WEB_DIR", "web")

	// Secure cookies are opt-in so the demo runs over plain HTTP; set
	// COOKIE_SECURE=true on any TLS deployment.
	cookieSecure := os.Getenv("COOKIE_SECURE") == "true"

	// The bootstrap credential is a documented operational convenience,
	// injectable so deployments can pick their own.
	bootstrap := service.BootstrapAccount{
		Email:    envOrDefault("BOOTSTRAP_EMAIL", "ops@example.com"),
		FullName: envOrDefault("BOOTSTRAP_NAME", "Operations Demo"),
		Password: envOrDefault("BOOTSTRAP_PASSWORD", "ChangeMe123!"),
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(db.Users(), db.Sessions())
	logService := service.NewLogService(db.Logs())

	// Ensure the demo account and sample logs exist (idempotent).
	demoUser, err := authService.Bootstrap(context.Background(), bootstrap)
	if err != nil {
		slog.Error("failed to bootstrap demo account", "error", err)
		os.Exit(1)
	}
	if err := logService.SeedDemo(context.Background(), demoUser.ID); err != nil {
		slog.Error("failed to seed demo logs", "error", err)
		os.Exit(1)
	}
	slog.Info("demo account ready", "email", demoUser.Email)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, logService, cookieSecure, webDir)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

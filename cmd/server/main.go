package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/caretrack/wellness/internal/auth"
	"github.com/caretrack/wellness/internal/config"
	"github.com/caretrack/wellness/internal/server"
	"github.com/caretrack/wellness/internal/storage/memory"
	"github.com/caretrack/wellness/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// All state is in-memory and volatile: restarting the server wipes it.
	store := memory.New()
	if cfg.SeedDemoData {
		if err := memory.SeedDemoData(context.Background(), store); err != nil {
			slog.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded", "provider", "provider@wellness.com")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(store, authenticator, jwtManager, slog.Default())

	// Wrap with h2c for HTTP/2 without TLS.
	handler := h2c.NewHandler(srv.Routes(), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

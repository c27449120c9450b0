package main

import (
	"log/slog"
	"os"

	"github.com/itsDrac/bidhub/cmd/server"
	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found or error loading it", "error", err)
	}

	cfg := config.Load()

	var handler slog.Handler

	// Configure structured logging with slog
	logOptions := &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}
	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, logOptions)
	} else {
		handler = slog.NewTextHandler(os.Stdout, logOptions)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Service initialization
	slog.Info("Initializing bidhub auction service...")

	server, err := server.New(cfg)
	if err != nil {
		os.Exit(1)
	}
	if err := server.Run(); err != nil {
		slog.Error("server failed to run", "error", err)
		os.Exit(1)
	}
}

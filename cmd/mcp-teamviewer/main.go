package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/h1v3-io/mcp-teamviewer/internal/config"
	"github.com/h1v3-io/mcp-teamviewer/internal/server"
	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
	"github.com/h1v3-io/mcp-teamviewer/internal/tool"
)

func main() {
	// stdout carries the MCP protocol; all logging goes to stderr.
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	client := teamviewer.New(cfg.Token, teamviewer.WithBaseURL(cfg.BaseURL))

	reg := tool.NewRegistry()
	for _, t := range tool.All(client) {
		if err := reg.Register(t); err != nil {
			logger.Error("failed to register tool", "tool", t.Name, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("mcp-teamviewer starting",
		"version", server.Version,
		"tools", reg.Len(),
		"base_url", cfg.BaseURL,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(reg, logger)
	if err := srv.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("mcp-teamviewer stopped")
}

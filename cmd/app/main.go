package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relay_go/internal/app"
)

func main() {
	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize("configs/config.yaml"); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Run the HTTP server
	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Server.Start()
	}()
	slog.InfoContext(ctx, "✨ Signal Relay operational. Press Ctrl+C to exit.")

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("❌ Server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "👋 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bootstrap.Server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", slog.Any("error", err))
	}
}

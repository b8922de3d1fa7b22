package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobmcallan/greenvest/internal/app"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/server"
)

func main() {
	a, err := app.NewApp(os.Getenv("GREENVEST_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	common.PrintBanner(os.Stdout, a.Config, a.Logger)

	// Start background services
	a.StartWarmCache()
	if err := a.StartRefreshScheduler(); err != nil {
		a.Logger.Error().Err(err).Msg("Snapshot refresh scheduler not started")
	}

	srv := server.NewServer(a)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	port := a.Config.Server.Port
	a.Logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", port)).
		Str("mcp", fmt.Sprintf("http://localhost:%d/mcp", port)).
		Msg("Server ready")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	a.Logger.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(os.Stdout, a.Logger)
	a.Close()
	a.Logger.Info().Msg("Server stopped")
}

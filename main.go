package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"syndication-gateway/config"
	"syndication-gateway/internal/client"
	"syndication-gateway/internal/logger"
	"syndication-gateway/internal/server"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()

	// A .env file is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	// Initialize structured logger with trace context support
	appLogger := logger.Init()

	// Load configuration
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		slog.ErrorContext(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"fabl_base_url", cfg.FablBaseURL,
		"feed_config", cfg.FeedConfigPath,
		"partner_config", cfg.PartnerConfigPath,
		"template_config", cfg.TemplateConfigPath)

	// Load the feed/partner/template tables; the gateway cannot serve
	// anything without them.
	loader := config.NewAppConfigLoader(cfg.FeedConfigPath, cfg.PartnerConfigPath, cfg.TemplateConfigPath, appLogger)
	if _, err := loader.Load(); err != nil {
		slog.ErrorContext(ctx, "failed to load app config", "error", err)
		os.Exit(1)
	}

	// Build the content API client, with mTLS when credentials are configured
	var transport http.RoundTripper
	if cfg.MTLSConfigured() {
		var err error
		transport, err = client.NewMTLSTransport(cfg.CertPath, cfg.KeyPath, cfg.CAPath)
		if err != nil {
			slog.ErrorContext(ctx, "fabl client setup failed", "error", err)
			os.Exit(1)
		}
	}
	fablClient := client.NewFablClientWithTransport(cfg.FablBaseURL, cfg.RequestTimeout, transport)

	// Create HTTP server
	e := server.New(server.Dependencies{
		Loader:        loader,
		ContentClient: fablClient,
		TemplateRoot:  cfg.TemplateRoot,
		Logger:        appLogger,
	})

	address := fmt.Sprintf(":%s", cfg.Port)

	// Start server in a goroutine
	go func() {
		slog.InfoContext(ctx, "starting syndication gateway", "address", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server exited properly")
}

// runHealthcheck performs a health check against the local server
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	httpClient := &http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := httpClient.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}

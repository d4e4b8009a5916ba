package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/finance-assistant/internal/agent"
	"github.com/finance-assistant/internal/api"
	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/chat"
	"github.com/finance-assistant/internal/config"
	"github.com/finance-assistant/internal/data/memory"
	"github.com/finance-assistant/internal/logger"
	"github.com/finance-assistant/internal/platform/store"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the in-memory data source and the preview store
	dataSource := memory.NewStore()
	previewStore := store.NewPreviewStore(cfg.Preview.TTL, cfg.Preview.CleanupInterval)

	// Initialize services
	services := api.Services{
		Account:     service.NewAccountService(dataSource),
		Transaction: service.NewTransactionService(dataSource),
		Budget:      service.NewBudgetService(dataSource),
		Action:      service.NewActionService(log, dataSource, previewStore),
		Approval:    service.NewApprovalService(log),
	}

	// The chat endpoint is only mounted when an Anthropic API key is configured
	var chatHandler gin.HandlerFunc
	if cfg.Agent.AnthropicAPIKey != "" {
		apiClient := agent.NewClient(cfg.Agent.BaseURL, cfg.Agent.ToolTimeout)
		runner := agent.NewRunner(log, &cfg.Agent, apiClient)
		chatHandler = chat.NewHandler(log, runner, apiClient).Handle
		log.Info("Agent chat enabled", "model", cfg.Agent.Model)
	} else {
		log.Info("ANTHROPIC_API_KEY not set, agent chat disabled")
	}

	// Initialize REST server
	server := api.NewServer(log, cfg, services, chatHandler)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}

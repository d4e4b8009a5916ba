package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/finance-assistant/internal/api/handler"
	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/config"
	"github.com/gin-gonic/gin"
)

// Services bundles the application services the HTTP server exposes
type Services struct {
	Account     service.AccountService
	Transaction service.TransactionService
	Budget      service.BudgetService
	Action      service.ActionService
	Approval    service.ApprovalService
}

// Server handles HTTP requests and manages the application's lifecycle
type Server struct {
	logger     *slog.Logger // For structured logging
	httpServer *http.Server // Underlying HTTP server
	httpRouter *gin.Engine  // Gin router instance
}

// NewServer creates and configures a new HTTP server with the given services.
// chatHandler is optional; when nil the chat endpoint is not mounted.
func NewServer(log *slog.Logger, cfg *config.Config, services Services, chatHandler gin.HandlerFunc) *Server {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpRouter := gin.New()

	accountHandler := handler.NewAccountHandler(log, services.Account)
	transactionHandler := handler.NewTransactionHandler(log, services.Transaction)
	budgetHandler := handler.NewBudgetHandler(log, services.Budget)
	actionHandler := handler.NewActionHandler(log, services.Action)
	approvalHandler := handler.NewApprovalHandler(log, services.Approval)

	setupRouter(log, httpRouter, accountHandler, transactionHandler, budgetHandler, actionHandler, approvalHandler, chatHandler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		logger:     log,
		httpServer: httpServer,
		httpRouter: httpRouter,
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server with a timeout
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.httpServer.WriteTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	return nil
}

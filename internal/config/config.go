// Package config provides configuration structures and validation for the application.
// It handles environment-based configuration for all major components including
// server settings, the action preview store, and the agent runtime.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration with settings for all components.
// Each field represents a major subsystem's configuration (e.g., HTTP server, preview
// store, agent runtime) and is validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Preview     PreviewConfig
	Agent       AgentConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// PreviewConfig contains action preview store configuration
type PreviewConfig struct {
	TTL             time.Duration // Validity window for an action preview
	CleanupInterval time.Duration // How often expired previews are purged
}

// AgentConfig contains the LLM agent runtime configuration.
// The chat endpoint is only mounted when AnthropicAPIKey is set.
type AgentConfig struct {
	AnthropicAPIKey string
	Model           string
	MaxTokens       int64
	BaseURL         string        // Base URL the agent's tools use to reach this API
	ToolTimeout     time.Duration // Per tool-call HTTP timeout
}

// validate performs comprehensive validation of all configuration values,
// ensuring they meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Preview config
	if c.Preview.TTL <= 0 {
		validationErrors = append(validationErrors, "PREVIEW_TTL must be greater than 0")
	}
	if c.Preview.CleanupInterval <= 0 {
		validationErrors = append(validationErrors, "PREVIEW_CLEANUP_INTERVAL must be greater than 0")
	}

	// Validate Agent config. The API key is optional (chat is disabled without
	// it) but the remaining agent settings must always be coherent.
	if c.Agent.Model == "" {
		validationErrors = append(validationErrors, "AGENT_MODEL is required")
	}
	if c.Agent.MaxTokens <= 0 {
		validationErrors = append(validationErrors, "AGENT_MAX_TOKENS must be greater than 0")
	}
	if c.Agent.BaseURL == "" {
		validationErrors = append(validationErrors, "AGENT_BASE_URL is required")
	}
	if c.Agent.ToolTimeout <= 0 {
		validationErrors = append(validationErrors, "AGENT_TOOL_TIMEOUT must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}

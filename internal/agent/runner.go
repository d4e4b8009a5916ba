package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/finance-assistant/internal/config"
	"github.com/google/uuid"
)

// maxTurns bounds the tool-use loop within a single run.
const maxTurns = 20

// pendingActionTTL is how long a surfaced confirmation stays actionable.
const pendingActionTTL = 10 * time.Minute

const systemPrompt = `You are a helpful financial assistant. You can check account
balances, review transaction history, and calculate budget insights. You can also
transfer money, pay bills, and make investments on the user's behalf; these actions
always require the user's explicit confirmation before they run. Be concise, use
the tools to answer questions about the user's finances, and never invent numbers.`

// PendingAction is a money-moving tool call awaiting user confirmation.
// PriorToolResults holds the results for every other tool_use block in the
// same assistant turn; whoever resolves the pending block must send them
// together with its result in a single user turn, so the conversation never
// carries an unresolved tool_use.
type PendingAction struct {
	ID               string
	Tool             string
	Input            []byte
	Summary          string
	BlockID          string
	PriorToolResults []anthropic.ContentBlockParamUnion
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// Expired reports whether the confirmation window has closed.
func (p *PendingAction) Expired() bool {
	return time.Now().After(p.ExpiresAt)
}

// OutputType indicates the kind of output from an agent run.
type OutputType int

const (
	// OutputComplete indicates the agent finished successfully.
	OutputComplete OutputType = iota

	// OutputConfirmationNeeded indicates a money-moving tool needs user confirmation.
	OutputConfirmationNeeded

	// OutputError indicates an error occurred.
	OutputError
)

// Input is a single user turn plus the conversation so far.
type Input struct {
	UserMessage string
	History     []anthropic.MessageParam

	// StreamCallback receives assistant text chunks as they arrive. Optional.
	StreamCallback func(chunk string)
}

// Output is the result of an agent run. History carries the updated
// conversation including any tool-use blocks, so a follow-up run or a
// confirmation result can continue from it.
type Output struct {
	Type    OutputType
	Text    string
	Pending *PendingAction
	History []anthropic.MessageParam
	Error   error
}

// Runner drives the model loop: it sends the conversation to the Claude API,
// dispatches read-only tool calls against the finance API, and surfaces
// money-moving tool calls as pending confirmations.
type Runner struct {
	client   anthropic.Client
	registry *Registry
	api      *Client
	logger   *slog.Logger

	model     string
	maxTokens int64
}

// NewRunner creates a runner from the agent configuration. The registry is
// pre-loaded with the finance tool definitions.
func NewRunner(logger *slog.Logger, cfg *config.AgentConfig, api *Client) *Runner {
	registry := NewRegistry()
	registry.RegisterAll(FinanceToolDefinitions()...)

	return &Runner{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		registry:  registry,
		api:       api,
		logger:    logger,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Registry returns the runner's tool registry.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Run executes the agent loop until completion or a confirmation is needed.
func (r *Runner) Run(ctx context.Context, input *Input) *Output {
	messages := append([]anthropic.MessageParam{}, input.History...)
	if input.UserMessage != "" {
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(input.UserMessage)))
	}

	apiTools := r.registry.ToAPITools()

	for turn := 0; turn < maxTurns; turn++ {
		if ctx.Err() != nil {
			return &Output{Type: OutputError, Error: ctx.Err(), History: messages}
		}

		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(r.model),
			MaxTokens: r.maxTokens,
			Messages:  messages,
			System: []anthropic.TextBlockParam{
				{Text: systemPrompt},
			},
			Tools: apiTools,
		}

		resp, err := r.createMessage(ctx, params, input.StreamCallback)
		if err != nil {
			return &Output{
				Type:    OutputError,
				Error:   fmt.Errorf("claude API error: %w", err),
				History: messages,
			}
		}

		var text string
		var toolResults []anthropic.ContentBlockParamUnion
		var pending *PendingAction

		for _, block := range resp.Content {
			switch block.Type {
			case "text":
				text += block.Text

			case "tool_use":
				// Once a confirmation is pending, every later tool_use in the
				// same response gets an error result instead of running, so the
				// assistant turn stays fully resolvable in one user message.
				if pending != nil {
					toolResults = append(toolResults, anthropic.NewToolResultBlock(
						block.ID,
						"Not executed: a prior action in this response is awaiting user confirmation",
						true,
					))
					continue
				}

				def, ok := r.registry.Get(block.Name)
				if !ok {
					toolResults = append(toolResults, anthropic.NewToolResultBlock(
						block.ID,
						fmt.Sprintf("unknown tool: %s", block.Name),
						true,
					))
					continue
				}

				if def.RequiresConfirmation {
					pending = &PendingAction{
						ID:        uuid.New().String(),
						Tool:      block.Name,
						Input:     []byte(block.Input),
						Summary:   def.Summary([]byte(block.Input)),
						BlockID:   block.ID,
						CreatedAt: time.Now(),
						ExpiresAt: time.Now().Add(pendingActionTTL),
					}
					r.logger.Info("Tool call awaiting confirmation", "tool", block.Name, "action_id", pending.ID)
					continue
				}

				result, err := r.api.CallReadTool(ctx, block.Name, []byte(block.Input))
				if err != nil {
					r.logger.Warn("Read tool failed", "tool", block.Name, "error", err)
					toolResults = append(toolResults, anthropic.NewToolResultBlock(block.ID, err.Error(), true))
					continue
				}
				toolResults = append(toolResults, anthropic.NewToolResultBlock(block.ID, string(result), false))
			}
		}

		messages = append(messages, resp.ToParam())

		if pending != nil {
			pending.PriorToolResults = toolResults
			return &Output{
				Type:    OutputConfirmationNeeded,
				Text:    text,
				Pending: pending,
				History: messages,
			}
		}

		if len(toolResults) == 0 {
			return &Output{Type: OutputComplete, Text: text, History: messages}
		}

		messages = append(messages, anthropic.NewUserMessage(toolResults...))
	}

	return &Output{
		Type:    OutputError,
		Error:   fmt.Errorf("exceeded maximum turns (%d)", maxTurns),
		History: messages,
	}
}

// createMessage calls the Claude API, streaming when a callback is provided.
func (r *Runner) createMessage(ctx context.Context, params anthropic.MessageNewParams, callback func(chunk string)) (*anthropic.Message, error) {
	if callback == nil {
		return r.client.Messages.New(ctx, params)
	}

	stream := r.client.Messages.NewStreaming(ctx, params)
	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return nil, err
		}

		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if delta.Text != "" {
					callback(delta.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &message, nil
}

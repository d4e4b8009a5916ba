// Package chat exposes the agent over a WebSocket endpoint. Clients drive a
// conversation with user messages; the handler streams assistant text back,
// and money-moving tool calls surface as confirmation requests that the
// client resolves with confirm or cancel messages.
package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/finance-assistant/internal/agent"
	"github.com/finance-assistant/internal/confirm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ClientMessage is a message from the browser to the server.
type ClientMessage struct {
	Type     string `json:"type"`
	Content  string `json:"content,omitempty"`
	ActionID string `json:"actionId,omitempty"`
}

// ServerMessage is a message from the server to the browser.
type ServerMessage struct {
	Type           string `json:"type"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	ActionID       string `json:"actionId,omitempty"`
	Tool           string `json:"tool,omitempty"`
	Summary        string `json:"summary,omitempty"`
	ExpiresAt      string `json:"expiresAt,omitempty"`
}

// AgentRunner runs one agent turn. *agent.Runner satisfies it.
type AgentRunner interface {
	Run(ctx context.Context, input *agent.Input) *agent.Output
}

// Handler upgrades chat connections and relays between the client, the agent
// loop, and per-action confirmation sessions.
type Handler struct {
	logger   *slog.Logger
	runner   AgentRunner
	client   confirm.ActionClient
	upgrader websocket.Upgrader
}

// NewHandler creates a chat handler backed by the given runner and API client.
func NewHandler(logger *slog.Logger, runner AgentRunner, client confirm.ActionClient) *Handler {
	return &Handler{
		logger: logger,
		runner: runner,
		client: client,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// pendingEntry pairs a surfaced pending action with its confirmation session.
type pendingEntry struct {
	pending *agent.PendingAction
	session *confirm.Session
}

// conversation is the per-connection state.
type conversation struct {
	id      string
	history []anthropic.MessageParam
	pending map[string]*pendingEntry
}

// resolvePending closes out a surfaced action in the conversation history.
// The pending tool_use block and every other tool_use block from the same
// assistant turn get their results in a single user message, followed by a
// closing assistant text, so the history never carries an unresolved
// tool_use block into the next agent run.
func (conv *conversation) resolvePending(entry *pendingEntry, resultContent string, isError bool, reply string) {
	results := append([]anthropic.ContentBlockParamUnion{}, entry.pending.PriorToolResults...)
	results = append(results, anthropic.NewToolResultBlock(entry.pending.BlockID, resultContent, isError))
	conv.history = append(conv.history,
		anthropic.NewUserMessage(results...),
		anthropic.NewAssistantMessage(anthropic.NewTextBlock(reply)),
	)
	delete(conv.pending, entry.pending.ID)
}

// Handle is the gin handler for the chat endpoint.
func (h *Handler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	var conv *conversation

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read failed", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.sendError(conn, "Invalid message format")
			continue
		}

		switch msg.Type {
		case "new_conversation":
			conv = &conversation{
				id:      uuid.New().String(),
				pending: make(map[string]*pendingEntry),
			}
			h.send(conn, ServerMessage{Type: "conversation_started", ConversationID: conv.id})

		case "message":
			if conv == nil {
				h.sendError(conn, "No active conversation. Send 'new_conversation' first.")
				continue
			}
			h.handleMessage(ctx, conn, conv, msg.Content)

		case "confirm":
			if conv == nil {
				h.sendError(conn, "No active conversation")
				continue
			}
			h.handleConfirm(ctx, conn, conv, msg.ActionID)

		case "cancel":
			if conv == nil {
				h.sendError(conn, "No active conversation")
				continue
			}
			h.handleCancel(conn, conv, msg.ActionID)

		default:
			h.sendError(conn, "Unknown message type: "+msg.Type)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, conn *websocket.Conn, conv *conversation, content string) {
	if content == "" {
		return
	}

	// A new message abandons any confirmation still open; close it out in
	// the history before running the agent.
	for _, entry := range conv.pending {
		conv.resolvePending(entry, "Cancelled by user", true, "Action cancelled.")
	}

	output := h.runner.Run(ctx, &agent.Input{
		UserMessage: content,
		History:     conv.history,
		StreamCallback: func(chunk string) {
			h.send(conn, ServerMessage{Type: "text_chunk", Content: chunk})
		},
	})
	conv.history = output.History

	switch output.Type {
	case agent.OutputComplete:
		h.send(conn, ServerMessage{Type: "text", Content: output.Text})
		h.send(conn, ServerMessage{Type: "complete"})

	case agent.OutputConfirmationNeeded:
		pending := output.Pending
		kind, ok := agent.KindForTool(pending.Tool)
		if !ok {
			h.sendError(conn, "Unknown action tool: "+pending.Tool)
			return
		}

		conv.pending[pending.ID] = &pendingEntry{
			pending: pending,
			session: confirm.NewSession(h.client, kind, pending.Input, pending.Summary),
		}

		h.send(conn, ServerMessage{
			Type:      "confirm_request",
			ActionID:  pending.ID,
			Tool:      pending.Tool,
			Summary:   pending.Summary,
			Content:   output.Text,
			ExpiresAt: pending.ExpiresAt.Format(time.RFC3339),
		})

	case agent.OutputError:
		h.logger.Error("Agent run failed", "conversation_id", conv.id, "error", output.Error)
		h.sendError(conn, "Agent error: "+output.Error.Error())
	}
}

func (h *Handler) handleConfirm(ctx context.Context, conn *websocket.Conn, conv *conversation, actionID string) {
	entry, ok := conv.pending[actionID]
	if !ok || entry.pending.Expired() {
		if ok {
			conv.resolvePending(entry, "Expired before the user responded", true, "That action expired.")
		}
		h.send(conn, ServerMessage{
			Type:    "text",
			Content: "That action expired. Would you like me to set it up again?",
		})
		h.send(conn, ServerMessage{Type: "complete"})
		return
	}

	result, err := entry.session.Confirm(ctx)
	if err != nil {
		// The session stays re-confirmable; keep the entry around
		h.send(conn, ServerMessage{
			Type:    "text",
			Content: "Sorry, that action failed: " + err.Error(),
		})
		h.send(conn, ServerMessage{Type: "complete"})
		return
	}

	resultJSON, _ := json.Marshal(result)
	conv.resolvePending(entry, string(resultJSON), false, result.Message)

	h.send(conn, ServerMessage{Type: "text", Content: result.Message})
	h.send(conn, ServerMessage{Type: "complete"})
}

func (h *Handler) handleCancel(conn *websocket.Conn, conv *conversation, actionID string) {
	entry, ok := conv.pending[actionID]
	if !ok {
		h.sendError(conn, "Action not found")
		return
	}

	result := entry.session.Reject()
	conv.resolvePending(entry, "Cancelled by user", true, result.Message)

	h.send(conn, ServerMessage{Type: "text", Content: result.Message})
	h.send(conn, ServerMessage{Type: "complete"})
}

func (h *Handler) send(conn *websocket.Conn, msg ServerMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Warn("Failed to send message", "error", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, content string) {
	h.send(conn, ServerMessage{Type: "error", Content: content})
}

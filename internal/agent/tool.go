// Package agent provides the tool descriptor layer and the LLM agent
// runtime: tool definitions with JSON-schema input contracts, a registry
// that converts them to Anthropic API tool params, an HTTP client the
// tools use to reach the finance API, and the agent run loop.
package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"text/template"

	"github.com/anthropics/anthropic-sdk-go"
)

// ToolDefinition describes a tool exposed to the model. Money-moving tools
// set RequiresConfirmation and carry a SummaryTemplate rendered against the
// tool input for display in the confirmation prompt.
type ToolDefinition struct {
	Name                 string
	Description          string
	RequiresConfirmation bool
	SummaryTemplate      string
	InputSchema          map[string]interface{}
}

// Summary renders the SummaryTemplate against the tool input. When the
// template is absent or fails to render, a generic fallback naming the tool
// is returned so the confirmation prompt is never empty.
func (d ToolDefinition) Summary(input json.RawMessage) string {
	fallback := fmt.Sprintf("Run %s", d.Name)
	if d.SummaryTemplate == "" {
		return fallback
	}

	var data map[string]interface{}
	if err := json.Unmarshal(input, &data); err != nil {
		return fallback
	}

	tmpl, err := template.New("summary").Parse(d.SummaryTemplate)
	if err != nil {
		return fallback
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fallback
	}
	return buf.String()
}

// Registry manages the tools available to the agent.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]ToolDefinition
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]ToolDefinition),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(def ToolDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[def.Name] = def
}

// RegisterAll adds multiple tools to the registry.
func (r *Registry) RegisterAll(defs ...ToolDefinition) {
	for _, def := range defs {
		r.Register(def)
	}
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.tools[name]
	return def, ok
}

// Names returns all registered tool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// ToAPITools converts registered tools to Claude API format.
func (r *Registry) ToAPITools() []anthropic.ToolUnionParam {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]anthropic.ToolUnionParam, 0, len(r.tools))
	for _, def := range r.tools {
		tools = append(tools, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        def.Name,
				Description: anthropic.String(def.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: def.InputSchema["properties"],
					Required:   requiredFields(def.InputSchema),
				},
			},
		})
	}
	return tools
}

func requiredFields(schema map[string]interface{}) []string {
	required, ok := schema["required"].([]string)
	if !ok {
		return nil
	}
	return required
}

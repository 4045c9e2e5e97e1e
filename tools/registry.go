package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
)

// ToolExecutor is the function signature for executing a tool
type ToolExecutor func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// InstructionsProvider contributes ambient context (e.g. the current time)
// that is injected into the agent's system prompt before each turn.
type InstructionsProvider interface {
	Instructions(ctx context.Context) string
}

// Registry manages the registration of AI tools and context providers
type Registry struct {
	tools     []ai.Tool
	executors map[string]ToolExecutor
	providers []InstructionsProvider
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:     make([]ai.Tool, 0),
		executors: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry with its executor
func (r *Registry) Register(tool ai.Tool, executor ToolExecutor) {
	r.tools = append(r.tools, tool)
	r.executors[tool.Definition().Name] = executor
}

// RegisterInstructions adds a context provider consulted once per turn
func (r *Registry) RegisterInstructions(p InstructionsProvider) {
	r.providers = append(r.providers, p)
}

// GetTools returns all registered tools
func (r *Registry) GetTools() []ai.Tool {
	return r.tools
}

// ExecuteTool runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	executor, ok := r.executors[name]
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return executor(ctx, args)
}

// Instructions collects the ambient context from all registered providers.
// Providers are re-evaluated on every call; their output is time-sensitive
// and must not be cached across turns.
func (r *Registry) Instructions(ctx context.Context) string {
	var parts []string
	for _, p := range r.providers {
		if s := p.Instructions(ctx); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

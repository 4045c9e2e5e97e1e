// Package agents hosts the conversational boundary that invokes the search
// tools. The agent itself stays thin: tool semantics live in the plugins.
package agents

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/faredesk/faredesk/log"
	"github.com/faredesk/faredesk/tools"
)

const systemPrompt = `You are a helpful AI travel assistant. You help customers find flights, cheap travel dates and airport codes.

Guidelines:
- Resolve city names to IATA codes with the airport search tool before searching flights.
- Use the date tool to turn relative dates ("next Friday") into YYYY-MM-DD values.
- Dates passed to flight searches must be in the future.
- Report tool results to the user as-is; do not invent prices or schedules.`

// TravelAgent owns the conversation loop. Once per turn it collects ambient
// instructions from the registry (the time context), then lets the model
// call the registered search tools.
type TravelAgent struct {
	gk       *genkit.Genkit
	registry *tools.Registry
	model    ai.Model
}

// NewTravelAgent creates a new TravelAgent
func NewTravelAgent(gk *genkit.Genkit, registry *tools.Registry, model ai.Model) *TravelAgent {
	return &TravelAgent{
		gk:       gk,
		registry: registry,
		model:    model,
	}
}

/// SystemPrompt assembles the per-turn system prompt: the static behavior
// contract plus the registry's instructions, re-evaluated on every call.
func (a *TravelAgent) SystemPrompt(ctx context.Context) string {
	system := systemPrompt
	if a.registry != nil {
		if extra := a.registry.Instructions(ctx); extra != "" {
			system = system + "\n\n" + extra
		}
	}
	return system
}

// Run executes one conversation turn and returns the reply together with
// the updated history.
func (a *TravelAgent) Run(ctx context.Context, query string, history []*ai.Message) (string, []*ai.Message, error) {
	log.Infof(ctx, "TravelAgent: handling query: %s", query)

	var toolRefs []ai.ToolRef
	if a.registry != nil {
		for _, tool := range a.registry.GetTools() {
			toolRefs = append(toolRefs, tool)
		}
	}

	opts := []ai.GenerateOption{
		ai.WithModel(a.model),
		ai.WithSystem(a.SystemPrompt(ctx)),
		ai.WithTools(toolRefs...),
		ai.WithMaxTurns(10),
	}
	if len(history) > 0 {
		opts = append(opts, ai.WithMessages(history...))
	}
	opts = append(opts, ai.WithPrompt(query))

	response, err := genkit.Generate(ctx, a.gk, opts...)
	if err != nil {
		log.Errorf(ctx, "TravelAgent: generation failed: %v", err)
		return "", history, fmt.Errorf("generation failed: %w", err)
	}

	return response.Text(), response.History(), nil
}

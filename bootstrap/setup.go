package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/faredesk/faredesk/agents"
	"github.com/faredesk/faredesk/bootstrap/azureoai"
	"github.com/faredesk/faredesk/config"
	"github.com/faredesk/faredesk/plugins/amadeus"
	"github.com/faredesk/faredesk/plugins/core"
	"github.com/faredesk/faredesk/tools"
)

// App holds the initialized components of the application
type App struct {
	Agent    *agents.TravelAgent
	Genkit   *genkit.Genkit
	Registry *tools.Registry
	Model    ai.Model
	Amadeus  *amadeus.ClientSource
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Setup Genkit with the chat model plugin
	var gk *genkit.Genkit
	var model ai.Model

	if cfg.AI.Plugin == "gemini" {
		log.Printf("Using Gemini plugin (model: %s)...", cfg.AI.Gemini.Model)
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=openai)")
		}
		gk = genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
			APIKey: cfg.AI.Gemini.APIKey,
		}))
		model = googlegenai.GoogleAIModel(gk, cfg.AI.Gemini.Model)
	} else {
		log.Printf("Using OpenAI-compatible plugin (deployment: %s)...", cfg.AI.OpenAI.Deployment)
		if cfg.AI.OpenAI.Endpoint == "" || cfg.AI.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_API_KEY must be set")
		}
		plugin := &azureoai.AzureOAI{
			APIKey:     cfg.AI.OpenAI.APIKey,
			BaseURL:    cfg.AI.OpenAI.Endpoint,
			Deployment: cfg.AI.OpenAI.Deployment,
		}
		gk = genkit.Init(ctx, genkit.WithPlugins(plugin))
		model = plugin.Model(gk, cfg.AI.OpenAI.Deployment)
	}

	// 2. Init tools registry
	registry := tools.NewRegistry()

	// Amadeus search tools. The client itself is built lazily on first use;
	// missing credentials surface on the first tool call, distinct from any
	// per-query provider failure.
	source := amadeus.NewClientSource(cfg.Amadeus.APIKey, cfg.Amadeus.APISecret, cfg.Amadeus.Production())
	amadeus.NewToolset(source, gk, registry)

	// Core tools and the per-turn time context provider.
	core.NewClient(gk, registry)

	// 3. Init agent
	agent := agents.NewTravelAgent(gk, registry, model)

	return &App{
		Agent:    agent,
		Genkit:   gk,
		Registry: registry,
		Model:    model,
		Amadeus:  source,
	}, nil
}

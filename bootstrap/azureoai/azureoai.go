// Package azureoai is a Genkit plugin for OpenAI-compatible chat endpoints,
// in particular Azure OpenAI deployments addressed by endpoint, key and
// deployment name.
package azureoai

import (
	"context"
	"os"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go/option"
)

const provider = "azureoai"

// AzureOAI is a plugin that talks to an OpenAI-compatible endpoint.
type AzureOAI struct {
	// APIKey for the endpoint. Falls back to AZURE_OPENAI_API_KEY.
	APIKey string
	// BaseURL of the endpoint. Falls back to AZURE_OPENAI_ENDPOINT.
	BaseURL string
	// Deployment is the model/deployment name defined at Init. Falls back
	// to AZURE_OPENAI_DEPLOYMENT_NAME.
	Deployment string

	openAICompatible *compat_oai.OpenAICompatible
}

// Name implements genkit.Plugin.
func (a *AzureOAI) Name() string {
	return provider
}

// Init implements genkit.Plugin.
func (a *AzureOAI) Init(ctx context.Context) []api.Action {
	apiKey := a.APIKey
	baseURL := a.BaseURL
	deployment := a.Deployment

	if apiKey == "" {
		apiKey = os.Getenv("AZURE_OPENAI_API_KEY")
	}
	if baseURL == "" {
		baseURL = os.Getenv("AZURE_OPENAI_ENDPOINT")
	}
	if deployment == "" {
		deployment = os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME")
	}

	if apiKey == "" || baseURL == "" {
		panic("azureoai plugin initialization failed: endpoint and apiKey are required (set AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_API_KEY or pass BaseURL/APIKey)")
	}

	if a.openAICompatible == nil {
		a.openAICompatible = &compat_oai.OpenAICompatible{}
	}

	a.openAICompatible.Opts = []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	a.openAICompatible.Provider = provider

	actions := a.openAICompatible.Init(ctx)

	if deployment != "" {
		actions = append(actions, a.DefineModel(deployment, ai.ModelOptions{
			Label:    "Azure OpenAI " + deployment,
			Supports: &compat_oai.Multimodal,
		}).(api.Action))
	}

	return actions
}

// Model returns a model by name.
func (a *AzureOAI) Model(g *genkit.Genkit, name string) ai.Model {
	return a.openAICompatible.Model(g, api.NewName(provider, name))
}

// DefineModel defines a model with the given ID and options.
func (a *AzureOAI) DefineModel(id string, opts ai.ModelOptions) ai.Model {
	return a.openAICompatible.DefineModel(provider, id, opts)
}

// ListActions returns a list of actions provided by this plugin.
func (a *AzureOAI) ListActions(ctx context.Context) []api.ActionDesc {
	return a.openAICompatible.ListActions(ctx)
}

// ResolveAction resolves an action by type and name.
func (a *AzureOAI) ResolveAction(atype api.ActionType, name string) api.Action {
	return a.openAICompatible.ResolveAction(atype, name)
}

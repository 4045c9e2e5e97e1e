package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faredesk/faredesk/tools"
)

type fakeProvider string

func (p fakeProvider) Instructions(ctx context.Context) string { return string(p) }

func TestTravelAgent_SystemPrompt(t *testing.T) {
	registry := tools.NewRegistry()
	registry.RegisterInstructions(fakeProvider("Today is Monday, June 15, 2026."))

	agent := NewTravelAgent(nil, registry, nil)

	got := agent.SystemPrompt(context.Background())

	// The static prompt comes first, ambient context is appended per turn.
	assert.True(t, strings.HasPrefix(got, systemPrompt))
	assert.True(t, strings.HasSuffix(got, "\n\nToday is Monday, June 15, 2026."))
}

func TestTravelAgent_SystemPrompt_NoProviders(t *testing.T) {
	agent := NewTravelAgent(nil, tools.NewRegistry(), nil)

	got := agent.SystemPrompt(context.Background())

	assert.Equal(t, systemPrompt, got)
}

package command

import (
	"context"
	"net/http"
	"testing"

	"disbot/internal/core/domain"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockTextGenerator struct {
	response string
	err      error
	Prompt   string
}

func (m *MockTextGenerator) GenerateFromPrompt(_ context.Context, prompt string) (domain.ModelResponse, error) {
	m.Prompt = prompt
	return domain.ModelResponse{
		Response: m.response,
		Metadata: domain.ResponseMetadata{
			Model:            "unit-test",
			CompletionTokens: 24,
			TotalTokens:      42,
		},
	}, m.err
}

type MockTracker struct {
	limitReached bool
	Channel      string
	Cost         float64
}

func (m *MockTracker) AddCost(channelID string, cost float64) {
	m.Channel = channelID
	m.Cost += cost
}

func (m *MockTracker) CheckLimit(_ context.Context, _ *http.Client, _ string, _ string) bool {
	return !m.limitReached
}

func (m *MockTracker) GetSpent(_ string) float64 {
	return m.Cost
}

func TestAskSendsGeneratedResponse(t *testing.T) {
	viper.Set("openrouter.cost_per_1k_tokens", 1.0)

	mg := &MockTextGenerator{response: "mock response"}
	mm := &MockMessenger{}
	mt := &MockTracker{}

	askHandler := NewAsk(mg, mm, mt, "!ask")

	err := askHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "what is a monad")

	require.NoError(t, err)
	assert.Equal(t, "what is a monad", mg.Prompt)
	assert.Equal(t, "mock response", mm.Message)
	assert.Equal(t, "123", mt.Channel)
	assert.InDelta(t, 0.042, mt.Cost, 0.0001)
}

func TestAskEmptyPrompt(t *testing.T) {
	mg := &MockTextGenerator{response: "mock response"}
	mm := &MockMessenger{}
	mt := &MockTracker{}

	askHandler := NewAsk(mg, mm, mt, "!ask")

	err := askHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "  ")

	require.ErrorIs(t, err, domain.ErrEmptyArgs)
	assert.Empty(t, mg.Prompt)
}

func TestAskGeneratorError(t *testing.T) {
	mg := &MockTextGenerator{err: assert.AnError}
	mm := &MockMessenger{}
	mt := &MockTracker{}

	askHandler := NewAsk(mg, mm, mt, "!ask")

	err := askHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "prompt")

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "failed to generate response: "+assert.AnError.Error(), mm.Message)
	assert.Zero(t, mt.Cost)
}

func TestAskLimitReached(t *testing.T) {
	mg := &MockTextGenerator{response: "mock response"}
	mm := &MockMessenger{}
	mt := &MockTracker{limitReached: true}

	askHandler := NewAsk(mg, mm, mt, "!ask")

	err := askHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "prompt")

	require.NoError(t, err)
	assert.Empty(t, mg.Prompt)
	assert.Empty(t, mm.Message)
}

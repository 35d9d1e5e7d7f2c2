package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecrets(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "discord-token")
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	s, err := LoadSecrets()

	require.NoError(t, err)
	assert.Equal(t, "discord-token", s.DiscordToken)
	assert.Equal(t, "or-key", s.OpenRouterAPIKey)
}

func TestLoadSecretsOpenRouterKeyOptional(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "discord-token")
	t.Setenv("OPENROUTER_API_KEY", "")

	s, err := LoadSecrets()

	require.NoError(t, err)
	assert.Empty(t, s.OpenRouterAPIKey)
}

func TestLoadSecretsMissingDiscordToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := LoadSecrets()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `{"id":"1","username":"disbot","bot":true}`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	user, err := api.GetCurrentUser(t.Context(), srv.Client(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "/users/@me", c.path)
	assert.Equal(t, "disbot", user.Username)
	assert.True(t, user.Bot)
}

func TestGetUser(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `{"id":"42","username":"unit","global_name":"Unit Test"}`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	user, err := api.GetUser(t.Context(), srv.Client(), "tok", "42")

	require.NoError(t, err)
	assert.Equal(t, "/users/42", c.path)
	assert.Equal(t, "unit", user.Username)
	assert.Equal(t, "Unit Test", user.GlobalName)
}

func TestGetCurrentUserGuilds(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `[{"id":"g-1","name":"testers"},{"id":"g-2","name":"archive"}]`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	guilds, err := api.GetCurrentUserGuilds(t.Context(), srv.Client(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "/users/@me/guilds", c.path)
	require.Len(t, guilds, 2)
	assert.Equal(t, "archive", guilds[1].Name)
}

func TestCreateDM(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `{"id":"dm-1","type":1}`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	channel, err := api.CreateDM(t.Context(), srv.Client(), "tok", "42")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, "/users/@me/channels", c.path)
	assert.Equal(t, "dm-1", channel.ID)
	assert.Empty(t, channel.GuildID)

	var sent struct {
		RecipientID string `json:"recipient_id"`
	}
	require.NoError(t, json.Unmarshal(c.body, &sent))
	assert.Equal(t, "42", sent.RecipientID)
}

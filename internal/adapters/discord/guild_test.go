package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuildBan(t *testing.T) {
	srv, c := captureServer(http.StatusNoContent, "")
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	err := api.CreateGuildBan(t.Context(), srv.Client(), "tok", "g-1", "42", 3, "spamming invites")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, c.method)
	assert.Equal(t, "/guilds/g-1/bans/42", c.path)

	var sent struct {
		DeleteMessageDays int    `json:"delete_message_days"`
		Reason            string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(c.body, &sent))
	assert.Equal(t, 3, sent.DeleteMessageDays)
	assert.Equal(t, "spamming invites", sent.Reason)
}

func TestGetGuild(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `{"id":"g-1","name":"testers","owner_id":"7"}`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	guild, err := api.GetGuild(t.Context(), srv.Client(), "tok", "g-1")

	require.NoError(t, err)
	assert.Equal(t, "/guilds/g-1", c.path)
	assert.Equal(t, "testers", guild.Name)
	assert.Equal(t, "7", guild.OwnerID)
}

func TestSearchGuildMembersEscapesQuery(t *testing.T) {
	srv, c := captureServer(http.StatusOK, `[{"user":{"id":"42","username":"unit"},"nick":"tester"}]`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	members, err := api.SearchGuildMembers(t.Context(), srv.Client(), "tok", "g-1", "a b&c")

	require.NoError(t, err)
	assert.Equal(t, "/guilds/g-1/members/search", c.path)
	assert.Equal(t, "a b&c", c.query.Get("query"))
	require.Len(t, members, 1)
	assert.Equal(t, "unit", members[0].User.Username)
	assert.Equal(t, "tester", members[0].Nick)
}

func TestGetGuildBans(t *testing.T) {
	srv, _ := captureServer(http.StatusOK, `[{"reason":"spam","user":{"id":"42"}}]`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	bans, err := api.GetGuildBans(t.Context(), srv.Client(), "tok", "g-1")

	require.NoError(t, err)
	require.Len(t, bans, 1)
	assert.Equal(t, "spam", bans[0].Reason)
	assert.Equal(t, "42", bans[0].User.ID)
}

func TestGetGuildRoles(t *testing.T) {
	srv, _ := captureServer(http.StatusOK, `[{"id":"r1","name":"mods","color":255,"position":2}]`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	roles, err := api.GetGuildRoles(t.Context(), srv.Client(), "tok", "g-1")

	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "mods", roles[0].Name)
	assert.Equal(t, 255, roles[0].Color)
}

func TestGetGuildChannels(t *testing.T) {
	srv, _ := captureServer(http.StatusOK, `[{"id":"123","guild_id":"g-1","name":"general","type":0}]`)
	defer srv.Close()

	api := NewAPIWithBaseURL(srv.URL)

	channels, err := api.GetGuildChannels(t.Context(), srv.Client(), "tok", "g-1")

	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "general", channels[0].Name)
	assert.Equal(t, "g-1", channels[0].GuildID)
}

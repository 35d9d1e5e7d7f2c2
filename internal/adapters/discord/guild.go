package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"disbot/internal/core/domain"
)

// Guild is the subset of the Discord guild resource the bot works with.
type Guild struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// Member is a guild member with their guild-specific attributes.
type Member struct {
	User     domain.User `json:"user"`
	Nick     string      `json:"nick"`
	Roles    []string    `json:"roles"`
	JoinedAt string      `json:"joined_at"`
}

// Ban is a guild ban entry.
type Ban struct {
	Reason string      `json:"reason"`
	User   domain.User `json:"user"`
}

// Role is a guild role.
type Role struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Position int    `json:"position"`
}

// GetGuild fetches guild metadata.
func (a *API) GetGuild(ctx context.Context, client *http.Client, token string, guildID string) (Guild, error) {
	var guild Guild
	if err := a.get(ctx, client, token, "/guilds/"+guildID, &guild); err != nil {
		return Guild{}, err
	}

	return guild, nil
}

// GetGuildChannels lists the channels of a guild.
func (a *API) GetGuildChannels(ctx context.Context, client *http.Client, token string,
	guildID string) ([]domain.Channel, error) {
	var channels []domain.Channel
	if err := a.get(ctx, client, token, "/guilds/"+guildID+"/channels", &channels); err != nil {
		return nil, err
	}

	return channels, nil
}

// GetGuildMember fetches a single member of a guild.
func (a *API) GetGuildMember(ctx context.Context, client *http.Client, token string, guildID string,
	userID string) (Member, error) {
	var member Member
	if err := a.get(ctx, client, token, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), &member); err != nil {
		return Member{}, err
	}

	return member, nil
}

// ListGuildMembers lists the members of a guild.
func (a *API) ListGuildMembers(ctx context.Context, client *http.Client, token string,
	guildID string) ([]Member, error) {
	var members []Member
	if err := a.get(ctx, client, token, "/guilds/"+guildID+"/members", &members); err != nil {
		return nil, err
	}

	return members, nil
}

// SearchGuildMembers lists guild members whose username or nickname starts
// with query.
func (a *API) SearchGuildMembers(ctx context.Context, client *http.Client, token string, guildID string,
	query string) ([]Member, error) {
	var members []Member
	path := "/guilds/" + guildID + "/members/search?query=" + url.QueryEscape(query)
	if err := a.get(ctx, client, token, path, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// RemoveGuildMember kicks a member from a guild.
func (a *API) RemoveGuildMember(ctx context.Context, client *http.Client, token string, guildID string,
	userID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), nil, nil)
}

type banPayload struct {
	DeleteMessageDays int    `json:"delete_message_days"`
	Reason            string `json:"reason"`
}

// CreateGuildBan bans a user and deletes their messages going back
// deleteMessageDays days.
func (a *API) CreateGuildBan(ctx context.Context, client *http.Client, token string, guildID string,
	userID string, deleteMessageDays int, reason string) error {
	return a.do(ctx, client, token, http.MethodPut,
		fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID),
		banPayload{DeleteMessageDays: deleteMessageDays, Reason: reason}, nil)
}

// RemoveGuildBan lifts a user's ban.
func (a *API) RemoveGuildBan(ctx context.Context, client *http.Client, token string, guildID string,
	userID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID), nil, nil)
}

// GetGuildBans lists the bans of a guild.
func (a *API) GetGuildBans(ctx context.Context, client *http.Client, token string,
	guildID string) ([]Ban, error) {
	var bans []Ban
	if err := a.get(ctx, client, token, "/guilds/"+guildID+"/bans", &bans); err != nil {
		return nil, err
	}

	return bans, nil
}

// AddGuildMemberRole assigns a role to a member.
func (a *API) AddGuildMemberRole(ctx context.Context, client *http.Client, token string, guildID string,
	userID string, roleID string) error {
	return a.do(ctx, client, token, http.MethodPut,
		fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), nil, nil)
}

// RemoveGuildMemberRole removes a role from a member.
func (a *API) RemoveGuildMemberRole(ctx context.Context, client *http.Client, token string, guildID string,
	userID string, roleID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), nil, nil)
}

// GetGuildRoles lists the roles of a guild.
func (a *API) GetGuildRoles(ctx context.Context, client *http.Client, token string,
	guildID string) ([]Role, error) {
	var roles []Role
	if err := a.get(ctx, client, token, "/guilds/"+guildID+"/roles", &roles); err != nil {
		return nil, err
	}

	return roles, nil
}

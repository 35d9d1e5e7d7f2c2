package discord

import (
	"context"
	"net/http"

	"disbot/internal/core/domain"
)

// GetCurrentUser fetches the account the token belongs to.
func (a *API) GetCurrentUser(ctx context.Context, client *http.Client, token string) (domain.User, error) {
	var user domain.User
	if err := a.get(ctx, client, token, "/users/@me", &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// GetUser fetches a user account by ID.
func (a *API) GetUser(ctx context.Context, client *http.Client, token string,
	userID string) (domain.User, error) {
	var user domain.User
	if err := a.get(ctx, client, token, "/users/"+userID, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// GetCurrentUserGuilds lists the guilds the bot is a member of.
func (a *API) GetCurrentUserGuilds(ctx context.Context, client *http.Client, token string) ([]Guild, error) {
	var guilds []Guild
	if err := a.get(ctx, client, token, "/users/@me/guilds", &guilds); err != nil {
		return nil, err
	}

	return guilds, nil
}

// LeaveGuild removes the bot from a guild.
func (a *API) LeaveGuild(ctx context.Context, client *http.Client, token string, guildID string) error {
	return a.do(ctx, client, token, http.MethodDelete, "/users/@me/guilds/"+guildID, nil, nil)
}

type createDMPayload struct {
	RecipientID string `json:"recipient_id"`
}

// CreateDM opens (or reuses) a direct message channel with a user.
func (a *API) CreateDM(ctx context.Context, client *http.Client, token string,
	recipientID string) (domain.Channel, error) {
	var channel domain.Channel
	if err := a.do(ctx, client, token, http.MethodPost, "/users/@me/channels",
		createDMPayload{RecipientID: recipientID}, &channel); err != nil {
		return domain.Channel{}, err
	}

	return channel, nil
}

package discord

import (
	"context"
	"net/http"

	"disbot/internal/core/domain"
)

// GetChannel fetches channel metadata, including the owning guild ID.
func (a *API) GetChannel(ctx context.Context, client *http.Client, token string,
	channelID string) (domain.Channel, error) {
	var channel domain.Channel
	if err := a.get(ctx, client, token, "/channels/"+channelID, &channel); err != nil {
		return domain.Channel{}, err
	}

	return channel, nil
}

// ModifyChannel applies the given settings to a channel, e.g.
// {"name": "general"}, and returns the updated channel.
func (a *API) ModifyChannel(ctx context.Context, client *http.Client, token string, channelID string,
	settings map[string]any) (domain.Channel, error) {
	var channel domain.Channel
	if err := a.do(ctx, client, token, http.MethodPatch, "/channels/"+channelID, settings, &channel); err != nil {
		return domain.Channel{}, err
	}

	return channel, nil
}

// DeleteChannel deletes a guild channel, or closes a DM.
func (a *API) DeleteChannel(ctx context.Context, client *http.Client, token string, channelID string) error {
	return a.do(ctx, client, token, http.MethodDelete, "/channels/"+channelID, nil, nil)
}

// GetChannelMessages lists the most recent messages of a channel.
func (a *API) GetChannelMessages(ctx context.Context, client *http.Client, token string,
	channelID string) ([]Message, error) {
	var messages []Message
	if err := a.get(ctx, client, token, "/channels/"+channelID+"/messages", &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// GetChannelMessage fetches a single message by ID.
func (a *API) GetChannelMessage(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) (Message, error) {
	var message Message
	if err := a.get(ctx, client, token, "/channels/"+channelID+"/messages/"+messageID, &message); err != nil {
		return Message{}, err
	}

	return message, nil
}

// Invite is a channel invite as returned by the invite endpoints.
type Invite struct {
	Code      string `json:"code"`
	MaxAge    int    `json:"max_age"`
	MaxUses   int    `json:"max_uses"`
	Temporary bool   `json:"temporary"`
}

// CreateChannelInvite creates an invite for a channel with the given
// settings, e.g. {"max_age": 3600}.
func (a *API) CreateChannelInvite(ctx context.Context, client *http.Client, token string, channelID string,
	settings map[string]any) (Invite, error) {
	var invite Invite
	if err := a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/invites",
		settings, &invite); err != nil {
		return Invite{}, err
	}

	return invite, nil
}

// GetChannelInvites lists the active invites of a channel.
func (a *API) GetChannelInvites(ctx context.Context, client *http.Client, token string,
	channelID string) ([]Invite, error) {
	var invites []Invite
	if err := a.get(ctx, client, token, "/channels/"+channelID+"/invites", &invites); err != nil {
		return nil, err
	}

	return invites, nil
}

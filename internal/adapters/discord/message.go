package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"disbot/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Message is the subset of the Discord message resource the bot reads back.
type Message struct {
	ID        string      `json:"id"`
	ChannelID string      `json:"channel_id"`
	Content   string      `json:"content"`
	Author    domain.User `json:"author"`
	Pinned    bool        `json:"pinned"`
	Timestamp string      `json:"timestamp"`
}

type messagePayload struct {
	Content string        `json:"content,omitempty"`
	Nonce   string        `json:"nonce,omitempty"`
	Embed   *domain.Embed `json:"embed,omitempty"`
}

// SendMessage posts content as a plain text message to a channel. A random
// nonce deduplicates retried sends.
func (a *API) SendMessage(ctx context.Context, client *http.Client, token string, channelID string,
	content string) error {
	nonce, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("error generating nonce: %w", err)
	}

	return a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/messages",
		messagePayload{Content: content, Nonce: nonce.String()}, nil)
}

// DefaultEmbedColor is applied to embeds that do not set their own.
const DefaultEmbedColor = 0x3498db

// SendEmbed posts a rich embed card to a channel.
func (a *API) SendEmbed(ctx context.Context, client *http.Client, token string, channelID string,
	embed domain.Embed) error {
	if embed.Color == 0 {
		embed.Color = DefaultEmbedColor
	}

	return a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/messages",
		messagePayload{Embed: &embed}, nil)
}

// SendErrorMessage posts errorMessage to a channel with an "Error: " prefix.
func (a *API) SendErrorMessage(ctx context.Context, client *http.Client, token string, channelID string,
	errorMessage string) error {
	return a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/messages",
		messagePayload{Content: "Error: " + errorMessage}, nil)
}

// NotifyError reports err in the channel and returns it unchanged so command
// handlers can notify and propagate in one step.
func (a *API) NotifyError(ctx context.Context, client *http.Client, token string, channelID string,
	err error) error {
	if sendErr := a.SendErrorMessage(ctx, client, token, channelID, err.Error()); sendErr != nil {
		log.Warn().Err(sendErr).Str("channelId", channelID).Msg("failed to send error notice")
	}

	return err
}

// EditMessage replaces the content of an existing message.
func (a *API) EditMessage(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string, content string) error {
	return a.do(ctx, client, token, http.MethodPatch,
		fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID),
		messagePayload{Content: content}, nil)
}

// DeleteMessage removes a single message.
func (a *API) DeleteMessage(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID), nil, nil)
}

type bulkDeletePayload struct {
	Messages []string `json:"messages"`
}

// BulkDeleteMessages removes a batch of messages in one call.
func (a *API) BulkDeleteMessages(ctx context.Context, client *http.Client, token string, channelID string,
	messageIDs []string) error {
	return a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/messages/bulk-delete",
		bulkDeletePayload{Messages: messageIDs}, nil)
}

// PinMessage pins a message to its channel.
func (a *API) PinMessage(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) error {
	return a.do(ctx, client, token, http.MethodPut,
		fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID), nil, nil)
}

// UnpinMessage removes a message from the channel's pins.
func (a *API) UnpinMessage(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID), nil, nil)
}

// GetPinnedMessages lists the messages pinned in a channel.
func (a *API) GetPinnedMessages(ctx context.Context, client *http.Client, token string,
	channelID string) ([]Message, error) {
	var messages []Message
	if err := a.get(ctx, client, token, "/channels/"+channelID+"/pins", &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// CreateReaction adds the bot's reaction to a message. emoji is either a
// unicode emoji or a name:id pair for custom emojis.
func (a *API) CreateReaction(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string, emoji string) error {
	return a.do(ctx, client, token, http.MethodPut,
		fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me", channelID, messageID, url.PathEscape(emoji)),
		nil, nil)
}

// DeleteOwnReaction removes the bot's reaction from a message.
func (a *API) DeleteOwnReaction(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string, emoji string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me", channelID, messageID, url.PathEscape(emoji)),
		nil, nil)
}

// DeleteAllReactions clears every reaction from a message.
func (a *API) DeleteAllReactions(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) error {
	return a.do(ctx, client, token, http.MethodDelete,
		fmt.Sprintf("/channels/%s/messages/%s/reactions", channelID, messageID), nil, nil)
}

// TriggerTyping shows the typing indicator in a channel for a few seconds.
func (a *API) TriggerTyping(ctx context.Context, client *http.Client, token string, channelID string) error {
	return a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/typing", nil, nil)
}

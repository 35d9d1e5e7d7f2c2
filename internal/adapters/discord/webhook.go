package discord

import (
	"context"
	"net/http"
)

// Webhook is the subset of the Discord webhook resource the bot works with.
type Webhook struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Name      string `json:"name"`
	Token     string `json:"token"`
}

// CreateWebhook creates a webhook on a channel with the given settings, e.g.
// {"name": "announcements"}.
func (a *API) CreateWebhook(ctx context.Context, client *http.Client, token string, channelID string,
	settings map[string]any) (Webhook, error) {
	var webhook Webhook
	if err := a.do(ctx, client, token, http.MethodPost, "/channels/"+channelID+"/webhooks",
		settings, &webhook); err != nil {
		return Webhook{}, err
	}

	return webhook, nil
}

// GetChannelWebhooks lists the webhooks of a channel.
func (a *API) GetChannelWebhooks(ctx context.Context, client *http.Client, token string,
	channelID string) ([]Webhook, error) {
	var webhooks []Webhook
	if err := a.get(ctx, client, token, "/channels/"+channelID+"/webhooks", &webhooks); err != nil {
		return nil, err
	}

	return webhooks, nil
}

// GetWebhook fetches a webhook by ID.
func (a *API) GetWebhook(ctx context.Context, client *http.Client, token string,
	webhookID string) (Webhook, error) {
	var webhook Webhook
	if err := a.get(ctx, client, token, "/webhooks/"+webhookID, &webhook); err != nil {
		return Webhook{}, err
	}

	return webhook, nil
}

// ModifyWebhook applies the given settings to a webhook and returns the
// updated webhook.
func (a *API) ModifyWebhook(ctx context.Context, client *http.Client, token string, webhookID string,
	settings map[string]any) (Webhook, error) {
	var webhook Webhook
	if err := a.do(ctx, client, token, http.MethodPatch, "/webhooks/"+webhookID, settings, &webhook); err != nil {
		return Webhook{}, err
	}

	return webhook, nil
}

// DeleteWebhook permanently deletes a webhook.
func (a *API) DeleteWebhook(ctx context.Context, client *http.Client, token string, webhookID string) error {
	return a.do(ctx, client, token, http.MethodDelete, "/webhooks/"+webhookID, nil, nil)
}

// ExecuteWebhook posts a payload through a webhook, e.g. {"content": "hi"}.
// Webhook execution authenticates with the webhook's own token instead of the
// bot token.
func (a *API) ExecuteWebhook(ctx context.Context, client *http.Client, webhookID string, webhookToken string,
	payload map[string]any) error {
	return a.do(ctx, client, "", http.MethodPost, "/webhooks/"+webhookID+"/"+webhookToken, payload, nil)
}

package service

import (
	"context"
	"errors"
	"net/http"

	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Authorizer interface {
	IsAuthorized(ctx context.Context, client *http.Client, token string, channelID string) bool
}

// ChannelAuthorizer gates moderation commands to an allowlist of admin
// channels. Messages from any other channel are rejected with a notice.
type ChannelAuthorizer struct {
	allowlist []string
	messenger port.Messenger
}

func NewAuthorizer(messenger port.Messenger) (*ChannelAuthorizer, error) {
	var list []string

	err := viper.UnmarshalKey("discord.admin_channel_ids", &list)
	if err != nil {
		return nil, errors.New("failed to load admin channel IDs")
	}

	return &ChannelAuthorizer{
		allowlist: list,
		messenger: messenger,
	}, nil
}

const forbidden = "This command can only be used from an admin channel."

func (a *ChannelAuthorizer) IsAuthorized(ctx context.Context, client *http.Client, token string, channelID string) bool {
	for _, id := range a.allowlist {
		if id == channelID {
			return true
		}
	}

	err := a.messenger.SendMessage(ctx, client, token, channelID, forbidden)
	if err != nil {
		log.Err(err).Str("channelId", channelID).Msg("failed to send unauthorized warning")
	}

	return false
}

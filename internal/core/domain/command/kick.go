package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"disbot/internal/core/port"
	"disbot/internal/core/service"

	"github.com/rs/zerolog/log"
)

type Kick struct {
	moderator port.Moderator
	channels  port.ChannelDirectory
	messenger port.Messenger
	auth      service.Authorizer
	trigger   string
}

func NewKick(moderator port.Moderator, channels port.ChannelDirectory, messenger port.Messenger,
	auth service.Authorizer, trigger string) *Kick {
	return &Kick{moderator: moderator, channels: channels, messenger: messenger, auth: auth, trigger: trigger}
}

const kickUsage = "usage: %s <user-id>"

// Execute removes the given user from the guild the channel belongs to. Only
// admin channels may issue it.
func (k *Kick) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", k.trigger).
		Logger()

	l.Info().Msg("handling request")

	if !k.auth.IsAuthorized(ctx, client, token, channelID) {
		l.Warn().Msg("rejected request from unauthorized channel")
		return nil
	}

	fields := ParseArgs(args)
	if len(fields) == 0 {
		_ = k.messenger.NotifyError(ctx, client, token, channelID, fmt.Errorf(kickUsage, k.trigger))
		return nil
	}

	userID := fields[0]

	channel, err := k.channels.GetChannel(ctx, client, token, channelID)
	if err != nil {
		return k.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to resolve guild: %w", err))
	}

	if channel.GuildID == "" {
		return k.messenger.NotifyError(ctx, client, token, channelID, errors.New("not a guild channel"))
	}

	err = k.moderator.RemoveGuildMember(ctx, client, token, channel.GuildID, userID)
	if err != nil {
		return k.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to kick user %s: %w", userID, err))
	}

	l.Info().Str("userId", userID).Str("guildId", channel.GuildID).Msg("removed guild member")

	return k.messenger.SendMessage(ctx, client, token, channelID, fmt.Sprintf("Kicked <@%s>.", userID))
}

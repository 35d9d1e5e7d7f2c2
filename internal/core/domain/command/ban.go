package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"disbot/internal/core/port"
	"disbot/internal/core/service"

	"github.com/rs/zerolog/log"
)

type Ban struct {
	moderator port.Moderator
	channels  port.ChannelDirectory
	messenger port.Messenger
	auth      service.Authorizer
	trigger   string
}

func NewBan(moderator port.Moderator, channels port.ChannelDirectory, messenger port.Messenger,
	auth service.Authorizer, trigger string) *Ban {
	return &Ban{moderator: moderator, channels: channels, messenger: messenger, auth: auth, trigger: trigger}
}

const banUsage = "usage: %s <user-id> [days] [reason], days 0-7"

const maxDeleteDays = 7

// Execute bans the given user from the guild the channel belongs to,
// optionally deleting their messages from the last days and recording a
// reason. Only admin channels may issue it.
func (b *Ban) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", b.trigger).
		Logger()

	l.Info().Msg("handling request")

	if !b.auth.IsAuthorized(ctx, client, token, channelID) {
		l.Warn().Msg("rejected request from unauthorized channel")
		return nil
	}

	fields := ParseArgs(args)
	if len(fields) == 0 {
		_ = b.messenger.NotifyError(ctx, client, token, channelID, fmt.Errorf(banUsage, b.trigger))
		return nil
	}

	userID := fields[0]

	days := 0
	reason := ""
	if len(fields) > 1 {
		d, err := strconv.Atoi(fields[1])
		if err == nil {
			if d < 0 || d > maxDeleteDays {
				_ = b.messenger.NotifyError(ctx, client, token, channelID, fmt.Errorf(banUsage, b.trigger))
				return nil
			}
			days = d
			reason = strings.Join(fields[2:], " ")
		} else {
			reason = strings.Join(fields[1:], " ")
		}
	}

	channel, err := b.channels.GetChannel(ctx, client, token, channelID)
	if err != nil {
		return b.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to resolve guild: %w", err))
	}

	if channel.GuildID == "" {
		return b.messenger.NotifyError(ctx, client, token, channelID, errors.New("not a guild channel"))
	}

	err = b.moderator.CreateGuildBan(ctx, client, token, channel.GuildID, userID, days, reason)
	if err != nil {
		return b.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to ban user %s: %w", userID, err))
	}

	l.Info().
		Str("userId", userID).
		Str("guildId", channel.GuildID).
		Int("deleteMessageDays", days).
		Msg("created guild ban")

	return b.messenger.SendMessage(ctx, client, token, channelID, fmt.Sprintf("Banned <@%s>.", userID))
}

package command

import (
	"context"
	"net/http"
	"strings"

	"disbot/internal/core/domain"
	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Echo struct {
	messenger port.Messenger
	trigger   string
}

func NewEcho(messenger port.Messenger, trigger string) *Echo {
	return &Echo{messenger: messenger, trigger: trigger}
}

// Execute sends the argument text back to the channel verbatim.
func (e *Echo) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", e.trigger).
		Logger()

	l.Info().Msg("handling request")

	if strings.TrimSpace(args) == "" {
		return e.messenger.NotifyError(ctx, client, token, channelID, domain.ErrEmptyArgs)
	}

	return e.messenger.SendMessage(ctx, client, token, channelID, args)
}

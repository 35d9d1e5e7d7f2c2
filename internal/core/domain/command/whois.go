package command

import (
	"context"
	"fmt"
	"net/http"

	"disbot/internal/core/domain"
	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Whois struct {
	users     port.UserDirectory
	messenger port.Messenger
	trigger   string
}

func NewWhois(users port.UserDirectory, messenger port.Messenger, trigger string) *Whois {
	return &Whois{users: users, messenger: messenger, trigger: trigger}
}

// Execute looks up the user ID given as first argument and posts an embed
// with the account details.
func (w *Whois) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", w.trigger).
		Logger()

	l.Info().Msg("handling request")

	fields := ParseArgs(args)
	if len(fields) == 0 {
		return w.messenger.NotifyError(ctx, client, token, channelID, domain.ErrEmptyArgs)
	}

	userID := fields[0]

	user, err := w.users.GetUser(ctx, client, token, userID)
	if err != nil {
		return w.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to fetch user %s: %w", userID, err))
	}

	kind := "user"
	if user.Bot {
		kind = "bot"
	}

	embed := domain.Embed{
		Title:       user.Username,
		Description: fmt.Sprintf("ID: %s\nDisplay name: %s\nType: %s", user.ID, user.GlobalName, kind),
	}

	return w.messenger.SendEmbed(ctx, client, token, channelID, embed)
}

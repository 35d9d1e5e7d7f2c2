package command

import (
	"context"
	"net/http"

	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Ping struct {
	messenger port.Messenger
	trigger   string
}

func NewPing(messenger port.Messenger, trigger string) *Ping {
	return &Ping{messenger: messenger, trigger: trigger}
}

func (p *Ping) Execute(ctx context.Context, client *http.Client, token string, channelID string, _ string) error {
	log.Debug().Str("channelId", channelID).Str("command", p.trigger).Msg("handling request")

	return p.messenger.SendMessage(ctx, client, token, channelID, "Pong!")
}

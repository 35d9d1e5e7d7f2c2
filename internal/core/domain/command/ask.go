package command

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"disbot/internal/core/domain"
	"disbot/internal/core/port"
	"disbot/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Ask struct {
	textGenerator port.TextGenerator
	messenger     port.Messenger
	tracker       service.Tracker
	costPer1K     float64
	trigger       string

	l *zerolog.Logger
}

func NewAsk(textGenerator port.TextGenerator, messenger port.Messenger, tracker service.Tracker,
	trigger string) *Ask {
	logger := log.With().
		Str("command", trigger).
		Str("handler", "ask").
		Logger()

	return &Ask{
		textGenerator: textGenerator,
		messenger:     messenger,
		tracker:       tracker,
		costPer1K:     viper.GetFloat64("openrouter.cost_per_1k_tokens"),
		trigger:       trigger,
		l:             &logger,
	}
}

// Execute forwards the argument text to the text generator and posts the
// completion. Generation cost is charged against the channel's daily limit.
func (a *Ask) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := a.l.With().
		Str("channelId", channelID).
		Logger()

	l.Debug().Str("prompt", args).Msg("handling request")

	if !a.tracker.CheckLimit(ctx, client, token, channelID) {
		l.Debug().Msg("spending limit reached")
		return nil
	}

	prompt := strings.TrimSpace(args)
	if prompt == "" {
		return a.messenger.NotifyError(ctx, client, token, channelID, domain.ErrEmptyArgs)
	}

	go func() {
		if err := a.messenger.TriggerTyping(ctx, client, token, channelID); err != nil {
			l.Warn().Err(err).Msg("failed to trigger typing indicator")
		}
	}()

	response, err := a.textGenerator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return a.messenger.NotifyError(ctx, client, token, channelID,
			fmt.Errorf("failed to generate response: %w", err))
	}

	a.tracker.AddCost(channelID, a.costPer1K*float64(response.Metadata.TotalTokens)/1000)

	l.Debug().
		Str("model", response.Metadata.Model).
		Int("totalTokens", response.Metadata.TotalTokens).
		Msg("sending response")

	return a.messenger.SendMessage(ctx, client, token, channelID, response.Response)
}

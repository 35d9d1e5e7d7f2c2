package command

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"disbot/internal/core/port"
)

type Help struct {
	messenger port.Messenger
	router    port.CommandRouter
	trigger   string
}

func NewHelp(messenger port.Messenger, router port.CommandRouter, trigger string) *Help {
	return &Help{messenger: messenger, router: router, trigger: trigger}
}

// Execute lists every trigger currently registered on the router, so
// commands registered after startup show up without a code change here.
func (h *Help) Execute(ctx context.Context, client *http.Client, token string, channelID string, _ string) error {
	sb := &strings.Builder{}

	_, err := sb.WriteString("Available commands:\n")
	if err != nil {
		return fmt.Errorf("failed to construct response: %w", err)
	}

	for _, trigger := range h.router.ListTriggers() {
		_, err = fmt.Fprintf(sb, " - %s\n", trigger)
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	err = h.messenger.SendMessage(ctx, client, token, channelID, sb.String())
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

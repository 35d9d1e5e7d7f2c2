package command

import (
	"context"
	"fmt"
	"net/http"

	"disbot/internal/core/port"
	"disbot/internal/core/service"
)

type Spent struct {
	tracker   service.Tracker
	messenger port.Messenger
	trigger   string
}

func NewSpent(tracker service.Tracker, messenger port.Messenger, trigger string) *Spent {
	return &Spent{
		tracker:   tracker,
		messenger: messenger,
		trigger:   trigger,
	}
}

const spentMessage = "Spent today in this channel: $%.2f."

func (s *Spent) Execute(ctx context.Context, client *http.Client, token string, channelID string, _ string) error {
	err := s.messenger.SendMessage(ctx, client, token, channelID,
		fmt.Sprintf(spentMessage, s.tracker.GetSpent(channelID)))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

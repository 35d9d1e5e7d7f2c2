package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Tracker interface {
	AddCost(channelID string, cost float64)
	CheckLimit(ctx context.Context, client *http.Client, token string, channelID string) bool
	GetSpent(channelID string) float64
}

// UsageTracker accumulates generation cost per channel and enforces a daily
// spend limit. Totals reset at local midnight.
type UsageTracker struct {
	mutex      sync.Mutex
	channels   map[string]float64
	dailyLimit float64
	messenger  port.Messenger
}

func NewUsageTracker(ctx context.Context, messenger port.Messenger) *UsageTracker {
	ut := &UsageTracker{
		channels:   make(map[string]float64),
		messenger:  messenger,
		dailyLimit: viper.GetFloat64("openrouter.daily_spend_limit"),
	}

	go ut.ResetDailyLimit(ctx)

	return ut
}

func (t *UsageTracker) AddCost(channelID string, cost float64) {
	t.mutex.Lock()
	t.channels[channelID] += cost
	t.mutex.Unlock()
}

func (t *UsageTracker) GetSpent(channelID string) float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.channels[channelID]
}

const overLimit = "Daily spend limit of $%.2f exceeded for this channel. Limit will reset in %s."

func (t *UsageTracker) CheckLimit(ctx context.Context, client *http.Client, token string, channelID string) bool {
	t.mutex.Lock()
	spent := t.channels[channelID]
	t.mutex.Unlock()

	if spent > t.dailyLimit {
		err := t.messenger.SendMessage(ctx, client, token, channelID,
			fmt.Sprintf(overLimit, t.dailyLimit, time.Until(getNextResetTime()).Truncate(time.Second)))
		if err != nil {
			log.Warn().Err(err).Msg("failed to send daily limit exceeded warning")
		}

		return false
	}

	return true
}

func (t *UsageTracker) ResetDailyLimit(ctx context.Context) {
	reset := getNextResetTime()

	for {
		log.Debug().Time("reset", reset).Msg("running reset timer")
		select {
		case <-time.After(time.Until(reset)):
			log.Debug().Msg("resetting daily limit")
			t.mutex.Lock()
			t.channels = make(map[string]float64)
			t.mutex.Unlock()
			time.Sleep(time.Second)
			reset = getNextResetTime()
		case <-ctx.Done():
			log.Debug().Msg("stopping daily limit reset")
			return
		}
	}
}

func getNextResetTime() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

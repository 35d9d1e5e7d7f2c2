package command

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Roll struct {
	messenger port.Messenger
	trigger   string
}

func NewRoll(messenger port.Messenger, trigger string) *Roll {
	return &Roll{messenger: messenger, trigger: trigger}
}

const rollUsage = "usage: %s or %s <count>d<sides>, e.g. 2d20"

const (
	maxDice  = 20
	maxSides = 1000
)

// Execute rolls dice in <count>d<sides> notation. Without arguments a single
// six-sided die is rolled.
func (r *Roll) Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", r.trigger).
		Logger()

	l.Info().Msg("handling request")

	count, sides := 1, 6

	if fields := ParseArgs(args); len(fields) > 0 {
		var err error
		count, sides, err = parseDice(fields[0])
		if err != nil {
			_ = r.messenger.NotifyError(ctx, client, token, channelID, fmt.Errorf(rollUsage, r.trigger, r.trigger))
			return nil
		}
	}

	rolls := make([]string, count)
	total := 0
	for i := range rolls {
		n := rand.Intn(sides) + 1
		total += n
		rolls[i] = strconv.Itoa(n)
	}

	var content string
	if count == 1 {
		content = fmt.Sprintf("Rolled %s.", rolls[0])
	} else {
		content = fmt.Sprintf("Rolled %s (total %d).", strings.Join(rolls, ", "), total)
	}

	return r.messenger.SendMessage(ctx, client, token, channelID, content)
}

func parseDice(arg string) (int, int, error) {
	countRaw, sidesRaw, found := strings.Cut(strings.ToLower(arg), "d")
	if !found {
		return 0, 0, fmt.Errorf("invalid dice notation %q", arg)
	}

	count, err := strconv.Atoi(countRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dice count: %w", err)
	}

	sides, err := strconv.Atoi(sidesRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dice sides: %w", err)
	}

	if count < 1 || count > maxDice || sides < 2 || sides > maxSides {
		return 0, 0, fmt.Errorf("dice out of range: %q", arg)
	}

	return count, sides, nil
}

package command

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"disbot/internal/core/domain"
	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Router maps trigger tokens to command handlers and dispatches inbound
// messages to them. The zero value is ready to use.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]port.Command
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]port.Command)}
}

// Register adds handler under trigger. Registering a trigger twice replaces
// the earlier handler; the last registration wins.
func (r *Router) Register(trigger string, handler port.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers == nil {
		r.handlers = make(map[string]port.Command)
	}

	log.Info().Str("trigger", trigger).Msg("registering command handler")

	r.handlers[trigger] = handler
}

// Dispatch splits content into a trigger and its argument text, looks up the
// trigger and invokes the matching handler. A handler's error is returned
// unchanged. An unregistered trigger yields an error wrapping
// domain.ErrUnknownCommand.
//
// The lock is held only for the lookup, never while the handler runs, so
// concurrent dispatches proceed independently.
func (r *Router) Dispatch(ctx context.Context, client *http.Client, token string, channelID string, content string) error {
	trigger, args := ParseTrigger(content)

	log.Debug().Str("trigger", trigger).Str("channelId", channelID).Msg("dispatching command")

	r.mu.RLock()
	handler, ok := r.handlers[trigger]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCommand, trigger)
	}

	return handler.Execute(ctx, client, token, channelID, args)
}

// ListTriggers returns all registered triggers in lexical order.
func (r *Router) ListTriggers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	triggers := make([]string, 0, len(r.handlers))
	for trigger := range r.handlers {
		triggers = append(triggers, trigger)
	}

	sort.Strings(triggers)

	return triggers
}

// ParseTrigger splits an inbound message into its leading trigger token and
// the remaining argument text. Content without a space is all trigger.
func ParseTrigger(content string) (string, string) {
	parts := strings.SplitN(content, " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}

	return parts[0], parts[1]
}

// ParseArgs splits argument text into whitespace-separated fields.
func ParseArgs(args string) []string {
	return strings.Fields(args)
}

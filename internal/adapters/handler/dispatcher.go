package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"disbot/internal/core/domain"
	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Dispatcher struct {
	router  port.CommandRouter
	client  *http.Client
	token   string
	timeout time.Duration
}

func NewDispatcher(router port.CommandRouter, client *http.Client, token string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{router: router, client: client, token: token, timeout: timeout}
}

// Run consumes src until the context is canceled or the message channel is
// closed, handling each message on its own goroutine. In-flight handlers are
// waited for before returning.
func (d *Dispatcher) Run(ctx context.Context, src port.MessageSource) {
	var wg sync.WaitGroup

	messages := src.Messages()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case msg, ok := <-messages:
			if !ok {
				wg.Wait()
				return
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				d.dispatch(msg)
			}()
		}
	}
}

// dispatch runs detached from the consumer context so a response in flight
// during shutdown still gets its full timeout.
func (d *Dispatcher) dispatch(msg domain.Message) {
	log.Debug().Str("message", msg.Content).Msg("received command")

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := d.router.Dispatch(ctx, d.client, d.token, msg.ChannelID, msg.Content)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrUnknownCommand) {
		log.Debug().Str("message", msg.Content).Msg("no handler for command")
		return
	}

	log.Err(err).Str("message", msg.Content).Msg("failed to respond to command")
}

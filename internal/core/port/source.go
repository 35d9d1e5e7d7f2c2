package port

import "disbot/internal/core/domain"

type MessageSource interface {
	// Messages returns the stream of inbound messages. The channel is closed
	// when the source shuts down.
	Messages() <-chan domain.Message
}

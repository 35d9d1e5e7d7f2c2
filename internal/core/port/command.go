package port

import (
	"context"
	"net/http"
)

type Command interface {
	// Execute runs the command. client is the shared HTTP client for API
	// calls, token authenticates them, channelID is the channel the
	// triggering message came from, and args is the message text after the
	// trigger token, possibly empty.
	Execute(ctx context.Context, client *http.Client, token string, channelID string, args string) error
}

type CommandRouter interface {
	// Register adds a command handler under the given trigger, replacing any handler
	// already registered for it.
	Register(trigger string, handler Command)
	// Dispatch resolves the leading token of content to a handler and invokes it
	// with the remaining text. The handler's result is returned unchanged.
	Dispatch(ctx context.Context, client *http.Client, token string, channelID string, content string) error
	// ListTriggers returns all registered triggers in lexical order.
	ListTriggers() []string
}

package port

import (
	"context"
	"net/http"

	"disbot/internal/core/domain"
)

type Messenger interface {
	// SendMessage posts plain text content to a channel.
	SendMessage(ctx context.Context, client *http.Client, token string, channelID string, content string) error
	// SendEmbed posts a rich embed card to a channel.
	SendEmbed(ctx context.Context, client *http.Client, token string, channelID string, embed domain.Embed) error
	// TriggerTyping shows the typing indicator in a channel.
	TriggerTyping(ctx context.Context, client *http.Client, token string, channelID string) error
	// NotifyError reports err in the channel and returns it unchanged so
	// callers can notify and propagate in one step.
	NotifyError(ctx context.Context, client *http.Client, token string, channelID string, err error) error
}

type ChannelDirectory interface {
	// GetChannel fetches channel metadata, including the owning guild ID.
	GetChannel(ctx context.Context, client *http.Client, token string, channelID string) (domain.Channel, error)
}

type UserDirectory interface {
	// GetUser fetches a user account by ID.
	GetUser(ctx context.Context, client *http.Client, token string, userID string) (domain.User, error)
	// GetCurrentUser fetches the account the token belongs to.
	GetCurrentUser(ctx context.Context, client *http.Client, token string) (domain.User, error)
}

type Moderator interface {
	// RemoveGuildMember kicks a member from a guild.
	RemoveGuildMember(ctx context.Context, client *http.Client, token string, guildID string, userID string) error
	// CreateGuildBan bans a user and deletes their recent messages going back
	// deleteMessageDays days.
	CreateGuildBan(ctx context.Context, client *http.Client, token string, guildID string, userID string, deleteMessageDays int, reason string) error
}

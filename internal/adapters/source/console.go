package source

import (
	"bufio"
	"context"
	"io"
	"strings"

	"disbot/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// Console reads newline-delimited commands from a reader, usually stdin.
// Lines go to the default channel unless prefixed with an explicit channel
// ID in the form "<channelID>|<content>".
type Console struct {
	reader           io.Reader
	defaultChannelID string
	messages         chan domain.Message
}

func NewConsole(reader io.Reader, defaultChannelID string) *Console {
	return &Console{
		reader:           reader,
		defaultChannelID: defaultChannelID,
		messages:         make(chan domain.Message),
	}
}

func (c *Console) Messages() <-chan domain.Message {
	return c.messages
}

// Run scans lines until EOF or context cancellation, then closes the
// message channel.
func (c *Console) Run(ctx context.Context) {
	defer close(c.messages)

	scanner := bufio.NewScanner(c.reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		select {
		case c.messages <- c.parseLine(line):
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("error reading console input")
	}
}

// parseLine splits off a channel override. The prefix counts as a channel
// ID only when it is a plain snowflake, so pipes inside command arguments
// pass through untouched.
func (c *Console) parseLine(line string) domain.Message {
	channelID, content, found := strings.Cut(line, "|")
	if found && isSnowflake(channelID) {
		return domain.Message{ChannelID: channelID, Content: content}
	}

	return domain.Message{ChannelID: c.defaultChannelID, Content: line}
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

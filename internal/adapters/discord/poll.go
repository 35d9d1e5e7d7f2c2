package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"disbot/internal/core/domain"
)

type answerVoters struct {
	Users []domain.User `json:"users"`
}

// GetAnswerVoters pages through the users who voted for a poll answer. after
// is the user ID to page from; zero values leave paging to the API defaults.
func (a *API) GetAnswerVoters(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string, answerID string, after string, limit int) ([]domain.User, error) {
	path := fmt.Sprintf("/channels/%s/polls/%s/answers/%s", channelID, messageID, answerID)

	query := url.Values{}
	if after != "" {
		query.Set("after", after)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var voters answerVoters
	if err := a.get(ctx, client, token, path, &voters); err != nil {
		return nil, err
	}

	return voters.Users, nil
}

// EndPoll immediately expires a poll and returns the final poll message.
func (a *API) EndPoll(ctx context.Context, client *http.Client, token string, channelID string,
	messageID string) (Message, error) {
	var message Message
	if err := a.do(ctx, client, token, http.MethodPost,
		fmt.Sprintf("/channels/%s/polls/%s/expire", channelID, messageID), nil, &message); err != nil {
		return Message{}, err
	}

	return message, nil
}

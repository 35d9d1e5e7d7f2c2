// Package discord is a thin wrapper over the Discord REST API. Endpoint
// methods take the caller's HTTP client and bot token on every call; the API
// value itself only carries the base URL and request plumbing.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public Discord REST endpoint.
const DefaultBaseURL = "https://discord.com/api/v9"

// error bodies are truncated to keep log lines bounded
const maxErrorBody = 2048

type API struct {
	baseURL string
}

// NewAPI returns an API bound to the public Discord endpoint.
func NewAPI() *API {
	return &API{baseURL: DefaultBaseURL}
}

// NewAPIWithBaseURL returns an API bound to a custom endpoint, e.g. a proxy
// or a test server.
func NewAPIWithBaseURL(baseURL string) *API {
	return &API{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// APIError is returned for any response outside the 2xx range.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API error: status %d: %s", e.Status, e.Body)
}

// do executes one REST request. A nil payload sends an empty body, a nil out
// discards the response body. The Authorization header is left off when token
// is empty, which the webhook-token endpoints rely on.
func (a *API) do(ctx context.Context, client *http.Client, token string, method string, path string,
	payload any, out any) error {
	var body io.Reader
	if payload != nil {
		payloadBuf := new(bytes.Buffer)
		if err := json.NewEncoder(payloadBuf).Encode(payload); err != nil {
			return fmt.Errorf("error encoding request payload: %w", err)
		}
		body = payloadBuf
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating %s request: %w", method, err)
	}

	if token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error executing %s %s: %w", method, path, err)
	}

	defer res.Body.Close()

	log.Trace().Str("method", method).Str("path", path).Int("status", res.StatusCode).Msg("discord API call")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

func (a *API) get(ctx context.Context, client *http.Client, token string, path string, out any) error {
	return a.do(ctx, client, token, http.MethodGet, path, nil, out)
}

package command

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"disbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDebugMessenger struct {
	mock.Mock
}

func (m *MockDebugMessenger) SendMessage(ctx context.Context, client *http.Client, token string,
	channelID string, content string) error {
	args := m.Called(ctx, client, token, channelID, content)
	return args.Error(0)
}

func (m *MockDebugMessenger) SendEmbed(_ context.Context, _ *http.Client, _ string, _ string, _ domain.Embed) error {
	// mocked
	return nil
}

func (m *MockDebugMessenger) TriggerTyping(_ context.Context, _ *http.Client, _ string, _ string) error {
	// mocked
	return nil
}

func (m *MockDebugMessenger) NotifyError(_ context.Context, _ *http.Client, _ string, _ string, err error) error {
	// mocked
	return err
}

func TestDebugSendsRuntimeStats(t *testing.T) {
	mockMessenger := new(MockDebugMessenger)
	debugHandler := NewDebug(mockMessenger, "!debug")

	mockMessenger.
		On(
			"SendMessage",
			mock.Anything,
			mock.Anything,
			"token",
			"123",
			mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "allocated mem:") &&
					strings.Contains(text, "goroutines running:") &&
					strings.Contains(text, "heap:") &&
					strings.Contains(text, "stack:") &&
					strings.Contains(text, "compiled with")
			}),
		).
		Return(nil)

	err := debugHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "")
	require.NoError(t, err)
	mockMessenger.AssertExpectations(t)
}

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"disbot/internal/core/domain"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type mockMessenger struct {
	sendCalled  bool
	callCount   int
	sendReplies []string
	sendError   error
}

func (m *mockMessenger) SendMessage(_ context.Context, _ *http.Client, _ string, _ string, content string) error {
	m.callCount++
	m.sendCalled = true
	m.sendReplies = append(m.sendReplies, content)
	return m.sendError
}

func (m *mockMessenger) SendEmbed(_ context.Context, _ *http.Client, _ string, _ string, _ domain.Embed) error {
	panic("implement me")
}

func (m *mockMessenger) TriggerTyping(_ context.Context, _ *http.Client, _ string, _ string) error {
	panic("implement me")
}

func (m *mockMessenger) NotifyError(_ context.Context, _ *http.Client, _ string, _ string, _ error) error {
	panic("implement me")
}

func TestNewAuthorizer(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		wantErr  bool
		expected []string
	}{
		{
			name: "loads admin channel IDs",
			setup: func() {
				viper.Set("discord.admin_channel_ids", []string{"1", "2", "3"})
			},
			wantErr:  false,
			expected: []string{"1", "2", "3"},
		},
		{
			name: "invalid type returns error",
			setup: func() {
				viper.Set("discord.admin_channel_ids", map[string]string{"not": "a slice"})
			},
			wantErr: true,
		},
		{
			name: "empty list is fine",
			setup: func() {
				viper.Set("discord.admin_channel_ids", []string{})
			},
			wantErr:  false,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper between tests
			viper.Reset()
			tt.setup()
			auth, err := NewAuthorizer(&mockMessenger{})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, auth)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, auth)
				assert.Equal(t, tt.expected, auth.allowlist)
			}
		})
	}
}

func TestChannelAuthorizerIsAuthorized(t *testing.T) {
	tests := []struct {
		name       string
		allowlist  []string
		channelID  string
		sendErr    error
		want       bool
		expectSend bool
	}{
		{
			name:       "channel is allowed",
			allowlist:  []string{"123", "456"},
			channelID:  "123",
			want:       true,
			expectSend: false,
		},
		{
			name:       "channel not allowed sends notice",
			allowlist:  []string{"111", "222"},
			channelID:  "333",
			expectSend: true,
			want:       false,
		},
		{
			name:       "send failure still denies",
			allowlist:  []string{"999"},
			channelID:  "888",
			expectSend: true,
			want:       false,
			sendErr:    errors.New("send failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm := &mockMessenger{sendError: tt.sendErr}
			a := &ChannelAuthorizer{
				allowlist: tt.allowlist,
				messenger: mm,
			}

			got := a.IsAuthorized(t.Context(), http.DefaultClient, "token", tt.channelID)

			assert.Equal(t, tt.want, got)
			if tt.expectSend {
				assert.True(t, mm.sendCalled, "SendMessage should have been called")
				assert.Equal(t, forbidden, mm.sendReplies[0])
			} else {
				assert.False(t, mm.sendCalled, "SendMessage should not have been called")
			}
		})
	}
}

package command

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpentReportsChannelTotal(t *testing.T) {
	mt := &MockTracker{}
	mt.AddCost("123", 1.239)
	mm := &MockMessenger{}

	spentHandler := NewSpent(mt, mm, "!spent")

	err := spentHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "")

	require.NoError(t, err)
	assert.Equal(t, "Spent today in this channel: $1.24.", mm.Message)
}

func TestSpentSendFailed(t *testing.T) {
	mt := &MockTracker{}
	mm := &MockMessenger{err: assert.AnError}

	spentHandler := NewSpent(mt, mm, "!spent")

	err := spentHandler.Execute(t.Context(), http.DefaultClient, "token", "123", "")

	require.ErrorIs(t, err, assert.AnError)
}

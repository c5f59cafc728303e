package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-quickadd/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastPayload map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPayload = nil
		_ = json.NewDecoder(r.Body).Decode(&lastPayload)

		value, _ := lastPayload["url"].(string)
		if text, ok := lastPayload["text"].(string); ok {
			value = text
		}

		switch {
		case !strings.HasSuffix(r.URL.Path, "/setWebhook") && !strings.HasSuffix(r.URL.Path, "/sendMessage"):
			w.WriteHeader(http.StatusNotFound)
		case value == "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok": false, "description": "invalid input"}`))
		case value == "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SetWebhook sends the secret", func(t *testing.T) {
		require.NoError(t, bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"))
		assert.Equal(t, "s3cret", lastPayload["secret_token"])
	})

	t.Run("SetWebhook API failure", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid input")
	})

	t.Run("SetWebhook HTTP failure", func(t *testing.T) {
		assert.Error(t, bot.SetWebhook(ctx, "cause_500", ""))
	})

	t.Run("SendMessage", func(t *testing.T) {
		require.NoError(t, bot.SendMessage(ctx, 12345, "Hello"))
		assert.EqualValues(t, 12345, lastPayload["chat_id"])
		assert.NotContains(t, lastPayload, "reply_to_message_id")
	})

	t.Run("Reply threads the message", func(t *testing.T) {
		msg := &telegram.Message{MessageID: 7, Chat: &telegram.Chat{ID: 99}}
		require.NoError(t, bot.Reply(ctx, msg, "Hi"))
		assert.EqualValues(t, 99, lastPayload["chat_id"])
		assert.EqualValues(t, 7, lastPayload["reply_to_message_id"])
	})

	t.Run("SendMessage API failure", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid input")
	})

	t.Run("SendMessage HTTP failure", func(t *testing.T) {
		assert.Error(t, bot.SendMessage(ctx, 12345, "cause_500"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, bot.SendMessage(cctx, 1, "x"))
	})
}

func TestVerifySecret(t *testing.T) {
	assert.True(t, telegram.VerifySecret("", "anything"))
	assert.True(t, telegram.VerifySecret("abc", "abc"))
	assert.False(t, telegram.VerifySecret("abc", "abd"))
	assert.False(t, telegram.VerifySecret("abc", ""))
}

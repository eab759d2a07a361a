package slack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", true, metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(context.Background(), message)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.ScoreNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", false, metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(context.Background(), message)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.ScoreNotifSent())
	assert.Equal(t, 0, metrics.ScoreNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", false, metrics)

	_, _, err := notifier.sendMessage(context.Background(), slackapi.NewBlockMessage())

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.ScoreNotifSent())
	assert.Equal(t, 1, metrics.ScoreNotifFailed())
}

func TestSendScoreUpdate_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	n := NewNotifierWithAPI(api, "C123", false, metrics.NewMock())

	err := n.SendScoreUpdate(context.Background(), notifier.ScoreUpdate{Total: 12})
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendScoreUpdate")
}

func TestFormatScoreUpdate(t *testing.T) {
	update := notifier.ScoreUpdate{
		SessionID: "abc",
		Previous:  10,
		Total:     12,
		Players: []notifier.PlayerLine{
			{Name: "Tom Brady", Position: "QB", Team: "TB", Points: 12, HasStats: true},
			{Name: "Cooper Kupp", Position: "WR", Team: "LAR"},
		},
		FailedIDs: []int{4},
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatScoreUpdate(update)
	require.Len(t, msg.Blocks.BlockSet, 4, "Expected 4 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "Block 0 should be a HeaderBlock")
	assert.Contains(t, header.Text.Text, "Team score update")

	total, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Block 1 should be a SectionBlock")
	assert.Equal(t, "*Total:* 12.0 pts (+2.0)", total.Text.Text)

	players, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok, "Block 2 should be a SectionBlock")
	assert.Contains(t, players.Text.Text, "• Tom Brady (QB, TB): 12.0 pts")
	assert.Contains(t, players.Text.Text, "• Cooper Kupp (WR, LAR): no stats yet")

	ctxBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok, "Block 3 should be a ContextBlock")
	require.Len(t, ctxBlock.ContextElements.Elements, 2)
}

func TestFormatScoreUpdate_Minimal(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatScoreUpdate(notifier.ScoreUpdate{Previous: 5, Total: 3})
	require.Len(t, msg.Blocks.BlockSet, 2)

	total := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "*Total:* 3.0 pts (-2.0)", total.Text.Text)
}

func TestSendScoreUpdate_ThroughSlackAPI(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		assert.Equal(t, "C123", vals.Get("channel"))

		var blocks slackapi.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)
		require.Len(t, blocks.BlockSet, 2)

		header := blocks.BlockSet[0].(*slackapi.HeaderBlock)
		assert.Contains(t, header.Text.Text, "Team score update")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "channel": "C123", "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slackapi.New("test-token", slackapi.OptionAPIURL(srv.URL+"/"))
	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", false, metrics)

	err := n.SendScoreUpdate(context.Background(), notifier.ScoreUpdate{Previous: 0, Total: 9.5})

	require.NoError(t, err)
	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metrics.ScoreNotifSent())
}

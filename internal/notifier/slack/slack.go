package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	dryRun    bool
}

// NewNotifier creates a new Notifier. With dryRun set, messages are only logged.
func NewNotifier(token, channelID string, dryRun bool, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		dryRun:    dryRun,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, dryRun bool, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		dryRun:    dryRun,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message) (string, string, error) {
	if s.dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncScoreNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncScoreNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendScoreUpdate posts the new aggregate score together with each rostered player's points.
func (s *Notifier) SendScoreUpdate(ctx context.Context, update notifier.ScoreUpdate) error {
	msg := s.formatScoreUpdate(update)
	_, _, err := s.sendMessage(ctx, msg)
	return err
}

// formatScoreUpdate creates the Slack message for a score change using Block Kit.
func (s *Notifier) formatScoreUpdate(update notifier.ScoreUpdate) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🏈 Team score update 🏈", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	totalText := fmt.Sprintf("*Total:* %s pts (%s)", formatPoints(update.Total), formatDelta(update.Total-update.Previous))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", totalText, false, false), nil, nil))

	// Players
	if len(update.Players) > 0 {
		var lines []string
		for _, p := range update.Players {
			points := "no stats yet"
			if p.HasStats {
				points = formatPoints(p.Points) + " pts"
			}
			lines = append(lines, fmt.Sprintf("• %s (%s, %s): %s", p.Name, p.Position, p.Team, points))
		}
		playersText := "Players:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playersText, true, false), nil, nil))
	}

	// Context - For simpler, single-line info.
	var contextElements []slack.MixedElement
	if len(update.FailedIDs) > 0 {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("⚠️ Stats could not be refreshed for players %v", update.FailedIDs), true, false))
	}
	if update.SessionID != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Session `%s`", update.SessionID), false, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

func formatPoints(points float64) string {
	return fmt.Sprintf("%.1f", points)
}

func formatDelta(delta float64) string {
	if delta >= 0 {
		return "+" + formatPoints(delta)
	}
	return formatPoints(delta)
}

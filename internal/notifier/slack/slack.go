package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/metrics"
	"github.com/auspicious-soft/courtside/internal/notifier"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
	"github.com/charmbracelet/log"
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
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendBookingConfirmation(rec *session.BookingRecord, dryRun bool) error {
	msg := s.formatBookingConfirmation(rec)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendOpenSpotInvite(match *backend.OpenMatch, dryRun bool) error {
	msg := s.formatOpenSpotInvite(match)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendScoreUploaded(rec *session.BookingRecord, score scoring.MatchScoreForm, dryRun bool) error {
	msg := s.formatScoreUploaded(rec, score)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatBookingConfirmation creates the Slack message for a paid booking using Block Kit.
func (s *Notifier) formatBookingConfirmation(rec *session.BookingRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Booking confirmed!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf(
		"Venue: %s\nCourt: %s\nDate: %s\nSlots: %s\nPaid: %s",
		rec.VenueName, rec.CourtName, formatDate(rec.BookingDate),
		strings.Join(rec.Slots, ", "), formatPaise(rec.AmountPaid),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	msg := slack.NewBlockMessage(blocks...)
	msg.Text = "Booking confirmed at " + rec.VenueName
	return msg
}

// formatOpenSpotInvite creates the Slack message inviting players to fill an
// open seat.
func (s *Notifier) formatOpenSpotInvite(match *backend.OpenMatch) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🙋 Open spots on a match!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	open := match.Roster.OpenSpots(false)
	detailsText := fmt.Sprintf(
		"Venue: %s\nCourt: %s\nDate: %s\nOpen spots: %d",
		match.VenueName, match.CourtName, formatDate(match.BookingDate), open,
	)
	if match.Competitive {
		detailsText += fmt.Sprintf("\nCompetitive, skill %.1f+", match.Skill)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if players := match.Roster.Players(); len(players) > 0 {
		names := make([]string, 0, len(players))
		for _, p := range players {
			names = append(names, p.Name)
		}
		playersText := "Already in: " + strings.Join(names, ", ")
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", playersText, true, false)))
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.Text = fmt.Sprintf("%d open spots at %s", open, match.VenueName)
	return msg
}

// formatScoreUploaded creates the Slack message for an accepted score sheet.
func (s *Notifier) formatScoreUploaded(rec *session.BookingRecord, score scoring.MatchScoreForm) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Match result recorded", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for i, set := range score.Sets() {
		if !set.Played() {
			continue
		}
		lines = append(lines, fmt.Sprintf("Set %d: %s - %s", i+1, set.TeamA, set.TeamB))
	}
	detailsText := fmt.Sprintf("%s, %s\n%s", rec.VenueName, formatDate(rec.BookingDate), strings.Join(lines, "\n"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	msg := slack.NewBlockMessage(blocks...)
	msg.Text = "Match result recorded for " + rec.VenueName
	return msg
}

func formatDate(bookingDate string) string {
	if ts, err := time.Parse(time.RFC3339, bookingDate); err == nil {
		return ts.Format("Monday 02 Jan")
	}
	return bookingDate
}

func formatPaise(amount int64) string {
	return fmt.Sprintf("₹%.2f", float64(amount)/100)
}

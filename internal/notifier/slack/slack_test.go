package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/metrics"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
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

func testBookingRecord() *session.BookingRecord {
	return &session.BookingRecord{
		ID:          "b1",
		VenueName:   "Riverside Padel",
		CourtName:   "Court 1",
		Sport:       scoring.SportPadel,
		BookingDate: "2026-09-01T00:00:00Z",
		Slots:       []string{"18:00", "18:30"},
		AmountPaid:  80000,
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
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
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 1, metrics.NotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendBookingConfirmation_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendBookingConfirmation(testBookingRecord(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled)
	assert.Equal(t, 1, metrics.NotifSent())
}

func TestFormatBookingConfirmation(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatBookingConfirmation(testBookingRecord())
	require.NotEmpty(t, msg.Blocks.BlockSet)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be the header")
	assert.Contains(t, header.Text.Text, "Booking confirmed")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Riverside Padel")
	assert.Contains(t, section.Text.Text, "18:00, 18:30")
	assert.Contains(t, section.Text.Text, "₹800.00")
}

func TestFormatOpenSpotInvite(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	match := &backend.OpenMatch{
		BookingID:   "b1",
		VenueName:   "Riverside Padel",
		CourtName:   "Court 2",
		BookingDate: "2026-09-01T00:00:00Z",
		Competitive: true,
		Skill:       3.5,
	}
	require.NoError(t, match.Roster.Assign(1, 0, booking.Seat{ID: "p1", Name: "Asha", Type: booking.SeatUser}))

	msg := notifier.formatOpenSpotInvite(match)
	require.GreaterOrEqual(t, len(msg.Blocks.BlockSet), 3)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Open spots: 3")
	assert.Contains(t, section.Text.Text, "skill 3.5+")

	context, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	textObj, ok := context.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, textObj.Text, "Asha")
}

func TestFormatScoreUploaded_SkipsUnplayedSets(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	score := scoring.MatchScoreForm{
		Set1: scoring.SetScore{TeamA: "6", TeamB: "4"},
		Set3: scoring.SetScore{TeamA: "7", TeamB: "5"},
	}
	msg := notifier.formatScoreUploaded(testBookingRecord(), score)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Set 1: 6 - 4")
	assert.Contains(t, section.Text.Text, "Set 3: 7 - 5")
	assert.NotContains(t, section.Text.Text, "Set 2")
}

package notifier

import (
	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For freshly paid bookings
	SendBookingConfirmation(rec *session.BookingRecord, dryRun bool) error
	// For ask-to-join matches with open seats
	SendOpenSpotInvite(match *backend.OpenMatch, dryRun bool) error
	// For accepted score sheets
	SendScoreUploaded(rec *session.BookingRecord, score scoring.MatchScoreForm, dryRun bool) error
}

package flows

import (
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/notifier"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
)

// Store defines the persistence operations required by the flows.
type Store interface {
	CreateSession(sess *session.Session) error
	GetSession(id string) (*session.Session, error)
	AssignSeat(id string, team, seat int, player booking.Seat) error
	TransitionState(id string, from, to session.State) error
	SetSubmission(id, transactionID, orderID string) error
	CancelSession(id string) error
	RecordBooking(rec *session.BookingRecord) error
	GetBooking(id string) (*session.BookingRecord, error)
	ListBookings(userID string) ([]session.BookingRecord, error)
	SetScore(bookingID string, score scoring.MatchScoreForm) error
}

// Notifier defines the notification operations required by the flows.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}

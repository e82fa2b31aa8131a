package session

import (
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/scoring"
)

// SessionStore defines the interface for booking session and booking record
// persistence.
type SessionStore interface {
	CreateSession(sess *Session) error
	GetSession(id string) (*Session, error)
	GetOpenSessionForUser(userID string) (*Session, error)

	AssignSeat(id string, team, seat int, player booking.Seat) error
	ClearSeat(id string, team, seat int) error
	VacateSeat(id string, team, seat int) error
	SetPendingSeat(id string, team, seat int, claimant booking.Seat) error
	RollbackPendingSeat(id string) error
	CommitPendingSeat(id string) error

	SetEquipment(id string, eq booking.Equipment) error
	SetPaymentMethod(id string, m booking.PaymentMethod) error
	SetTotalPrice(id string, total int64) error

	TransitionState(id string, from, to State) error
	SetSubmission(id, transactionID, orderID string) error
	CancelSession(id string) error

	RecordBooking(rec *BookingRecord) error
	GetBooking(id string) (*BookingRecord, error)
	ListBookings(userID string) ([]BookingRecord, error)
	SetScore(bookingID string, score scoring.MatchScoreForm) error

	Clear()
}

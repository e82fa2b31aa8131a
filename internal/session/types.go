package session

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/scoring"
)

// State is the lifecycle state of a booking session.
type State string

const (
	// StateOpen accepts edits to roster, equipment and payment method.
	StateOpen State = "OPEN"
	// StateSubmitting means a confirm is in flight. Edits and duplicate
	// confirms are rejected until the flight resolves.
	StateSubmitting State = "SUBMITTING"
	// StateAwaitingPayment means the booking was created and a gateway
	// order was handed off. The session resolves when payment settles.
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	// StateConfirmed is terminal: the booking is paid and recorded.
	StateConfirmed State = "CONFIRMED"
	// StateCancelled is terminal: the user abandoned the session.
	StateCancelled State = "CANCELLED"
	// StateFailed is terminal: payment was rejected and not retried.
	StateFailed State = "FAILED"
)

var (
	// ErrNotFound is returned when no session or booking has the given id.
	ErrNotFound = errors.New("session not found")
	// ErrStateConflict is returned when a guarded transition finds the
	// session in a different state than expected.
	ErrStateConflict = errors.New("session is not in the expected state")
)

// Session is one in-progress booking composition.
type Session struct {
	ID            string                `json:"id"`
	UserID        string                `json:"userId"`
	State         State                 `json:"state"`
	VenueID       string                `json:"venueId"`
	CourtID       string                `json:"courtId"`
	BookingDate   string                `json:"bookingDate"`
	Sport         scoring.Sport         `json:"game"`
	Slots         []string              `json:"bookingSlots"`
	Roster        booking.Roster        `json:"roster"`
	Pending       *PendingSeat          `json:"pending,omitempty"`
	Equipment     booking.Equipment     `json:"equipment"`
	PaymentMethod booking.PaymentMethod `json:"paymentMethod"`
	AskToJoin     bool                  `json:"askToJoin"`
	IsCompetitive bool                  `json:"isCompetitive"`
	SkillRequired float64               `json:"skillRequired"`
	TotalPrice    int64                 `json:"totalPrice"`
	TransactionID string                `json:"transactionId,omitempty"`
	OrderID       string                `json:"orderId,omitempty"`
	CreatedAt     int64                 `json:"createdAt"`
	UpdatedAt     int64                 `json:"updatedAt"`
}

// PendingSeat is a provisional seat claim layered over the roster while a
// join request is previewed. Previous holds whatever occupied the position
// before the claim so a cancel can restore it exactly.
type PendingSeat struct {
	Team     int           `json:"team"`
	Seat     int           `json:"seat"`
	Claimant booking.Seat  `json:"claimant"`
	Previous *booking.Seat `json:"previous"`
}

// BookingRecord is a confirmed booking as shown on the user's bookings list.
type BookingRecord struct {
	ID            string                  `json:"id"`
	SessionID     string                  `json:"sessionId"`
	UserID        string                  `json:"userId"`
	VenueName     string                  `json:"venueName"`
	CourtName     string                  `json:"courtName"`
	Sport         scoring.Sport           `json:"game"`
	BookingDate   string                  `json:"bookingDate"`
	Slots         []string                `json:"bookingSlots"`
	AmountPaid    int64                   `json:"amountPaid"`
	PaymentMethod booking.PaymentMethod   `json:"paymentMethod"`
	Score         *scoring.MatchScoreForm `json:"score,omitempty"`
	CreatedAt     int64                   `json:"createdAt"`
}

// store handles all database operations for booking sessions.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

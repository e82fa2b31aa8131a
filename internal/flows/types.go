package flows

import (
	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/metrics"
	"github.com/auspicious-soft/courtside/internal/pubsub"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
)

// Flows handles the business logic of the booking lifecycle.
type Flows struct {
	store    Store
	api      backend.BookingAPI
	catalog  Catalog
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}

// StartSessionParams carries everything needed to open a booking session.
type StartSessionParams struct {
	UserID        string
	VenueID       string
	CourtID       string
	BookingDate   string
	Sport         scoring.Sport
	Slots         []string
	TotalPrice    int64
	AskToJoin     bool
	IsCompetitive bool
	SkillRequired float64
}

// ConfirmResult reports the outcome of a confirm attempt. For a wallet-only
// payment the booking is settled immediately; for the gateway methods the
// caller receives an order to hand off and the session waits in
// AWAITING_PAYMENT.
type ConfirmResult struct {
	State         session.State `json:"state"`
	BookingID     string        `json:"bookingId,omitempty"`
	TransactionID string        `json:"transactionId"`
	OrderID       string        `json:"orderId,omitempty"`
	AmountDue     int64         `json:"amountDue"`
	WalletBalance int64         `json:"walletBalance"`
}

// JoinParams carries an open-match join request.
type JoinParams struct {
	UserID    string
	UserName  string
	BookingID string
	Team      int
	Seat      int
	Equipment booking.Equipment
}

// ValidationError is a pre-flight rejection. The message is surfaced to the
// user exactly as written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

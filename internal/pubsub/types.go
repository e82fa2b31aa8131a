package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventBookingConfirmed EventType = "booking-confirmed"
	EventPaymentSettled   EventType = "payment-settled"
	EventScoreUploaded    EventType = "score-uploaded"
	EventSpotFilled       EventType = "spot-filled"
)

// BookingConfirmedEvent announces a paid booking.
type BookingConfirmedEvent struct {
	BookingID   string `msgpack:"booking_id"`
	UserID      string `msgpack:"user_id"`
	VenueName   string `msgpack:"venue_name"`
	CourtName   string `msgpack:"court_name"`
	BookingDate string `msgpack:"booking_date"`
	AmountPaid  int64  `msgpack:"amount_paid"`
}

// PaymentSettledEvent announces a gateway payment that settled after the
// initial handoff.
type PaymentSettledEvent struct {
	TransactionID string `msgpack:"transaction_id"`
	OrderID       string `msgpack:"order_id"`
	Amount        int64  `msgpack:"amount"`
}

// ScoreUploadedEvent announces a validated score sheet.
type ScoreUploadedEvent struct {
	BookingID string `msgpack:"booking_id"`
	UserID    string `msgpack:"user_id"`
	Sport     string `msgpack:"game"`
}

// SpotFilledEvent announces an accepted open-match join.
type SpotFilledEvent struct {
	BookingID string `msgpack:"booking_id"`
	UserID    string `msgpack:"user_id"`
	Position  string `msgpack:"position"`
}

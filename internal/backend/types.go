package backend

import (
	"fmt"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/scoring"
)

// Venue is a bookable location as returned by the platform backend.
type Venue struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

// Slot is one bookable window on a court for a given date. Prices are in
// paise.
type Slot struct {
	StartTime    string `json:"startTime"`
	DurationMins int    `json:"duration"`
	Price        int64  `json:"price"`
}

// CourtAvailability is a court and its open slots for one date.
type CourtAvailability struct {
	CourtID   string       `json:"courtId"`
	CourtName string       `json:"courtName"`
	Sport     scoring.Sport `json:"game"`
	Slots     []Slot       `json:"slots"`
}

// BookCourtRequest creates a booking. BookingDate is the selected calendar
// day at UTC midnight, in RFC 3339. Team arrays are normalized per
// booking.TeamPayloads and never contain gaps.
type BookCourtRequest struct {
	BookingDate   string                `json:"bookingDate"`
	CourtID       string                `json:"courtId"`
	BookingSlots  []string              `json:"bookingSlots"`
	AskToJoin     bool                  `json:"askToJoin"`
	IsCompetitive bool                  `json:"isCompetitive"`
	SkillRequired float64               `json:"skillRequired"`
	Team1         []booking.PlayerEntry `json:"team1"`
	Team2         []booking.PlayerEntry `json:"team2"`
}

// BookCourtResponse carries the transaction reference consumed by the
// payment step.
type BookCourtResponse struct {
	TransactionID string `json:"transactionId"`
}

// PaymentRequest settles a booking transaction with the chosen method.
type PaymentRequest struct {
	TransactionID string                `json:"transactionId"`
	Method        booking.PaymentMethod `json:"method"`
}

// PaymentResponse reports the settlement outcome. For playcoins the booking
// is fully settled; for the gateway methods OrderID references the external
// payment order to hand off, with Amount the payable remainder.
type PaymentResponse struct {
	Settled bool   `json:"settled"`
	OrderID string `json:"orderId,omitempty"`
	Amount  int64  `json:"amount"`
}

// JoinMatchRequest asks to fill an open seat on an ask-to-join booking.
type JoinMatchRequest struct {
	BookingID         string `json:"bookingId"`
	RequestedPosition string `json:"requestedPosition"`
	RequestedTeam     string `json:"requestedTeam"`
	Rackets           int    `json:"rackets"`
	Balls             int    `json:"balls"`
}

// UploadScoreRequest submits the score sheet for a played booking. Sets are
// sent exactly as entered; the server re-validates them.
type UploadScoreRequest struct {
	BookingID string           `json:"bookingId"`
	Set1      scoring.SetScore `json:"set1"`
	Set2      scoring.SetScore `json:"set2"`
	Set3      scoring.SetScore `json:"set3"`
}

// UserProfile is the authenticated user's profile, including the wallet
// balance consumed by payment eligibility.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"fullName"`
	Image     string `json:"image"`
	PlayCoins int64  `json:"playCoins"`
}

// OpenMatch is an ask-to-join booking with its current roster.
type OpenMatch struct {
	BookingID   string         `json:"bookingId"`
	VenueName   string         `json:"venueName"`
	CourtName   string         `json:"courtName"`
	Sport       scoring.Sport  `json:"game"`
	BookingDate string         `json:"bookingDate"`
	Slots       []string       `json:"bookingSlots"`
	Competitive bool           `json:"isCompetitive"`
	Skill       float64        `json:"skillRequired"`
	Roster      booking.Roster `json:"roster"`
}

// StatusError is a server-rejected business error: a non-2xx response with a
// message body. The message is surfaced to the user verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

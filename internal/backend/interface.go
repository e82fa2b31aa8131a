package backend

import "context"

// BookingAPI defines the operations the orchestrator needs from the hosted
// booking backend. It exists so tests can substitute a mock.
type BookingAPI interface {
	GetVenues(ctx context.Context) ([]Venue, error)
	GetAvailability(ctx context.Context, venueID, date string) ([]CourtAvailability, error)
	BookCourt(ctx context.Context, req BookCourtRequest) (BookCourtResponse, error)
	CreatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error)
	JoinOpenMatch(ctx context.Context, req JoinMatchRequest) error
	UploadScore(ctx context.Context, req UploadScoreRequest) error
	GetUser(ctx context.Context, userID string) (UserProfile, error)
	GetOpenMatch(ctx context.Context, bookingID string) (OpenMatch, error)
}

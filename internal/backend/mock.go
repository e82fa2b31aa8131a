package backend

import (
	"context"
	"sync"
)

// Mock is a mock implementation of BookingAPI for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	GetVenuesFunc       func(ctx context.Context) ([]Venue, error)
	GetAvailabilityFunc func(ctx context.Context, venueID, date string) ([]CourtAvailability, error)
	BookCourtFunc       func(ctx context.Context, req BookCourtRequest) (BookCourtResponse, error)
	CreatePaymentFunc   func(ctx context.Context, req PaymentRequest) (PaymentResponse, error)
	JoinOpenMatchFunc   func(ctx context.Context, req JoinMatchRequest) error
	UploadScoreFunc     func(ctx context.Context, req UploadScoreRequest) error
	GetUserFunc         func(ctx context.Context, userID string) (UserProfile, error)
	GetOpenMatchFunc    func(ctx context.Context, bookingID string) (OpenMatch, error)

	// Call records
	BookCourtCalls     []BookCourtRequest
	CreatePaymentCalls []PaymentRequest
	JoinOpenMatchCalls []JoinMatchRequest
	UploadScoreCalls   []UploadScoreRequest
	GetUserCalls       []string
	GetOpenMatchCalls  []string
}

var _ BookingAPI = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookCourtCalls = nil
	m.CreatePaymentCalls = nil
	m.JoinOpenMatchCalls = nil
	m.UploadScoreCalls = nil
	m.GetUserCalls = nil
	m.GetOpenMatchCalls = nil
}

func (m *Mock) GetVenues(ctx context.Context) ([]Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetVenuesFunc != nil {
		return m.GetVenuesFunc(ctx)
	}
	return nil, nil
}

func (m *Mock) GetAvailability(ctx context.Context, venueID, date string) ([]CourtAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAvailabilityFunc != nil {
		return m.GetAvailabilityFunc(ctx, venueID, date)
	}
	return nil, nil
}

func (m *Mock) BookCourt(ctx context.Context, req BookCourtRequest) (BookCourtResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookCourtCalls = append(m.BookCourtCalls, req)
	if m.BookCourtFunc != nil {
		return m.BookCourtFunc(ctx, req)
	}
	return BookCourtResponse{TransactionID: "txn-mock"}, nil
}

func (m *Mock) CreatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePaymentCalls = append(m.CreatePaymentCalls, req)
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req)
	}
	return PaymentResponse{Settled: true}, nil
}

func (m *Mock) JoinOpenMatch(ctx context.Context, req JoinMatchRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JoinOpenMatchCalls = append(m.JoinOpenMatchCalls, req)
	if m.JoinOpenMatchFunc != nil {
		return m.JoinOpenMatchFunc(ctx, req)
	}
	return nil
}

func (m *Mock) UploadScore(ctx context.Context, req UploadScoreRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadScoreCalls = append(m.UploadScoreCalls, req)
	if m.UploadScoreFunc != nil {
		return m.UploadScoreFunc(ctx, req)
	}
	return nil
}

func (m *Mock) GetUser(ctx context.Context, userID string) (UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUserCalls = append(m.GetUserCalls, userID)
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return UserProfile{ID: userID}, nil
}

func (m *Mock) GetOpenMatch(ctx context.Context, bookingID string) (OpenMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetOpenMatchCalls = append(m.GetOpenMatchCalls, bookingID)
	if m.GetOpenMatchFunc != nil {
		return m.GetOpenMatchFunc(ctx, bookingID)
	}
	return OpenMatch{BookingID: bookingID}, nil
}

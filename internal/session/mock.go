package session

import (
	"sync"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/scoring"
)

// MockStore is a mock implementation of the SessionStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateSessionFunc         func(sess *Session) error
	GetSessionFunc            func(id string) (*Session, error)
	GetOpenSessionForUserFunc func(userID string) (*Session, error)
	AssignSeatFunc            func(id string, team, seat int, player booking.Seat) error
	ClearSeatFunc             func(id string, team, seat int) error
	VacateSeatFunc            func(id string, team, seat int) error
	SetPendingSeatFunc        func(id string, team, seat int, claimant booking.Seat) error
	RollbackPendingSeatFunc   func(id string) error
	CommitPendingSeatFunc     func(id string) error
	SetEquipmentFunc          func(id string, eq booking.Equipment) error
	SetPaymentMethodFunc      func(id string, m booking.PaymentMethod) error
	SetTotalPriceFunc         func(id string, total int64) error
	TransitionStateFunc       func(id string, from, to State) error
	SetSubmissionFunc         func(id, transactionID, orderID string) error
	CancelSessionFunc         func(id string) error
	RecordBookingFunc         func(rec *BookingRecord) error
	GetBookingFunc            func(id string) (*BookingRecord, error)
	ListBookingsFunc          func(userID string) ([]BookingRecord, error)
	SetScoreFunc              func(bookingID string, score scoring.MatchScoreForm) error

	// Call records
	CreateSessionCalls   []*Session
	TransitionStateCalls []struct {
		ID   string
		From State
		To   State
	}
	SetSubmissionCalls []struct {
		ID            string
		TransactionID string
		OrderID       string
	}
	CancelSessionCalls       []string
	RollbackPendingSeatCalls []string
	CommitPendingSeatCalls   []string
	RecordBookingCalls       []*BookingRecord
	SetScoreCalls            []struct {
		BookingID string
		Score     scoring.MatchScoreForm
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateSessionCalls = nil
	m.TransitionStateCalls = nil
	m.SetSubmissionCalls = nil
	m.CancelSessionCalls = nil
	m.RollbackPendingSeatCalls = nil
	m.CommitPendingSeatCalls = nil
	m.RecordBookingCalls = nil
	m.SetScoreCalls = nil
}

func (m *MockStore) CreateSession(sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateSessionCalls = append(m.CreateSessionCalls, sess)
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(sess)
	}
	return nil
}

func (m *MockStore) GetSession(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetOpenSessionForUser(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetOpenSessionForUserFunc != nil {
		return m.GetOpenSessionForUserFunc(userID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) AssignSeat(id string, team, seat int, player booking.Seat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AssignSeatFunc != nil {
		return m.AssignSeatFunc(id, team, seat, player)
	}
	return nil
}

func (m *MockStore) ClearSeat(id string, team, seat int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearSeatFunc != nil {
		return m.ClearSeatFunc(id, team, seat)
	}
	return nil
}

func (m *MockStore) VacateSeat(id string, team, seat int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.VacateSeatFunc != nil {
		return m.VacateSeatFunc(id, team, seat)
	}
	return nil
}

func (m *MockStore) SetPendingSeat(id string, team, seat int, claimant booking.Seat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetPendingSeatFunc != nil {
		return m.SetPendingSeatFunc(id, team, seat, claimant)
	}
	return nil
}

func (m *MockStore) RollbackPendingSeat(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RollbackPendingSeatCalls = append(m.RollbackPendingSeatCalls, id)
	if m.RollbackPendingSeatFunc != nil {
		return m.RollbackPendingSeatFunc(id)
	}
	return nil
}

func (m *MockStore) CommitPendingSeat(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommitPendingSeatCalls = append(m.CommitPendingSeatCalls, id)
	if m.CommitPendingSeatFunc != nil {
		return m.CommitPendingSeatFunc(id)
	}
	return nil
}

func (m *MockStore) SetEquipment(id string, eq booking.Equipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetEquipmentFunc != nil {
		return m.SetEquipmentFunc(id, eq)
	}
	return nil
}

func (m *MockStore) SetPaymentMethod(id string, method booking.PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetPaymentMethodFunc != nil {
		return m.SetPaymentMethodFunc(id, method)
	}
	return nil
}

func (m *MockStore) SetTotalPrice(id string, total int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetTotalPriceFunc != nil {
		return m.SetTotalPriceFunc(id, total)
	}
	return nil
}

func (m *MockStore) TransitionState(id string, from, to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TransitionStateCalls = append(m.TransitionStateCalls, struct {
		ID   string
		From State
		To   State
	}{id, from, to})
	if m.TransitionStateFunc != nil {
		return m.TransitionStateFunc(id, from, to)
	}
	return nil
}

func (m *MockStore) SetSubmission(id, transactionID, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetSubmissionCalls = append(m.SetSubmissionCalls, struct {
		ID            string
		TransactionID string
		OrderID       string
	}{id, transactionID, orderID})
	if m.SetSubmissionFunc != nil {
		return m.SetSubmissionFunc(id, transactionID, orderID)
	}
	return nil
}

func (m *MockStore) CancelSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelSessionCalls = append(m.CancelSessionCalls, id)
	if m.CancelSessionFunc != nil {
		return m.CancelSessionFunc(id)
	}
	return nil
}

func (m *MockStore) RecordBooking(rec *BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordBookingCalls = append(m.RecordBookingCalls, rec)
	if m.RecordBookingFunc != nil {
		return m.RecordBookingFunc(rec)
	}
	return nil
}

func (m *MockStore) GetBooking(id string) (*BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListBookings(userID string) ([]BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListBookingsFunc != nil {
		return m.ListBookingsFunc(userID)
	}
	return nil, nil
}

func (m *MockStore) SetScore(bookingID string, score scoring.MatchScoreForm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetScoreCalls = append(m.SetScoreCalls, struct {
		BookingID string
		Score     scoring.MatchScoreForm
	}{bookingID, score})
	if m.SetScoreFunc != nil {
		return m.SetScoreFunc(bookingID, score)
	}
	return nil
}

func (m *MockStore) Clear() {}

package notifier

import (
	"sync"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
)

// MockNotifier is a mock implementation of the Notifier interface for
// testing. It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendBookingConfirmationFunc func(rec *session.BookingRecord, dryRun bool) error
	SendOpenSpotInviteFunc      func(match *backend.OpenMatch, dryRun bool) error
	SendScoreUploadedFunc       func(rec *session.BookingRecord, score scoring.MatchScoreForm, dryRun bool) error

	// Call records
	SendBookingConfirmationCalls []*session.BookingRecord
	SendOpenSpotInviteCalls      []*backend.OpenMatch
	SendScoreUploadedCalls       []struct {
		Record *session.BookingRecord
		Score  scoring.MatchScoreForm
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBookingConfirmationCalls = nil
	m.SendOpenSpotInviteCalls = nil
	m.SendScoreUploadedCalls = nil
}

func (m *MockNotifier) SendBookingConfirmation(rec *session.BookingRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBookingConfirmationCalls = append(m.SendBookingConfirmationCalls, rec)
	if m.SendBookingConfirmationFunc != nil {
		return m.SendBookingConfirmationFunc(rec, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendOpenSpotInvite(match *backend.OpenMatch, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendOpenSpotInviteCalls = append(m.SendOpenSpotInviteCalls, match)
	if m.SendOpenSpotInviteFunc != nil {
		return m.SendOpenSpotInviteFunc(match, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendScoreUploaded(rec *session.BookingRecord, score scoring.MatchScoreForm, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreUploadedCalls = append(m.SendScoreUploadedCalls, struct {
		Record *session.BookingRecord
		Score  scoring.MatchScoreForm
	}{rec, score})
	if m.SendScoreUploadedFunc != nil {
		return m.SendScoreUploadedFunc(rec, score, dryRun)
	}
	return nil
}

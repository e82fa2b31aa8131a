package catalog

import (
	"sync"

	"github.com/auspicious-soft/courtside/internal/backend"
)

// MockStore is a mock implementation of the CatalogStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertVenuesFunc       func(venues []backend.Venue) error
	ListVenuesFunc         func() ([]backend.Venue, error)
	GetVenueFunc           func(venueID string) (*backend.Venue, error)
	UpsertAvailabilityFunc func(venueID, day string, courts []backend.CourtAvailability) error
	GetAvailabilityFunc    func(venueID, day string) ([]backend.CourtAvailability, error)

	// Call records
	UpsertVenuesCalls       [][]backend.Venue
	UpsertAvailabilityCalls []struct {
		VenueID string
		Day     string
		Courts  []backend.CourtAvailability
	}
	GetAvailabilityCalls []struct {
		VenueID string
		Day     string
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
	m.UpsertVenuesCalls = nil
	m.UpsertAvailabilityCalls = nil
	m.GetAvailabilityCalls = nil
}

func (m *MockStore) UpsertVenues(venues []backend.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertVenuesCalls = append(m.UpsertVenuesCalls, venues)
	if m.UpsertVenuesFunc != nil {
		return m.UpsertVenuesFunc(venues)
	}
	return nil
}

func (m *MockStore) ListVenues() ([]backend.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListVenuesFunc != nil {
		return m.ListVenuesFunc()
	}
	return nil, nil
}

func (m *MockStore) GetVenue(venueID string) (*backend.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetVenueFunc != nil {
		return m.GetVenueFunc(venueID)
	}
	return nil, nil
}

func (m *MockStore) UpsertAvailability(venueID, day string, courts []backend.CourtAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertAvailabilityCalls = append(m.UpsertAvailabilityCalls, struct {
		VenueID string
		Day     string
		Courts  []backend.CourtAvailability
	}{venueID, day, courts})
	if m.UpsertAvailabilityFunc != nil {
		return m.UpsertAvailabilityFunc(venueID, day, courts)
	}
	return nil
}

func (m *MockStore) GetAvailability(venueID, day string) ([]backend.CourtAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAvailabilityCalls = append(m.GetAvailabilityCalls, struct {
		VenueID string
		Day     string
	}{venueID, day})
	if m.GetAvailabilityFunc != nil {
		return m.GetAvailabilityFunc(venueID, day)
	}
	return nil, nil
}

func (m *MockStore) Clear() {}

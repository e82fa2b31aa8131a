package catalog

import "github.com/auspicious-soft/courtside/internal/backend"

// CatalogStore defines the interface for the cached venue catalog. The cache
// is refreshed from the backend and served to browsing clients without a
// round trip per request.
type CatalogStore interface {
	UpsertVenues(venues []backend.Venue) error
	ListVenues() ([]backend.Venue, error)
	GetVenue(venueID string) (*backend.Venue, error)
	UpsertAvailability(venueID, day string, courts []backend.CourtAvailability) error
	GetAvailability(venueID, day string) ([]backend.CourtAvailability, error)
	Clear()
}

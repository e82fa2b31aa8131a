package catalog_test

import (
	"database/sql"
	"testing"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/catalog"
	"github.com/auspicious-soft/courtside/internal/database"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (catalog.CatalogStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := catalog.New(db)
	return store, db, dbTeardown
}

func TestUpsertAndListVenues(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.UpsertVenues([]backend.Venue{
		{ID: "v1", Name: "Riverside Padel", City: "Pune"},
		{ID: "v2", Name: "Arena One", City: "Mumbai"},
	})
	require.NoError(t, err)

	venues, err := store.ListVenues()
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Arena One", venues[0].Name, "venues are ordered by name")

	// A second upsert updates in place rather than duplicating.
	err = store.UpsertVenues([]backend.Venue{{ID: "v1", Name: "Riverside Padel", City: "Pune", Address: "Baner Road"}})
	require.NoError(t, err)

	venues, err = store.ListVenues()
	require.NoError(t, err)
	require.Len(t, venues, 2)

	v, err := store.GetVenue("v1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Baner Road", v.Address)

	missing, err := store.GetVenue("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpsertAvailability_ReplacesSlotsForDay(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertVenues([]backend.Venue{{ID: "v1", Name: "Riverside Padel"}}))

	err := store.UpsertAvailability("v1", "2026-09-01", []backend.CourtAvailability{
		{
			CourtID:   "c1",
			CourtName: "Court 1",
			Sport:     scoring.SportPadel,
			Slots: []backend.Slot{
				{StartTime: "18:00", DurationMins: 30, Price: 40000},
				{StartTime: "18:30", DurationMins: 30, Price: 40000},
			},
		},
	})
	require.NoError(t, err)

	// A refresh with fewer slots drops the taken ones from the cache.
	err = store.UpsertAvailability("v1", "2026-09-01", []backend.CourtAvailability{
		{
			CourtID:   "c1",
			CourtName: "Court 1",
			Sport:     scoring.SportPadel,
			Slots:     []backend.Slot{{StartTime: "18:30", DurationMins: 30, Price: 40000}},
		},
	})
	require.NoError(t, err)

	courts, err := store.GetAvailability("v1", "2026-09-01")
	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, scoring.SportPadel, courts[0].Sport)
	require.Len(t, courts[0].Slots, 1)
	assert.Equal(t, "18:30", courts[0].Slots[0].StartTime)
}

func TestGetAvailability_OtherDayUnaffected(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertVenues([]backend.Venue{{ID: "v1", Name: "Riverside Padel"}}))

	court := backend.CourtAvailability{
		CourtID:   "c1",
		CourtName: "Court 1",
		Sport:     scoring.SportPickleball,
		Slots:     []backend.Slot{{StartTime: "07:00", DurationMins: 60, Price: 60000}},
	}
	require.NoError(t, store.UpsertAvailability("v1", "2026-09-01", []backend.CourtAvailability{court}))
	require.NoError(t, store.UpsertAvailability("v1", "2026-09-02", []backend.CourtAvailability{court}))

	// Replacing day one leaves day two intact.
	emptied := court
	emptied.Slots = nil
	require.NoError(t, store.UpsertAvailability("v1", "2026-09-01", []backend.CourtAvailability{emptied}))

	dayOne, err := store.GetAvailability("v1", "2026-09-01")
	require.NoError(t, err)
	require.Len(t, dayOne, 1)
	assert.Empty(t, dayOne[0].Slots)

	dayTwo, err := store.GetAvailability("v1", "2026-09-02")
	require.NoError(t, err)
	require.Len(t, dayTwo, 1)
	assert.Len(t, dayTwo[0].Slots, 1)
}

func TestClear(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertVenues([]backend.Venue{{ID: "v1", Name: "Riverside Padel"}}))
	store.Clear()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM venues").Scan(&count))
	assert.Zero(t, count)
}

package session_test

import (
	"testing"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/database"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (session.SessionStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return session.New(db), dbTeardown
}

func newTestSession(id string) *session.Session {
	return &session.Session{
		ID:          id,
		UserID:      "user-1",
		VenueID:     "v1",
		CourtID:     "c1",
		BookingDate: "2026-09-01T00:00:00Z",
		Sport:       scoring.SportPadel,
		Slots:       []string{"18:00", "18:30"},
		TotalPrice:  80000,
	}
}

func TestCreateAndGetSession(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	sess := newTestSession("s1")
	sess.Equipment.Rackets = booking.Select(2)
	require.NoError(t, store.CreateSession(sess))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, session.StateOpen, got.State)
	assert.Equal(t, []string{"18:00", "18:30"}, got.Slots)
	assert.Equal(t, int64(80000), got.TotalPrice)
	assert.True(t, got.Equipment.Rackets.Selected())
	assert.Equal(t, 2, got.Equipment.Rackets.Count())
	assert.False(t, got.Equipment.Balls.Selected())

	_, err = store.GetSession("missing")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGetOpenSessionForUser(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	require.NoError(t, store.CancelSession("s1"))
	require.NoError(t, store.CreateSession(newTestSession("s2")))

	got, err := store.GetOpenSessionForUser("user-1")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.ID, "cancelled sessions are not returned")

	_, err = store.GetOpenSessionForUser("user-2")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSeatAssignment(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))

	me := booking.Seat{ID: "user-1", Name: "You", Type: booking.SeatUser}
	guest := booking.Seat{ID: "g1", Name: "Guest 1", Type: booking.SeatGuest}

	require.NoError(t, store.AssignSeat("s1", 1, 0, me))
	require.NoError(t, store.AssignSeat("s1", 2, 1, guest))

	err := store.AssignSeat("s1", 1, 0, guest)
	assert.ErrorIs(t, err, booking.ErrSeatTaken)

	err = store.AssignSeat("s1", 3, 0, guest)
	assert.ErrorIs(t, err, booking.ErrInvalidPosition)

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.Roster.At(1, 0).ID)
	assert.Equal(t, "g1", got.Roster.At(2, 1).ID)
	assert.Equal(t, 2, got.Roster.OpenSpots(false))

	// Clearing frees the seat for reassignment.
	require.NoError(t, store.ClearSeat("s1", 1, 0))
	require.NoError(t, store.AssignSeat("s1", 1, 0, guest))
}

func TestVacateSeat_LeavesPlaceholder(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	require.NoError(t, store.AssignSeat("s1", 1, 1, booking.Seat{ID: "p2", Name: "P2", Type: booking.SeatUser}))
	require.NoError(t, store.VacateSeat("s1", 1, 1))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	seat := got.Roster.At(1, 1)
	require.NotNil(t, seat, "a vacated seat keeps its placeholder")
	assert.Equal(t, booking.SeatOpen, seat.Type)
	assert.False(t, seat.Occupied())
}

func TestPendingSeat_RollbackRestoresPrevious(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	require.NoError(t, store.AssignSeat("s1", 2, 0, booking.Seat{ID: "p", Name: "P", Type: booking.SeatUser}))
	require.NoError(t, store.VacateSeat("s1", 2, 0))

	claimant := booking.Seat{ID: "user-1", Name: "You", Type: booking.SeatUser}
	require.NoError(t, store.SetPendingSeat("s1", 2, 0, claimant))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	require.NotNil(t, got.Pending)
	assert.Equal(t, "user-1", got.Roster.At(2, 0).ID)
	assert.Equal(t, 3, got.Roster.OpenSpots(false))

	// Only one claim at a time.
	err = store.SetPendingSeat("s1", 1, 0, claimant)
	assert.ErrorIs(t, err, session.ErrStateConflict)

	require.NoError(t, store.RollbackPendingSeat("s1"))

	got, err = store.GetSession("s1")
	require.NoError(t, err)
	assert.Nil(t, got.Pending)
	seat := got.Roster.At(2, 0)
	require.NotNil(t, seat, "rollback restores the vacated placeholder, not nil")
	assert.Equal(t, booking.SeatOpen, seat.Type)

	// Rolling back with nothing pending is a no-op.
	assert.NoError(t, store.RollbackPendingSeat("s1"))
}

func TestPendingSeat_Commit(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	claimant := booking.Seat{ID: "user-1", Name: "You", Type: booking.SeatUser}
	require.NoError(t, store.SetPendingSeat("s1", 1, 0, claimant))
	require.NoError(t, store.CommitPendingSeat("s1"))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Nil(t, got.Pending)
	assert.Equal(t, "user-1", got.Roster.At(1, 0).ID)

	err = store.CommitPendingSeat("s1")
	assert.ErrorIs(t, err, session.ErrStateConflict)
}

func TestTransitionState_Guarded(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))

	require.NoError(t, store.TransitionState("s1", session.StateOpen, session.StateSubmitting))

	// A second confirm loses the race and is rejected.
	err := store.TransitionState("s1", session.StateOpen, session.StateSubmitting)
	assert.ErrorIs(t, err, session.ErrStateConflict)

	err = store.TransitionState("missing", session.StateOpen, session.StateSubmitting)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Edits are rejected while a confirm is in flight.
	err = store.SetPaymentMethod("s1", booking.MethodRazorpay)
	assert.ErrorIs(t, err, session.ErrStateConflict)
	err = store.AssignSeat("s1", 1, 0, booking.Seat{ID: "x", Type: booking.SeatUser})
	assert.ErrorIs(t, err, session.ErrStateConflict)
}

func TestSetPaymentMethodAndEquipment(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	require.NoError(t, store.SetPaymentMethod("s1", booking.MethodPlayCoins))

	eq := booking.Equipment{Rackets: booking.Select(1)}
	require.NoError(t, store.SetEquipment("s1", eq))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, booking.MethodPlayCoins, got.PaymentMethod)
	rackets, balls := got.Equipment.Counts()
	assert.Equal(t, 1, rackets)
	assert.Zero(t, balls)
}

func TestCancelSession(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.CreateSession(newTestSession("s1")))
	require.NoError(t, store.SetPendingSeat("s1", 1, 1, booking.Seat{ID: "user-1", Type: booking.SeatUser}))
	require.NoError(t, store.CancelSession("s1"))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, session.StateCancelled, got.State)
	assert.Nil(t, got.Pending)
	assert.Nil(t, got.Roster.At(1, 1), "the pending claim was rolled back")

	err = store.CancelSession("s1")
	assert.ErrorIs(t, err, session.ErrStateConflict, "terminal sessions cannot be cancelled again")
}

func TestBookingRecords(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	rec := &session.BookingRecord{
		ID:            "b1",
		SessionID:     "s1",
		UserID:        "user-1",
		VenueName:     "Riverside Padel",
		CourtName:     "Court 1",
		Sport:         scoring.SportPadel,
		BookingDate:   "2026-09-01T00:00:00Z",
		Slots:         []string{"18:00"},
		AmountPaid:    40000,
		PaymentMethod: booking.MethodPlayCoins,
	}
	require.NoError(t, store.RecordBooking(rec))

	list, err := store.ListBookings("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Riverside Padel", list[0].VenueName)
	assert.Nil(t, list[0].Score)

	score := scoring.MatchScoreForm{
		Set1: scoring.SetScore{TeamA: "6", TeamB: "4"},
	}
	require.NoError(t, store.SetScore("b1", score))

	got, err := store.GetBooking("b1")
	require.NoError(t, err)
	require.NotNil(t, got.Score)
	assert.Equal(t, "6", got.Score.Set1.TeamA)

	err = store.SetScore("missing", score)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

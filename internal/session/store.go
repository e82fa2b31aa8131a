package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/charmbracelet/log"
)

// New creates a new SessionStore.
func New(db *sql.DB) SessionStore {
	return &store{
		db: db,
	}
}

// CreateSession persists a fresh session in the OPEN state.
func (s *store) CreateSession(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.State == "" {
		sess.State = StateOpen
	}
	now := time.Now().Unix()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	rosterJSON, err := json.Marshal(sess.Roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	slotsJSON, err := json.Marshal(sess.Slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %w", err)
	}

	rackets, balls := sess.Equipment.Counts()
	_, err = s.db.Exec(`
		INSERT INTO booking_sessions (
			id, user_id, state, venue_id, court_id, booking_date, game,
			slots_json, roster_json, pending_json,
			rackets_selected, rackets_count, balls_selected, balls_count,
			payment_method, ask_to_join, is_competitive, skill_required,
			total_price, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		sess.ID, sess.UserID, sess.State, sess.VenueID, sess.CourtID, sess.BookingDate, sess.Sport,
		string(slotsJSON), string(rosterJSON),
		sess.Equipment.Rackets.Selected(), rackets, sess.Equipment.Balls.Selected(), balls,
		sess.PaymentMethod, sess.AskToJoin, sess.IsCompetitive, sess.SkillRequired,
		sess.TotalPrice, sess.CreatedAt, sess.UpdatedAt,
	)
	return err
}

// GetSession retrieves one session, or ErrNotFound.
func (s *store) GetSession(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getSessionLocked(id)
}

// GetOpenSessionForUser returns the user's editable session, if any. Only one
// session per user can be in a non-terminal state at a time.
func (s *store) GetOpenSessionForUser(userID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(sessionSelect+`
		WHERE user_id = ? AND state IN (?, ?, ?)
		ORDER BY created_at DESC LIMIT 1
	`, userID, StateOpen, StateSubmitting, StateAwaitingPayment)
	sess, err := s.scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return sess, err
}

const sessionSelect = `
	SELECT id, user_id, state, venue_id, court_id, booking_date, game,
		slots_json, roster_json, pending_json,
		rackets_selected, rackets_count, balls_selected, balls_count,
		payment_method, ask_to_join, is_competitive, skill_required,
		total_price, transaction_id, order_id, created_at, updated_at
	FROM booking_sessions
`

func (s *store) getSessionLocked(id string) (*Session, error) {
	row := s.db.QueryRow(sessionSelect+` WHERE id = ?`, id)
	sess, err := s.scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return sess, err
}

// scanSession is a helper function to scan a single session row.
func (s *store) scanSession(scanner interface{ Scan(...any) error }) (*Session, error) {
	var sess Session
	var slotsJSON, rosterJSON string
	var pendingJSON, transactionID, orderID sql.NullString
	var racketsSelected, ballsSelected bool
	var racketsCount, ballsCount int

	err := scanner.Scan(
		&sess.ID, &sess.UserID, &sess.State, &sess.VenueID, &sess.CourtID, &sess.BookingDate, &sess.Sport,
		&slotsJSON, &rosterJSON, &pendingJSON,
		&racketsSelected, &racketsCount, &ballsSelected, &ballsCount,
		&sess.PaymentMethod, &sess.AskToJoin, &sess.IsCompetitive, &sess.SkillRequired,
		&sess.TotalPrice, &transactionID, &orderID, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(slotsJSON), &sess.Slots); err != nil {
		log.Error("Failed to unmarshal slots_json", "error", err, "sessionID", sess.ID)
	}
	if err := json.Unmarshal([]byte(rosterJSON), &sess.Roster); err != nil {
		log.Error("Failed to unmarshal roster_json", "error", err, "sessionID", sess.ID)
	}
	if pendingJSON.Valid && pendingJSON.String != "" {
		var pending PendingSeat
		if err := json.Unmarshal([]byte(pendingJSON.String), &pending); err != nil {
			log.Error("Failed to unmarshal pending_json", "error", err, "sessionID", sess.ID)
		} else {
			sess.Pending = &pending
		}
	}

	if racketsSelected {
		sess.Equipment.Rackets = booking.Select(racketsCount)
	}
	if ballsSelected {
		sess.Equipment.Balls = booking.Select(ballsCount)
	}
	sess.TransactionID = transactionID.String
	sess.OrderID = orderID.String
	return &sess, nil
}

// mutateRoster loads the session, applies fn to its roster and persists the
// result. Edits are only allowed while the session is OPEN.
func (s *store) mutateRoster(id string, fn func(r *booking.Roster) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSessionLocked(id)
	if err != nil {
		return err
	}
	if sess.State != StateOpen {
		return ErrStateConflict
	}
	if err := fn(&sess.Roster); err != nil {
		return err
	}
	return s.saveRosterLocked(id, sess.Roster)
}

func (s *store) saveRosterLocked(id string, r booking.Roster) error {
	rosterJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE booking_sessions SET roster_json = ?, updated_at = ? WHERE id = ?`,
		string(rosterJSON), time.Now().Unix(), id,
	)
	return err
}

// AssignSeat places a player into an open seat.
func (s *store) AssignSeat(id string, team, seat int, player booking.Seat) error {
	return s.mutateRoster(id, func(r *booking.Roster) error {
		return r.Assign(team, seat, player)
	})
}

// ClearSeat empties a seat in the creation flow.
func (s *store) ClearSeat(id string, team, seat int) error {
	return s.mutateRoster(id, func(r *booking.Roster) error {
		return r.Clear(team, seat)
	})
}

// VacateSeat frees a seat on a session backed by an existing match record,
// leaving an "available" placeholder.
func (s *store) VacateSeat(id string, team, seat int) error {
	return s.mutateRoster(id, func(r *booking.Roster) error {
		return r.Vacate(team, seat)
	})
}

// SetPendingSeat provisionally claims a seat. The previous occupant is
// remembered so a rollback can restore it. Only one claim can be pending at
// a time.
func (s *store) SetPendingSeat(id string, team, seat int, claimant booking.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSessionLocked(id)
	if err != nil {
		return err
	}
	if sess.State != StateOpen || sess.Pending != nil {
		return ErrStateConflict
	}

	previous := sess.Roster.At(team, seat)
	if previous.Occupied() {
		return booking.ErrSeatTaken
	}
	pending := PendingSeat{Team: team, Seat: seat, Claimant: claimant, Previous: previous}

	if err := sess.Roster.Assign(team, seat, claimant); err != nil {
		return err
	}
	return s.savePendingLocked(id, sess.Roster, &pending)
}

// RollbackPendingSeat undoes the provisional claim, restoring whatever held
// the seat before. A session with no pending claim is left untouched.
func (s *store) RollbackPendingSeat(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSessionLocked(id)
	if err != nil {
		return err
	}
	if sess.Pending == nil {
		return nil
	}
	s.restorePendingLocked(sess)
	return s.savePendingLocked(id, sess.Roster, nil)
}

// CommitPendingSeat makes the provisional claim permanent.
func (s *store) CommitPendingSeat(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSessionLocked(id)
	if err != nil {
		return err
	}
	if sess.Pending == nil {
		return ErrStateConflict
	}
	return s.savePendingLocked(id, sess.Roster, nil)
}

func (s *store) restorePendingLocked(sess *Session) {
	p := sess.Pending
	if t := sess.Roster.At(p.Team, p.Seat); t != nil {
		if p.Previous == nil {
			sess.Roster.Clear(p.Team, p.Seat)
		} else if p.Previous.Type == booking.SeatOpen {
			sess.Roster.Vacate(p.Team, p.Seat)
		}
	}
}

func (s *store) savePendingLocked(id string, r booking.Roster, pending *PendingSeat) error {
	rosterJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	var pendingJSON any
	if pending != nil {
		raw, err := json.Marshal(pending)
		if err != nil {
			return fmt.Errorf("failed to encode pending seat: %w", err)
		}
		pendingJSON = string(raw)
	}
	_, err = s.db.Exec(
		`UPDATE booking_sessions SET roster_json = ?, pending_json = ?, updated_at = ? WHERE id = ?`,
		string(rosterJSON), pendingJSON, time.Now().Unix(), id,
	)
	return err
}

// SetEquipment replaces the session's equipment selections.
func (s *store) SetEquipment(id string, eq booking.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rackets, balls := eq.Counts()
	res, err := s.db.Exec(`
		UPDATE booking_sessions
		SET rackets_selected = ?, rackets_count = ?, balls_selected = ?, balls_count = ?, updated_at = ?
		WHERE id = ? AND state = ?
	`, eq.Rackets.Selected(), rackets, eq.Balls.Selected(), balls, time.Now().Unix(), id, StateOpen)
	if err != nil {
		return err
	}
	return s.requireRow(res, id)
}

// SetPaymentMethod records the chosen payment method.
func (s *store) SetPaymentMethod(id string, m booking.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE booking_sessions SET payment_method = ?, updated_at = ? WHERE id = ? AND state = ?`,
		m, time.Now().Unix(), id, StateOpen,
	)
	if err != nil {
		return err
	}
	return s.requireRow(res, id)
}

// SetTotalPrice updates the payable total after slot selection changes.
func (s *store) SetTotalPrice(id string, total int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE booking_sessions SET total_price = ?, updated_at = ? WHERE id = ? AND state = ?`,
		total, time.Now().Unix(), id, StateOpen,
	)
	if err != nil {
		return err
	}
	return s.requireRow(res, id)
}

// TransitionState moves the session from one state to another. The
// transition only succeeds if the session is still in the expected state,
// which makes it the re-entry guard for the confirm flow.
func (s *store) TransitionState(id string, from, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE booking_sessions SET state = ?, updated_at = ? WHERE id = ? AND state = ?`,
		to, time.Now().Unix(), id, from,
	)
	if err != nil {
		return err
	}
	return s.requireRow(res, id)
}

// requireRow translates a zero-row UPDATE into the right error: a missing
// session is ErrNotFound, an existing one in the wrong state is
// ErrStateConflict.
func (s *store) requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var exists int
	if err := s.db.QueryRow(`SELECT 1 FROM booking_sessions WHERE id = ?`, id).Scan(&exists); err == sql.ErrNoRows {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return ErrStateConflict
}

// SetSubmission records the backend references produced by the confirm call.
func (s *store) SetSubmission(id, transactionID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`UPDATE booking_sessions SET transaction_id = ?, order_id = ?, updated_at = ? WHERE id = ?`,
		transactionID, orderID, time.Now().Unix(), id,
	)
	return err
}

// CancelSession abandons the session, rolling back any pending seat claim.
func (s *store) CancelSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSessionLocked(id)
	if err != nil {
		return err
	}
	switch sess.State {
	case StateConfirmed, StateCancelled, StateFailed:
		return ErrStateConflict
	}
	if sess.Pending != nil {
		s.restorePendingLocked(sess)
		if err := s.savePendingLocked(id, sess.Roster, nil); err != nil {
			return err
		}
	}
	_, err = s.db.Exec(
		`UPDATE booking_sessions SET state = ?, updated_at = ? WHERE id = ?`,
		StateCancelled, time.Now().Unix(), id,
	)
	return err
}

// RecordBooking persists a confirmed booking for the bookings list.
func (s *store) RecordBooking(rec *BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	slotsJSON, err := json.Marshal(rec.Slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO bookings (id, session_id, user_id, venue_name, court_name, game, booking_date, slots_json, amount_paid, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SessionID, rec.UserID, rec.VenueName, rec.CourtName, rec.Sport, rec.BookingDate, string(slotsJSON), rec.AmountPaid, rec.PaymentMethod, rec.CreatedAt)
	return err
}

// GetBooking retrieves one confirmed booking, or ErrNotFound.
func (s *store) GetBooking(id string) (*BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(bookingSelect+` WHERE id = ?`, id)
	rec, err := s.scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return rec, err
}

const bookingSelect = `
	SELECT id, session_id, user_id, venue_name, court_name, game, booking_date, slots_json, amount_paid, payment_method, score_json, created_at
	FROM bookings
`

// ListBookings returns the user's confirmed bookings, newest first.
func (s *store) ListBookings(userID string) ([]BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(bookingSelect+` WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []BookingRecord
	for rows.Next() {
		rec, err := s.scanBooking(rows)
		if err != nil {
			log.Error("Failed to scan booking row", "error", err)
			continue
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *store) scanBooking(scanner interface{ Scan(...any) error }) (*BookingRecord, error) {
	var rec BookingRecord
	var slotsJSON string
	var scoreJSON sql.NullString

	err := scanner.Scan(
		&rec.ID, &rec.SessionID, &rec.UserID, &rec.VenueName, &rec.CourtName, &rec.Sport,
		&rec.BookingDate, &slotsJSON, &rec.AmountPaid, &rec.PaymentMethod, &scoreJSON, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(slotsJSON), &rec.Slots); err != nil {
		log.Error("Failed to unmarshal slots_json", "error", err, "bookingID", rec.ID)
	}
	if scoreJSON.Valid && scoreJSON.String != "" {
		var score scoring.MatchScoreForm
		if err := json.Unmarshal([]byte(scoreJSON.String), &score); err != nil {
			log.Error("Failed to unmarshal score_json", "error", err, "bookingID", rec.ID)
		} else {
			rec.Score = &score
		}
	}
	return &rec, nil
}

// SetScore attaches a validated score sheet to a confirmed booking.
func (s *store) SetScore(bookingID string, score scoring.MatchScoreForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	res, err := s.db.Exec(`UPDATE bookings SET score_json = ? WHERE id = ?`, string(scoreJSON), bookingID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear wipes all sessions and bookings. Used by tests and the admin clear
// endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"bookings", "booking_sessions"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
		}
	}
}

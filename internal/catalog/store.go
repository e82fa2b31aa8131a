package catalog

import (
	"database/sql"
	"time"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/charmbracelet/log"
)

// New creates a new CatalogStore.
func New(db *sql.DB) CatalogStore {
	return &store{
		db: db,
	}
}

// UpsertVenues inserts or refreshes the cached venue list.
func (s *store) UpsertVenues(venues []backend.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO venues (id, name, city, address, image, refreshed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			address = excluded.address,
			image = excluded.image,
			refreshed_at = excluded.refreshed_at;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, v := range venues {
		if _, err := stmt.Exec(v.ID, v.Name, v.City, v.Address, v.Image, now); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ListVenues returns all cached venues ordered by name.
func (s *store) ListVenues() ([]backend.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, city, address, image FROM venues ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []backend.Venue
	for rows.Next() {
		var v backend.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Address, &v.Image); err != nil {
			log.Error("Failed to scan venue row", "error", err)
			continue
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// GetVenue returns one cached venue, or nil if it is not cached.
func (s *store) GetVenue(venueID string) (*backend.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v backend.Venue
	err := s.db.QueryRow(`SELECT id, name, city, address, image FROM venues WHERE id = ?`, venueID).
		Scan(&v.ID, &v.Name, &v.City, &v.Address, &v.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpsertAvailability replaces the cached courts and slots for one venue and
// day. The slot list for the day is replaced wholesale so that slots taken
// since the last refresh disappear from the cache.
func (s *store) UpsertAvailability(venueID, day string, courts []backend.CourtAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	courtStmt, err := tx.Prepare(`
		INSERT INTO courts (id, venue_id, name, game)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			venue_id = excluded.venue_id,
			name = excluded.name,
			game = excluded.game;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer courtStmt.Close()

	slotStmt, err := tx.Prepare(`
		INSERT INTO slots (court_id, day, start_time, duration_mins, price)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer slotStmt.Close()

	for _, c := range courts {
		if _, err := courtStmt.Exec(c.CourtID, venueID, c.CourtName, c.Sport); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec(`DELETE FROM slots WHERE court_id = ? AND day = ?`, c.CourtID, day); err != nil {
			tx.Rollback()
			return err
		}
		for _, slot := range c.Slots {
			if _, err := slotStmt.Exec(c.CourtID, day, slot.StartTime, slot.DurationMins, slot.Price); err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit()
}

// GetAvailability returns the cached courts and open slots for one venue and
// day. Courts with no remaining slots are still listed, with an empty slot
// list.
func (s *store) GetAvailability(venueID, day string) ([]backend.CourtAvailability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, game FROM courts WHERE venue_id = ? ORDER BY name`, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []backend.CourtAvailability
	for rows.Next() {
		var c backend.CourtAvailability
		if err := rows.Scan(&c.CourtID, &c.CourtName, &c.Sport); err != nil {
			log.Error("Failed to scan court row", "error", err)
			continue
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range courts {
		slots, err := s.slotsForCourt(courts[i].CourtID, day)
		if err != nil {
			return nil, err
		}
		courts[i].Slots = slots
	}
	return courts, nil
}

func (s *store) slotsForCourt(courtID, day string) ([]backend.Slot, error) {
	rows, err := s.db.Query(`
		SELECT start_time, duration_mins, price
		FROM slots
		WHERE court_id = ? AND day = ?
		ORDER BY start_time
	`, courtID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []backend.Slot
	for rows.Next() {
		var slot backend.Slot
		if err := rows.Scan(&slot.StartTime, &slot.DurationMins, &slot.Price); err != nil {
			log.Error("Failed to scan slot row", "error", err)
			continue
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Clear wipes the cached catalog. Used by tests and the admin clear endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"slots", "courts", "venues"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
		}
	}
}

package booking

// team returns the seat array for a 1-based team number.
func (r *Roster) team(team int) *[TeamSize]*Seat {
	switch team {
	case 1:
		return &r.Team1
	case 2:
		return &r.Team2
	}
	return nil
}

// At returns the seat at the given position, or nil for empty or invalid
// positions.
func (r *Roster) At(team, seat int) *Seat {
	t := r.team(team)
	if t == nil || seat < 0 || seat >= TeamSize {
		return nil
	}
	return t[seat]
}

// Assign places a player into a seat. A seat holding a real player cannot be
// overwritten; it has to be cleared first. Assigning over a vacated
// "available" placeholder is allowed, since that seat is open again.
func (r *Roster) Assign(team, seat int, player Seat) error {
	t := r.team(team)
	if t == nil || seat < 0 || seat >= TeamSize {
		return ErrInvalidPosition
	}
	if t[seat].Occupied() {
		return ErrSeatTaken
	}
	p := player
	t[seat] = &p
	return nil
}

// Clear empties a seat in the creation flow, where seats have no history
// worth keeping.
func (r *Roster) Clear(team, seat int) error {
	t := r.team(team)
	if t == nil || seat < 0 || seat >= TeamSize {
		return ErrInvalidPosition
	}
	t[seat] = nil
	return nil
}

// Vacate frees a seat on a pre-existing match record. The seat becomes an
// "available" placeholder rather than nil, so "was a player, now vacated"
// stays distinguishable from "always empty". Both render as open.
func (r *Roster) Vacate(team, seat int) error {
	t := r.team(team)
	if t == nil || seat < 0 || seat >= TeamSize {
		return ErrInvalidPosition
	}
	t[seat] = &Seat{Type: SeatOpen}
	return nil
}

// OpenSpots counts seats without an assigned player. When the acting user
// has tentatively selected a seat but not yet confirmed, that seat is
// excluded so the displayed count already reflects the post-join state.
func (r *Roster) OpenSpots(pendingSelf bool) int {
	open := 0
	for _, t := range []*[TeamSize]*Seat{&r.Team1, &r.Team2} {
		for _, s := range t {
			if !s.Occupied() {
				open++
			}
		}
	}
	if pendingSelf && open > 0 {
		open--
	}
	return open
}

// Players returns the occupied seats of both teams in positional order.
func (r *Roster) Players() []Seat {
	var players []Seat
	for team := 1; team <= 2; team++ {
		for seat := 0; seat < TeamSize; seat++ {
			if s := r.At(team, seat); s.Occupied() {
				players = append(players, *s)
			}
		}
	}
	return players
}

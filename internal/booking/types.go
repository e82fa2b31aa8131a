package booking

import "errors"

// SeatType says what kind of participant occupies a seat.
type SeatType string

const (
	// SeatUser is a registered platform user.
	SeatUser SeatType = "user"
	// SeatGuest is an unregistered player added by the booking owner.
	SeatGuest SeatType = "guest"
	// SeatOpen marks a seat that previously held a real player and was
	// vacated. It renders the same as an empty seat but is tracked
	// separately so a cancelled selection can be rolled back faithfully.
	SeatOpen SeatType = "available"
)

// Seat is one occupied roster position.
type Seat struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image,omitempty"`
	Type  SeatType `json:"type"`
}

// Occupied reports whether the seat holds a real player. A vacated
// "available" placeholder does not count.
func (s *Seat) Occupied() bool {
	return s != nil && s.Type != SeatOpen
}

// TeamSize is the number of seats per team.
const TeamSize = 2

// Roster is the 4-seat layout of a doubles match: two teams of two. A nil
// entry is a seat that was never filled.
type Roster struct {
	Team1 [TeamSize]*Seat `json:"team1"`
	Team2 [TeamSize]*Seat `json:"team2"`
}

var (
	// ErrSeatTaken is returned when assigning into a seat that already
	// holds a player. Callers must clear the seat first.
	ErrSeatTaken = errors.New("seat is already taken")
	// ErrInvalidPosition is returned for a team or seat index outside the
	// 2x2 roster.
	ErrInvalidPosition = errors.New("invalid seat position")
)

// PositionLabel maps a (team, seat) pair to the wire position name. Labels
// are fixed by the original seat index: team1 holds player1/player2, team2
// holds player3/player4, regardless of which seats are occupied.
func PositionLabel(team, seat int) string {
	switch {
	case team == 1 && seat == 0:
		return "player1"
	case team == 1 && seat == 1:
		return "player2"
	case team == 2 && seat == 0:
		return "player3"
	case team == 2 && seat == 1:
		return "player4"
	}
	return ""
}

// TeamLabel maps a team number to its wire name.
func TeamLabel(team int) string {
	if team == 2 {
		return "team2"
	}
	return "team1"
}

package booking

// PlayerEntry is one occupied seat as submitted to booking creation. The
// position label is fixed by the seat's original index, never by its index
// after empty seats are dropped.
type PlayerEntry struct {
	PlayerID   string `json:"playerId"`
	PlayerType string `json:"playerType"`
	Rackets    int    `json:"rackets,omitempty"`
	Balls      int    `json:"balls,omitempty"`
}

// TeamPayloads normalizes a roster into the two team arrays sent to the
// booking endpoint. Labels are assigned before empty seats are filtered out,
// so a guest in team2 seat 1 is always player4 even when player2 and player3
// are absent. Equipment counts ride on the acting user's entry only, which
// is team1 seat 0 by convention.
func TeamPayloads(r Roster, actingUserID string, eq Equipment) (team1, team2 []PlayerEntry) {
	rackets, balls := eq.Counts()

	build := func(teamNo int, seats [TeamSize]*Seat) []PlayerEntry {
		var entries []PlayerEntry
		for i, s := range seats {
			if !s.Occupied() {
				continue
			}
			entry := PlayerEntry{
				PlayerID:   s.ID,
				PlayerType: PositionLabel(teamNo, i),
			}
			if teamNo == 1 && i == 0 && s.ID == actingUserID {
				entry.Rackets = rackets
				entry.Balls = balls
			}
			entries = append(entries, entry)
		}
		return entries
	}

	return build(1, r.Team1), build(2, r.Team2)
}

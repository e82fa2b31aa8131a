package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamPayloads_LabelsByOriginalSeat(t *testing.T) {
	var r Roster
	require.NoError(t, r.Assign(1, 0, Seat{ID: "you", Type: SeatUser}))
	require.NoError(t, r.Assign(2, 1, Seat{ID: "guest-x", Type: SeatGuest}))

	team1, team2 := TeamPayloads(r, "you", Equipment{})

	require.Len(t, team1, 1)
	assert.Equal(t, "you", team1[0].PlayerID)
	assert.Equal(t, "player1", team1[0].PlayerType)

	require.Len(t, team2, 1, "empty seats are omitted, not sent as nulls")
	assert.Equal(t, "guest-x", team2[0].PlayerID)
	assert.Equal(t, "player4", team2[0].PlayerType, "label follows the original seat, not the filtered index")
}

func TestTeamPayloads_EquipmentRidesOnActingUser(t *testing.T) {
	var r Roster
	require.NoError(t, r.Assign(1, 0, Seat{ID: "you", Type: SeatUser}))
	require.NoError(t, r.Assign(1, 1, Seat{ID: "friend", Type: SeatUser}))

	eq := Equipment{Rackets: Select(2), Balls: Select(1)}
	team1, _ := TeamPayloads(r, "you", eq)

	require.Len(t, team1, 2)
	assert.Equal(t, 2, team1[0].Rackets)
	assert.Equal(t, 1, team1[0].Balls)
	assert.Zero(t, team1[1].Rackets, "only the acting user carries equipment")
	assert.Zero(t, team1[1].Balls)
}

func TestTeamPayloads_SkipsVacatedSeats(t *testing.T) {
	var r Roster
	require.NoError(t, r.Assign(1, 0, Seat{ID: "you", Type: SeatUser}))
	require.NoError(t, r.Assign(2, 0, Seat{ID: "p3", Type: SeatUser}))
	require.NoError(t, r.Vacate(2, 0))

	_, team2 := TeamPayloads(r, "you", Equipment{})
	assert.Empty(t, team2, "available placeholders are not submitted")
}

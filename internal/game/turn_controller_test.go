package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/HexConquest/internal/testutil"
)

func TestTurnController_Advance(t *testing.T) {
	tc := NewTurnController(testutil.NopLogger())
	players := testutil.CreateTestPlayers(3)

	assert.Equal(t, 0, tc.ActivePlayer())
	assert.Equal(t, 1, tc.Turn())

	prev, next := tc.Advance(players)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 1, next)
	assert.Equal(t, 2, tc.Turn())

	tc.Advance(players)
	_, next = tc.Advance(players)
	assert.Equal(t, 0, next, "rotation wraps")
	assert.Equal(t, 4, tc.Turn())
}

func TestTurnController_SkipsDeadPlayers(t *testing.T) {
	tc := NewTurnController(testutil.NopLogger())
	players := testutil.CreateTestPlayers(4)
	players[1].Alive = false
	players[3].Alive = false

	var seen []int
	for range 4 {
		_, next := tc.Advance(players)
		seen = append(seen, next)
	}
	assert.Equal(t, []int{2, 0, 2, 0}, seen)
}

func TestTurnController_SoleSurvivor(t *testing.T) {
	tc := NewTurnController(testutil.NopLogger())
	players := testutil.CreateTestPlayers(4)
	for _, id := range []int{0, 1, 3} {
		players[id].Alive = false
	}

	for range 5 {
		_, next := tc.Advance(players)
		assert.Equal(t, 2, next)
	}
	assert.Equal(t, 6, tc.Turn())
}

package board_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaximizeEngagementSimpleAdjacency(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.D4, Side: board.Red, Type: board.Infantry},
		{Square: board.D5, Side: board.Blue, Type: board.Infantry},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	engaged := b.MaximizeEngagement(board.Red, nil)
	assert.True(t, engaged[board.Red].IsSet(board.D4))
	assert.True(t, engaged[board.Blue].IsSet(board.D5))
}

// A single defender can be matched to only one attacker even when several are adjacent;
// matching is maximum, not "everyone who can reach gets credit".
func TestMaximizeEngagementMatchesAtMostOnePerDefender(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.D4, Side: board.Red, Type: board.Infantry},
		{Square: board.E5, Side: board.Red, Type: board.Infantry},
		{Square: board.D5, Side: board.Blue, Type: board.Infantry},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	engaged := b.MaximizeEngagement(board.Red, nil)
	assert.True(t, engaged[board.Blue].IsSet(board.D5))
	// Exactly one of d4/e5 is engaged; the matching size on the red side is 1.
	assert.Equal(t, 1, engaged[board.Red].PopCount())
}

func TestMaximizeEngagementWithRelocation(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.C4, Side: board.Red, Type: board.Infantry},
		{Square: board.D5, Side: board.Blue, Type: board.Infantry},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	// c4 is not adjacent to d5; relocating it to d4 (adjacent to d5) should engage it.
	relocate := &board.Relocation{From: board.C4, To: board.D4}
	engaged := b.MaximizeEngagement(board.Red, relocate)
	assert.True(t, engaged[board.Red].IsSet(board.D4))
	assert.True(t, engaged[board.Blue].IsSet(board.D5))
}

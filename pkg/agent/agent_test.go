package agent_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/herohde/ghq/pkg/agent"
	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAgentReturnsALegalMove(t *testing.T) {
	b := board.StartingBoard()
	a := &agent.RandomAgent{Rand: rand.New(rand.NewSource(1))}

	m, err := a.NextMove(context.Background(), b)
	require.NoError(t, err)

	assert.Contains(t, b.LegalMoves(), m)
}

func TestGreedyAgentPrefersMaterialGain(t *testing.T) {
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

	a := &agent.GreedyAgent{Side: board.Red}
	m, err := a.NextMove(context.Background(), b)
	require.NoError(t, err)

	// The only free capture available removes blue's infantry at d5: a clear greedy pick.
	assert.Equal(t, board.MoveKindAutoCaptureFree, m.Kind)
	assert.Equal(t, board.D5, m.TargetSquare)
}

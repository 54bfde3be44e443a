package board_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushNormalActionBookkeeping(t *testing.T) {
	b := board.StartingBoard()

	require.NoError(t, b.Push(board.MoveTo(board.G2, board.G3)))
	assert.Equal(t, board.Red, b.Turn())
	assert.Equal(t, 1, b.TurnMoves())
	assert.True(t, b.TurnPieces().IsSet(board.G3))

	require.NoError(t, b.Push(board.MoveTo(board.F2, board.F3)))
	assert.Equal(t, 2, b.TurnMoves())

	require.NoError(t, b.Push(board.MoveTo(board.H2, board.H3)))
	// Three actions taken: side flips and scratch resets.
	assert.Equal(t, board.Blue, b.Turn())
	assert.Equal(t, 0, b.TurnMoves())
	assert.Equal(t, board.EmptyBitboard, b.TurnPieces())
}

func TestPushReinforceDecrementsReserve(t *testing.T) {
	b := board.StartingBoard()
	before := b.Reserve(board.Red).Count(board.Infantry)

	require.NoError(t, b.Push(board.Reinforce(board.Infantry, board.A1)))
	assert.Equal(t, before-1, b.Reserve(board.Red).Count(board.Infantry))

	tp, side, ok := b.PieceAt(board.A1)
	require.True(t, ok)
	assert.Equal(t, board.Infantry, tp)
	assert.Equal(t, board.Red, side)
}

func TestPushAutoCaptureDoesNotConsumeAnAction(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.D2, Side: board.Red, Type: board.HeavyArtillery, Orientation: board.OrientN},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.D5, Side: board.Blue, Type: board.Infantry},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Blue)
	require.NoError(t, err)
	require.NoError(t, b.Push(board.SkipMove()))
	require.Equal(t, board.Red, b.Turn())

	require.NoError(t, b.Push(board.AutoCaptureBombard(board.D5)))
	assert.Equal(t, board.Red, b.Turn())
	assert.Equal(t, 0, b.TurnMoves())
	assert.Equal(t, 1, b.TurnAutoMoves())

	_, _, ok := b.PieceAt(board.D5)
	assert.False(t, ok)
}

func TestPushRejectsUnrecognizedMoveKind(t *testing.T) {
	b := board.StartingBoard()

	err := b.Push(board.Move{Kind: board.MoveKind(255)})
	assert.Error(t, err)
	assert.Empty(t, b.History())
}

func TestHQCaptureEndsTheGame(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.D7, Side: board.Red, Type: board.Infantry},
		{Square: board.E8, Side: board.Red, Type: board.Infantry},
		{Square: board.D8, Side: board.Blue, Type: board.HQ},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	require.NoError(t, b.Push(board.AutoCaptureFree(board.D8)))

	assert.True(t, b.IsGameOver())
	outcome, over := b.Outcome()
	require.True(t, over)
	assert.Equal(t, board.TerminationHQCapture, outcome.Termination)
	winner, ok := outcome.Winner.V()
	require.True(t, ok)
	assert.Equal(t, board.Red, winner)
	assert.Equal(t, "1-0", b.Result())
}

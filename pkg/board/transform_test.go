package board_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant 7: mirroring a position (flip vertical + flip horizontal + swap side/reserves)
// produces a position whose action counts match the original under colour symmetry.
func TestMirrorPreservesActionCount(t *testing.T) {
	b := board.StartingBoard()
	mirrored := b.Mirror()

	assert.Equal(t, len(b.LegalMoves()), len(mirrored.LegalMoves()))
	assert.Equal(t, board.Blue, mirrored.Turn())

	hqRed, ok := b.HQSquare(board.Red)
	require.True(t, ok)
	hqBlueMirrored, ok := mirrored.HQSquare(board.Blue)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(board.File(7-int(hqRed.File())), board.Rank(7-int(hqRed.Rank()))), hqBlueMirrored)
}

func TestRotate90ClockwiseMapsCorners(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.A1, Side: board.Red, Type: board.Infantry},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	rotated := b.Rotate90Clockwise()

	// a1 (file0,rank0) rotates clockwise to a8 (file0,rank7).
	_, _, ok := rotated.PieceAt(board.A8)
	assert.True(t, ok)
}

func TestFlipVerticalReflectsOrientation(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Side: board.Red, Type: board.HQ},
		{Square: board.A8, Side: board.Blue, Type: board.HQ},
		{Square: board.D2, Side: board.Red, Type: board.Artillery, Orientation: board.OrientN},
	}
	reserves := [board.NumSides]board.ReserveFleet{}
	b, err := board.NewBoard(placements, reserves, board.Red)
	require.NoError(t, err)

	flipped := b.FlipVertical()

	o, ok := flipped.OrientationAt(board.NewSquare(board.FileD, board.Rank(7-1)))
	require.True(t, ok)
	assert.Equal(t, board.OrientS, o)
}

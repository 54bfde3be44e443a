package board_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
	assert.Equal(t, "5", board.Rank(4).String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, "e", board.File(4).String())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.G5, board.NewSquare(board.FileG, board.Rank5))

	assert.True(t, board.H1.IsValid())
	assert.True(t, board.D4.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.Square(64).IsValid())

	// Spec numbering: A1=0 .. H1=7, A2=8 .. H8=63 (ascending a..h within a rank).
	assert.Equal(t, board.Square(0), board.A1)
	assert.Equal(t, board.Square(7), board.H1)
	assert.Equal(t, board.Square(63), board.H8)

	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "a1", board.A1.String())

	sq, err := board.ParseSquareStr("d4")
	assert.NoError(t, err)
	assert.Equal(t, board.D4, sq)
}

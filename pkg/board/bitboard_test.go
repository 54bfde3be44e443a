package board_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboard(t *testing.T) {

	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.D4), 1},
			{board.BitMask(board.D4) | board.BitMask(board.E5), 2},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected string
		}{
			{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.A1), "--------/--------/--------/--------/--------/--------/--------/X-------"},
			{board.BitMask(board.H8), "-------X/--------/--------/--------/--------/--------/--------/--------"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.String())
		}
	})

	t.Run("msbn", func(t *testing.T) {
		mask := board.BitMask(board.A1) | board.BitMask(board.D4) | board.BitMask(board.H8)

		assert.Equal(t, board.EmptyBitboard, mask.MSBN(0))
		assert.Equal(t, board.BitMask(board.H8), mask.MSBN(1))
		assert.Equal(t, board.BitMask(board.H8)|board.BitMask(board.D4), mask.MSBN(2))
		assert.Equal(t, mask, mask.MSBN(3))
		assert.Equal(t, mask, mask.MSBN(10))
	})

	t.Run("regular steps from a corner", func(t *testing.T) {
		mask := board.RegularSteps(board.A1)
		assert.True(t, mask.IsSet(board.A2))
		assert.True(t, mask.IsSet(board.B1))
		assert.True(t, mask.IsSet(board.B2))
		assert.Equal(t, 3, mask.PopCount())
	})

	t.Run("adjacent steps are exactly four for an interior square", func(t *testing.T) {
		mask := board.AdjacentSteps(board.D4)
		assert.Equal(t, 4, mask.PopCount())
		assert.True(t, mask.IsSet(board.D5))
		assert.True(t, mask.IsSet(board.D3))
		assert.True(t, mask.IsSet(board.C4))
		assert.True(t, mask.IsSet(board.E4))
	})

	t.Run("slide attacks stop at first blocker", func(t *testing.T) {
		occ := board.BitMask(board.D6)
		attacks := board.SlideAttacks(board.D4, occ)
		assert.True(t, attacks.IsSet(board.D5))
		assert.True(t, attacks.IsSet(board.D6))
		assert.False(t, attacks.IsSet(board.D7))
	})

	t.Run("between inclusive end excludes the source and is empty when unaligned", func(t *testing.T) {
		assert.Equal(t, board.BitMask(board.D5)|board.BitMask(board.D6), board.BetweenInclusiveEnd(board.D4, board.D6))
		assert.Equal(t, board.EmptyBitboard, board.BetweenInclusiveEnd(board.D4, board.E6))
	})
}

package notation_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		notation.StartingFEN,
		"8/8/8/8/8/8/8/q6Q - - r",
	}

	for _, tt := range tests {
		b, err := notation.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, notation.Encode(b))
	}
}

func TestDecodeStartingPositionPlacesOrientedArtillery(t *testing.T) {
	b, err := notation.Decode(notation.StartingFEN)
	require.NoError(t, err)

	tp, side, ok := b.PieceAt(board.B8)
	require.True(t, ok)
	assert.Equal(t, board.Artillery, tp)
	assert.Equal(t, board.Blue, side)
	o, ok := b.OrientationAt(board.B8)
	require.True(t, ok)
	assert.Equal(t, board.OrientS, o)

	assert.Equal(t, uint32(5), b.Reserve(board.Red).Count(board.Infantry))
	assert.Equal(t, uint32(1), b.Reserve(board.Blue).Count(board.ArmoredArtillery))
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	_, err := notation.Decode("not a fen")
	assert.Error(t, err)
}

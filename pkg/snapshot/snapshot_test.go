package snapshot_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := board.StartingBoard()
	require.NoError(t, b.Push(board.MoveTo(board.G2, board.G3)))

	data, err := snapshot.Encode(b)
	require.NoError(t, err)

	restored, err := snapshot.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, b.Occupied(), restored.Occupied())
	assert.Equal(t, b.Turn(), restored.Turn())
	assert.Equal(t, b.TurnMoves(), restored.TurnMoves())
	assert.Equal(t, b.Reserve(board.Red).Count(board.Infantry), restored.Reserve(board.Red).Count(board.Infantry))

	_, _, ok := restored.PieceAt(board.G3)
	assert.True(t, ok)
}

func TestDecodeRejectsInvalidData(t *testing.T) {
	_, err := snapshot.Decode("not valid base64 at all !!!")
	assert.Error(t, err)
}

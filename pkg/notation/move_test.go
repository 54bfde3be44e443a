package notation_test

import (
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveRoundTrip(t *testing.T) {
	tests := []board.Move{
		board.SkipMove(),
		board.Reinforce(board.Infantry, board.H1),
		board.ReinforceWithCapture(board.Infantry, board.H1, board.G2),
		board.MoveTo(board.D2, board.D4),
		board.MoveToWithCapture(board.D2, board.D4, board.E4),
		board.MoveAndOrientTo(board.D2, board.D4, board.OrientNE),
		board.AutoCaptureBombard(board.D5),
		board.AutoCaptureFree(board.D8),
	}

	for _, m := range tests {
		s := m.String()
		parsed, err := notation.ParseMove(s)
		require.NoError(t, err, s)
		assert.True(t, m.Equals(parsed), "round trip of %q: got %v", s, parsed)
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	_, err := notation.ParseMove("")
	assert.Error(t, err)

	_, err = notation.ParseMove("zz")
	assert.Error(t, err)
}

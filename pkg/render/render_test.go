package render_test

import (
	"strings"
	"testing"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestASCIIShowsOrientedArtillery(t *testing.T) {
	out := render.ASCII(board.StartingBoard())
	assert.Contains(t, out, "R↑") // red artillery at g1 faces north
	assert.Contains(t, out, "turn: r, actions: 0/3")
}

func TestUnicodeUsesGlyphTable(t *testing.T) {
	out := render.Unicode(board.StartingBoard())
	assert.Contains(t, out, "★") // red HQ
	assert.False(t, strings.Contains(out, "↑"), "unicode rendering omits orientation arrows")
}

// Package render prints a board.Board as a bordered text grid, in plain ASCII letters or
// Unicode glyphs. Grounded on engine.py's BaseBoard.unicode() for the glyph table and
// orientation-arrow suffix, and on the teacher's pkg/engine/console.printBoard for the
// bordered rank/file layout.
package render

import (
	"fmt"
	"strings"

	"github.com/herohde/ghq/pkg/board"
)

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

// unicodeSymbols mirrors engine.py's UNICODE_PIECE_SYMBOLS: uppercase key for red, lowercase
// for blue.
var unicodeSymbols = map[string]string{
	"Q": "★", "q": "☆",
	"I": "♟", "i": "♙",
	"F": "▲", "f": "△",
	"P": "☂", "p": "⛱",
	"R": "♠", "r": "♤",
	"T": "♦", "t": "♢",
	"H": "☗", "h": "☖",
}

// ASCII renders b using plain letters (uppercase red, lowercase blue), with rank/file
// borders and, for artillery, a trailing orientation arrow.
func ASCII(b *board.Board) string {
	return render(b, false)
}

// Unicode renders b using the Unicode glyph table instead of plain letters.
func Unicode(b *board.Board) string {
	return render(b, true)
}

func render(b *board.Board, unicode bool) string {
	var out []string
	out = append(out, "", files, horizontal)

	var sb strings.Builder
	sb.WriteString("8" + vertical)
	for r := board.Rank8; ; r-- {
		for f := board.FileA; f.IsValid(); f++ {
			sq := board.NewSquare(f, r)
			sb.WriteString(squareGlyph(b, sq, unicode))
			sb.WriteString(vertical)
		}
		out = append(out, sb.String(), horizontal)
		sb.Reset()
		if r == board.Rank1 {
			break
		}
		sb.WriteString(r.String())
		sb.WriteString(vertical)
	}

	out = append(out, files, "")
	out = append(out, fmt.Sprintf("turn: %v, actions: %v/3", b.Turn(), b.TurnMoves()))
	if outcome, over := b.Outcome(); over {
		out = append(out, fmt.Sprintf("result: %v (%v)", b.Result(), outcome.Termination))
	}
	out = append(out, "")

	return strings.Join(out, "\n")
}

func squareGlyph(b *board.Board, sq board.Square, unicode bool) string {
	t, side, ok := b.PieceAt(sq)
	if !ok {
		return "·"
	}

	symbol := t.String()
	if side == board.Red {
		symbol = strings.ToUpper(symbol)
	}

	if unicode {
		// engine.py's unicode_symbol omits the orientation arrow entirely; ASCII mode keeps
		// it, matching symbol()'s use in board_fen/__str__.
		return unicodeSymbols[symbol]
	}

	if t.IsArtillery() {
		o, _ := b.OrientationAt(sq)
		symbol += o.String()
	}
	return symbol
}

// Package notation reads and writes GHQ positions and moves in the game's textual
// notation: a FEN-like position string and a UCI-like move string.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/ghq/pkg/board"
)

// StartingFEN is the canonical starting position.
const StartingFEN = "qr↓6/iii5/8/8/8/8/5III/6R↑Q IIIIIFFFPRRTH iiiiifffprrth r"

// Decode parses a position string of the form "<ranks> <red reserve> <blue reserve> <turn>".
// Ranks run rank 8 down to rank 1 (top to bottom), files a through h within a rank, matching
// the teacher's pkg/board/fen.Decode layout but walked ascending (GHQ's square numbering runs
// a..h ascending within a rank, the opposite of the teacher's descending-file chess squares).
func Decode(fen string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 4 {
		return nil, fmt.Errorf("notation: invalid FEN %q: want 4 space-separated fields", fen)
	}

	placements, err := decodeRanks(parts[0])
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}

	var reserves [board.NumSides]board.ReserveFleet
	if parts[1] != "-" {
		r, err := decodeReserve(parts[1])
		if err != nil {
			return nil, fmt.Errorf("notation: red reserve: %w", err)
		}
		reserves[board.Red] = r
	}
	if parts[2] != "-" {
		r, err := decodeReserve(parts[2])
		if err != nil {
			return nil, fmt.Errorf("notation: blue reserve: %w", err)
		}
		reserves[board.Blue] = r
	}

	turn, ok := board.ParseSide([]rune(parts[3])[0])
	if !ok {
		return nil, fmt.Errorf("notation: invalid turn %q", parts[3])
	}

	return board.NewBoard(placements, reserves, turn)
}

func decodeRanks(field string) ([]board.Placement, error) {
	var placements []board.Placement
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid board field %q: want 8 ranks", field)
	}

	for i, rank := range ranks {
		r := board.Rank(7 - i)
		f := board.FileA
		runes := []rune(rank)
		for j := 0; j < len(runes); j++ {
			c := runes[j]
			if c >= '1' && c <= '8' {
				f += board.File(c - '0')
				continue
			}

			t, ok := board.ParsePieceType(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece symbol %q in rank %q", c, rank)
			}
			side := board.Red
			if c >= 'a' && c <= 'z' {
				side = board.Blue
			}

			o := board.Orientation(0)
			if t.IsArtillery() {
				o = side.ForwardOrientation()
				if j+1 < len(runes) {
					if parsed, ok := parseArrow(runes[j+1]); ok {
						o = parsed
						j++
					}
				}
			}

			if !f.IsValid() {
				return nil, fmt.Errorf("rank %q overflows 8 files", rank)
			}
			placements = append(placements, board.Placement{
				Square:      board.NewSquare(f, r),
				Side:        side,
				Type:        t,
				Orientation: o,
			})
			f++
		}
	}
	return placements, nil
}

func decodeReserve(field string) (board.ReserveFleet, error) {
	var r board.ReserveFleet
	for _, c := range field {
		t, ok := board.ParsePieceType(c)
		if !ok || t == board.HQ {
			return r, fmt.Errorf("invalid reserve symbol %q", c)
		}
		r.Add(t, 1)
	}
	return r, nil
}

// Encode renders a position in the same format Decode accepts.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		empty := 0
		for f := board.FileA; f.IsValid(); f++ {
			sq := board.NewSquare(f, r)
			t, side, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceSymbol(t, side))
			if t.IsArtillery() {
				o, _ := b.OrientationAt(sq)
				sb.WriteString(o.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	redReserve := encodeReserve(b.Reserve(board.Red), board.Red)
	blueReserve := encodeReserve(b.Reserve(board.Blue), board.Blue)

	return fmt.Sprintf("%s %s %s %s", sb.String(), orDash(redReserve), orDash(blueReserve), b.Turn())
}

// reserveOrder is the serialisation order of reservable piece types (HQ excluded).
var reserveOrder = [...]board.PieceType{
	board.Infantry, board.ArmoredInfantry, board.AirborneInfantry,
	board.Artillery, board.ArmoredArtillery, board.HeavyArtillery,
}

func encodeReserve(r board.ReserveFleet, side board.Side) string {
	var sb strings.Builder
	for _, t := range reserveOrder {
		sym := pieceSymbol(t, side)
		for i := uint32(0); i < r.Count(t); i++ {
			sb.WriteString(sym)
		}
	}
	return sb.String()
}

func pieceSymbol(t board.PieceType, side board.Side) string {
	s := t.String()
	if side == board.Red {
		s = strings.ToUpper(s)
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func parseArrow(r rune) (board.Orientation, bool) {
	for o := board.OrientN; o < board.NumOrientations; o++ {
		if []rune(o.String())[0] == r {
			return o, true
		}
	}
	return 0, false
}

package notation

import (
	"fmt"

	"github.com/herohde/ghq/pkg/board"
)

// ParseMove parses a move string produced by board.Move.String (mirroring engine.py's
// Move.uci/from_uci round trip, §6.2):
//
//	skip                    Skip
//	r<unit><to>[x<capture>]     Reinforce
//	<from><to>[x<capture>]      Move
//	<from><to><arrow>           MoveAndOrient
//	sb<square>                  AutoCapture (bombard)
//	sf<square>                  AutoCapture (free)
func ParseMove(s string) (board.Move, error) {
	if s == "skip" {
		return board.SkipMove(), nil
	}

	if len(s) > 0 && s[0] == 'r' {
		return parseReinforce(s[1:])
	}

	if len(s) >= 2 && s[0] == 's' {
		return parseAutoCapture(s)
	}

	return parseMoveOrOrient(s)
}

func parseReinforce(rest string) (board.Move, error) {
	var unitType board.PieceType
	hasUnit := false
	if len(rest) > 0 {
		if t, ok := board.ParsePieceType(rune(rest[0])); ok {
			unitType = t
			hasUnit = true
			rest = rest[1:]
		}
	}
	if !hasUnit {
		return board.Move{}, fmt.Errorf("notation: reinforce move missing unit type")
	}

	if len(rest) < 2 {
		return board.Move{}, fmt.Errorf("notation: reinforce move missing destination square")
	}
	to, err := board.ParseSquareStr(rest[:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: %w", err)
	}
	rest = rest[2:]

	if rest == "" {
		return board.Reinforce(unitType, to), nil
	}
	if len(rest) == 3 && rest[0] == 'x' {
		capture, err := board.ParseSquareStr(rest[1:3])
		if err != nil {
			return board.Move{}, fmt.Errorf("notation: capture square: %w", err)
		}
		return board.ReinforceWithCapture(unitType, to, capture), nil
	}
	return board.Move{}, fmt.Errorf("notation: malformed reinforce move %q", rest)
}

func parseAutoCapture(s string) (board.Move, error) {
	if len(s) < 4 {
		return board.Move{}, fmt.Errorf("notation: auto-capture move %q too short", s)
	}
	sq, err := board.ParseSquareStr(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: %w", err)
	}
	switch s[1] {
	case 'b':
		return board.AutoCaptureBombard(sq), nil
	case 'f':
		return board.AutoCaptureFree(sq), nil
	default:
		return board.Move{}, fmt.Errorf("notation: invalid auto-capture type %q", s[1])
	}
}

func parseMoveOrOrient(s string) (board.Move, error) {
	if len(s) < 4 {
		return board.Move{}, fmt.Errorf("notation: malformed move %q", s)
	}
	from, err := board.ParseSquareStr(s[:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: from square: %w", err)
	}
	to, err := board.ParseSquareStr(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: to square: %w", err)
	}
	rest := s[4:]

	if rest == "" {
		return board.MoveTo(from, to), nil
	}
	if rest[0] == 'x' {
		if len(rest) != 3 {
			return board.Move{}, fmt.Errorf("notation: malformed capture suffix %q", rest)
		}
		capture, err := board.ParseSquareStr(rest[1:3])
		if err != nil {
			return board.Move{}, fmt.Errorf("notation: capture square: %w", err)
		}
		return board.MoveToWithCapture(from, to, capture), nil
	}

	o, ok := parseArrow([]rune(rest)[0])
	if !ok {
		return board.Move{}, fmt.Errorf("notation: invalid orientation suffix %q", rest)
	}
	return board.MoveAndOrientTo(from, to, o), nil
}

// String renders a move in the same format ParseMove accepts. It defers to board.Move.String,
// kept here as the package-level entry point mirroring Decode/Encode.
func String(m board.Move) string {
	return m.String()
}

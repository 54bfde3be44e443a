package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// MoveKind discriminates the tagged Move variant (spec's tagged move variant design note).
type MoveKind uint8

const (
	MoveKindReinforce MoveKind = iota
	MoveKindMove
	MoveKindMoveAndOrient
	MoveKindAutoCaptureBombard
	MoveKindAutoCaptureFree
	MoveKindSkip
)

func (k MoveKind) String() string {
	switch k {
	case MoveKindReinforce:
		return "Reinforce"
	case MoveKindMove:
		return "Move"
	case MoveKindMoveAndOrient:
		return "MoveAndOrient"
	case MoveKindAutoCaptureBombard, MoveKindAutoCaptureFree:
		return "AutoCapture"
	case MoveKindSkip:
		return "Skip"
	default:
		return "?"
	}
}

// Move is a single action within a turn. Only the fields relevant to Kind are meaningful;
// this flat-struct-with-discriminant shape follows the teacher's own board.Move (a single
// chess move struct gated by a MoveType), generalised to GHQ's five kinds and widened with
// lang.Optional for the genuinely optional sub-fields.
type Move struct {
	Kind MoveKind

	// Reinforce
	UnitType PieceType
	ToSquare Square

	// Move / MoveAndOrient
	FromSquare Square

	// MoveAndOrient
	Orientation lang.Optional[Orientation]

	// Reinforce / Move: a side-effect free-capture nominated at landing time.
	CapturePreference lang.Optional[Square]

	// AutoCapture{bombard,free}
	TargetSquare Square
}

func (m Move) IsSkip() bool {
	return m.Kind == MoveKindSkip
}

// Reinforce constructs a Reinforce move.
func Reinforce(t PieceType, to Square) Move {
	return Move{Kind: MoveKindReinforce, UnitType: t, ToSquare: to}
}

// ReinforceWithCapture constructs a Reinforce move with a nominated side-effect capture.
func ReinforceWithCapture(t PieceType, to, capture Square) Move {
	return Move{Kind: MoveKindReinforce, UnitType: t, ToSquare: to, CapturePreference: lang.Some(capture)}
}

// MoveTo constructs a plain Move.
func MoveTo(from, to Square) Move {
	return Move{Kind: MoveKindMove, FromSquare: from, ToSquare: to}
}

// MoveToWithCapture constructs a Move with a nominated side-effect capture.
func MoveToWithCapture(from, to, capture Square) Move {
	return Move{Kind: MoveKindMove, FromSquare: from, ToSquare: to, CapturePreference: lang.Some(capture)}
}

// MoveAndOrientTo constructs a MoveAndOrient move (from==to allowed, for rotate-in-place).
func MoveAndOrientTo(from, to Square, o Orientation) Move {
	return Move{Kind: MoveKindMoveAndOrient, FromSquare: from, ToSquare: to, Orientation: lang.Some(o)}
}

// AutoCaptureBombard constructs a mandatory bombardment-removal action.
func AutoCaptureBombard(target Square) Move {
	return Move{Kind: MoveKindAutoCaptureBombard, TargetSquare: target}
}

// AutoCaptureFree constructs a mandatory free-capture action.
func AutoCaptureFree(target Square) Move {
	return Move{Kind: MoveKindAutoCaptureFree, TargetSquare: target}
}

// SkipMove constructs a Skip move.
func SkipMove() Move {
	return Move{Kind: MoveKindSkip}
}

// WithCapture returns a copy of m (Reinforce or Move only) with the given capture preference.
func (m Move) WithCapture(sq Square) Move {
	m.CapturePreference = lang.Some(sq)
	return m
}

// Equals reports whether two moves describe the same action.
func (m Move) Equals(o Move) bool {
	return m.Kind == o.Kind && m.UnitType == o.UnitType && m.ToSquare == o.ToSquare &&
		m.FromSquare == o.FromSquare && m.Orientation == o.Orientation &&
		m.CapturePreference == o.CapturePreference && m.TargetSquare == o.TargetSquare
}

func (m Move) String() string {
	switch m.Kind {
	case MoveKindSkip:
		return "skip"
	case MoveKindReinforce:
		s := fmt.Sprintf("r%v%v", m.UnitType, m.ToSquare)
		if sq, ok := m.CapturePreference.V(); ok {
			s += fmt.Sprintf("x%v", sq)
		}
		return s
	case MoveKindMove:
		s := fmt.Sprintf("%v%v", m.FromSquare, m.ToSquare)
		if sq, ok := m.CapturePreference.V(); ok {
			s += fmt.Sprintf("x%v", sq)
		}
		return s
	case MoveKindMoveAndOrient:
		s := fmt.Sprintf("%v%v", m.FromSquare, m.ToSquare)
		if o, ok := m.Orientation.V(); ok {
			s += o.String()
		}
		return s
	case MoveKindAutoCaptureBombard:
		return fmt.Sprintf("sb%v", m.TargetSquare)
	case MoveKindAutoCaptureFree:
		return fmt.Sprintf("sf%v", m.TargetSquare)
	default:
		return "<invalid move>"
	}
}

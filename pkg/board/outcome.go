package board

import "github.com/seekerror/stdlib/pkg/lang"

// Termination names the reason a game ended.
type Termination string

const (
	TerminationHQCapture Termination = "hq capture"
	TerminationStalemate Termination = "stalemate"
	TerminationDraw      Termination = "draw"
)

// Outcome describes a finished game, per §6.4.
type Outcome struct {
	Termination Termination
	Winner      lang.Optional[Side]
}

// IsGameOver reports whether the game has a terminal outcome.
func (b *Board) IsGameOver() bool {
	_, over := b.Outcome()
	return over
}

// Outcome computes the terminal outcome, if any, grounded on engine.py's
// outcome/_is_hq_captured/is_game_over.
func (b *Board) Outcome() (Outcome, bool) {
	if _, ok := b.HQSquare(Red); !ok {
		return Outcome{Termination: TerminationHQCapture, Winner: lang.Some(Blue)}, true
	}
	if _, ok := b.HQSquare(Blue); !ok {
		return Outcome{Termination: TerminationHQCapture, Winner: lang.Some(Red)}, true
	}
	if b.didOfferDraw && b.didAcceptDraw {
		return Outcome{Termination: TerminationDraw}, true
	}
	if len(b.LegalMoves()) == 0 {
		return Outcome{Termination: TerminationStalemate, Winner: lang.Some(b.turn.Opponent())}, true
	}
	return Outcome{}, false
}

// Result returns the standard result string: "1-0", "0-1", or "1/2-1/2", and "*" while the
// game is not over.
func (b *Board) Result() string {
	o, over := b.Outcome()
	if !over {
		return "*"
	}
	side, ok := o.Winner.V()
	if !ok {
		return "1/2-1/2"
	}
	if side == Red {
		return "1-0"
	}
	return "0-1"
}

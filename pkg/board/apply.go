package board

// Push applies m to the board, per §4.9, returning IllegalMoveError only for a move with an
// unrecognized Kind. The generator is otherwise authoritative: pushing a move that is not
// among LegalMoves but has a known Kind is a programmer error and the resulting state is
// unspecified (the engine does not re-validate full legality on every push, matching
// engine.py's push/_move_piece).
func (b *Board) Push(m Move) error {
	switch m.Kind {
	case MoveKindReinforce, MoveKindMove, MoveKindMoveAndOrient, MoveKindAutoCaptureBombard, MoveKindAutoCaptureFree, MoveKindSkip:
		// handled below
	default:
		return &IllegalMoveError{Move: m}
	}

	b.history = append(b.history, m)

	switch m.Kind {
	case MoveKindReinforce:
		b.applyReinforce(m)
		b.recordNormalAction(m.ToSquare)
	case MoveKindMove:
		b.applyMove(m)
		b.recordNormalAction(m.ToSquare)
	case MoveKindMoveAndOrient:
		b.applyMoveAndOrient(m)
		b.recordNormalAction(m.ToSquare)
	case MoveKindAutoCaptureBombard, MoveKindAutoCaptureFree:
		b.removePieceAt(m.TargetSquare)
		b.turnAutoMoves++
		// AutoCapture does not flip the side to move (§4.9(5)), so endTurn's refresh never
		// runs here; the cached free-capture snapshot still needs to reflect the piece just
		// removed before LegalMoves consults it again.
		b.refreshFreeCaptures()
	case MoveKindSkip:
		b.applySkip()
		b.endTurn()
	}

	return nil
}

// recordNormalAction performs the bookkeeping common to Reinforce/Move/MoveAndOrient: clearing
// a stale draw offer, marking the destination acted-on, and ending the turn at three actions.
func (b *Board) recordNormalAction(to Square) {
	if b.turnMoves == 0 {
		b.didOfferDraw = false
	}
	b.turnPieces = b.turnPieces.Set(to)
	b.turnMoves++
	if b.turnMoves >= 3 {
		b.endTurn()
	}
}

func (b *Board) applyReinforce(m Move) {
	side := b.turn
	o := Orientation(0)
	if m.UnitType.IsArtillery() {
		o = side.ForwardOrientation()
	}
	b.setPieceAt(m.ToSquare, side, m.UnitType, o)
	b.reserves[side].Remove(m.UnitType, 1)

	if sq, ok := m.CapturePreference.V(); ok {
		b.removePieceAt(sq)
	}
}

func (b *Board) applyMove(m Move) {
	t, side, _ := b.PieceAt(m.FromSquare)
	b.removePieceAt(m.FromSquare)
	b.setPieceAt(m.ToSquare, side, t, 0)

	if sq, ok := m.CapturePreference.V(); ok {
		b.removePieceAt(sq)
	}
}

func (b *Board) applyMoveAndOrient(m Move) {
	o, _ := m.Orientation.V()
	if m.FromSquare == m.ToSquare {
		b.reorient(m.FromSquare, o)
		return
	}
	t, side, _ := b.PieceAt(m.FromSquare)
	b.removePieceAt(m.FromSquare)
	b.setPieceAt(m.ToSquare, side, t, o)
}

// applySkip implements the offer/accept draw state machine of §4.5: a Skip as the first action
// of a turn either offers a draw (if none is pending) or accepts one (if the opponent offered
// last turn).
func (b *Board) applySkip() {
	if b.turnMoves == 0 {
		if b.didOfferDraw {
			b.didAcceptDraw = true
		} else {
			b.didOfferDraw = true
		}
	} else {
		b.didOfferDraw = false
	}
}

// endTurn flips the side to move and resets per-turn scratch state, then recomputes the
// free-capture snapshot for the new side to move.
func (b *Board) endTurn() {
	b.turn = b.turn.Opponent()
	b.turnMoves = 0
	b.turnAutoMoves = 0
	b.turnPieces = EmptyBitboard
	b.refreshFreeCaptures()
}

package board

// LegalMoves returns every legal action for the side to move, in the priority order fixed by
// §4.5: mandatory bombardment removals, then mandatory free captures, then up to three normal
// actions or a Skip. Grounded on engine.py's generate_legal_moves.
func (b *Board) LegalMoves() []Move {
	if targets := b.BombardmentTargets(); !targets.IsEmpty() {
		return bombardmentMoves(targets)
	}
	if enemies := b.FreeCaptureEnemies(); !enemies.IsEmpty() {
		return freeCaptureMoves(enemies)
	}
	return b.normalActions()
}

// bombardmentMoves enumerates one AutoCapture{bombard} per enemy piece currently under fire.
func bombardmentMoves(targets Bitboard) []Move {
	var moves []Move
	for _, sq := range targets.Squares() {
		moves = append(moves, AutoCaptureBombard(sq))
	}
	return moves
}

// freeCaptureMoves enumerates one AutoCapture{free} per currently capturable enemy.
func freeCaptureMoves(enemies Bitboard) []Move {
	var moves []Move
	for _, sq := range enemies.Squares() {
		moves = append(moves, AutoCaptureFree(sq))
	}
	return moves
}

// normalActions enumerates Reinforce / Move / MoveAndOrient / Skip, per §4.4/§4.8.
func (b *Board) normalActions() []Move {
	var moves []Move
	moves = append(moves, b.reinforceMoves()...)
	moves = append(moves, b.pieceMoves()...)
	moves = append(moves, SkipMove())
	return moves
}

// reinforceMoves enumerates every legal Reinforce action, including side-effect capture
// enumeration (§4.8).
func (b *Board) reinforceMoves() []Move {
	side := b.turn
	backRank := side.BackRank()
	targets := BitRank(backRank) &^ b.Occupied() &^ b.bombardedBy[side.Opponent()]

	var moves []Move
	for _, t := range b.reserveTypesAvailable() {
		for _, to := range targets.Squares() {
			base := Reinforce(t, to)
			if !t.IsInfantry() {
				moves = append(moves, base)
				continue
			}
			moves = append(moves, b.expandSideEffectCaptures(base, to, to)...)
		}
	}
	return moves
}

// reserveTypesAvailable returns the reservable piece types with positive count for the side
// to move.
func (b *Board) reserveTypesAvailable() []PieceType {
	return b.reserves[b.turn].Types()
}

// pieceMoves enumerates every legal Move / MoveAndOrient action for pieces not yet acted on
// this turn.
func (b *Board) pieceMoves() []Move {
	side := b.turn
	actable := b.occupiedBy[side] &^ b.turnPieces

	var moves []Move
	for _, from := range actable.Squares() {
		t, _, _ := b.PieceAt(from)
		dests := b.MoveMask(from, t, side)

		if t.IsArtillery() {
			moves = append(moves, b.artilleryMoves(from, t, dests)...)
			continue
		}

		for _, to := range dests.Squares() {
			base := MoveTo(from, to)
			if !t.IsInfantry() {
				moves = append(moves, base)
				continue
			}
			moves = append(moves, b.expandSideEffectCaptures(base, from, to)...)
		}
	}
	return moves
}

// artilleryMoves enumerates Move-with-reorientation actions: every destination paired with
// every orientation, plus in-place rotation (from == to, orientation strictly different from
// current).
func (b *Board) artilleryMoves(from Square, t PieceType, dests Bitboard) []Move {
	cur, _ := b.OrientationAt(from)

	var moves []Move
	for _, to := range dests.Squares() {
		for o := OrientN; o < NumOrientations; o++ {
			if to == from && o == cur {
				continue // pure no-op forbidden
			}
			moves = append(moves, MoveAndOrientTo(from, to, o))
		}
	}
	for o := OrientN; o < NumOrientations; o++ {
		if o == cur {
			continue
		}
		moves = append(moves, MoveAndOrientTo(from, from, o))
	}
	return moves
}

// expandSideEffectCaptures enumerates base once with no capture preference, plus once per
// eligible enemy adjacent to "to" under the hypothetical free-capture configuration induced by
// landing the mover at "to" (§4.8). from==to is used for Reinforce (no relocation).
func (b *Board) expandSideEffectCaptures(base Move, from, to Square) []Move {
	moves := []Move{base}

	relocate := &Relocation{From: from, To: to}
	hypothetical := b.computeFreeCaptures(b.turn, relocate)

	eligible := hypothetical.Enemies & AdjacentSteps(to)
	for _, capture := range eligible.Squares() {
		moves = append(moves, base.WithCapture(capture))
	}
	return moves
}

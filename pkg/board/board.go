// Package board implements the GHQ rules engine: board representation and mutation
// primitives, bombardment geometry, the engagement and free-capture resolvers, the per-turn
// move generator and applier, and terminal detection.
package board

// freeCaptureSnapshot caches the active free-capture configuration for the side to move, per
// §4.6/§4.9/§6.3: the union, across every cluster with positive allowance, of (a) the cluster
// member squares (both sides' infantry), (b) the capturable enemy squares, and (c) the
// allowance-selected attacker squares still able to fire.
type freeCaptureSnapshot struct {
	Clusters  Bitboard
	Enemies   Bitboard
	Allowance Bitboard
}

// Board is the authoritative, mutable game state. It is a plain value: cheap to deep-copy
// (a constant number of 64-bit words plus two small reserve vectors), per §5. All mutation
// goes through Push; queries are pure. Unlike the teacher's Board (a Fork/PushMove/PopMove
// linked history of positions, built for 3-fold-repetition and 50-move draw detection), GHQ
// keeps a single current state plus a flat move history list: there is no repetition rule,
// no undo stack beyond that list ("undo is out of scope" per spec.md §1), and no position
// forking in the hot path.
type Board struct {
	pieces     [NumPieceTypes]Bitboard
	occupiedBy [NumSides]Bitboard

	orient0, orient1, orient2 Bitboard

	bombardedBy   [NumSides]Bitboard
	adjToInfantry [NumSides]Bitboard

	reserves [NumSides]ReserveFleet

	turn          Side
	turnMoves     int
	turnAutoMoves int
	turnPieces    Bitboard

	freeCapture freeCaptureSnapshot

	history []Move

	didOfferDraw  bool
	didAcceptDraw bool
}

// Placement is a single occupied square, used to construct a Board directly (bypassing text
// notation, which lives in the sibling pkg/notation package).
type Placement struct {
	Square      Square
	Side        Side
	Type        PieceType
	Orientation Orientation // meaningful only if Type.IsArtillery()
}

// NewBoard constructs a board from explicit placements, reserves, and the side to move. It
// validates the structural invariants of §3 (at most one piece per square, exactly one HQ
// per side) but not full legality.
func NewBoard(placements []Placement, reserves [NumSides]ReserveFleet, turn Side) (*Board, error) {
	b := &Board{reserves: reserves, turn: turn}

	var hq [NumSides]int
	seen := EmptyBitboard
	for _, p := range placements {
		if !p.Square.IsValid() {
			return nil, &OutOfBoundsError{What: "square", Value: int(p.Square)}
		}
		if seen.IsSet(p.Square) {
			return nil, &ParseError{Input: p.Square.String(), Cause: errTwoPiecesOneSquare}
		}
		seen = seen.Set(p.Square)
		b.setPieceAt(p.Square, p.Side, p.Type, p.Orientation)
		if p.Type == HQ {
			hq[p.Side]++
		}
	}
	if hq[Red] != 1 || hq[Blue] != 1 {
		return nil, &ParseError{Input: "placements", Cause: errNeedExactlyOneHQPerSide}
	}
	b.refreshFreeCaptures()
	return b, nil
}

// StartingBoard returns the canonical GHQ starting position (see spec.md §6.1's example FEN).
func StartingBoard() *Board {
	var placements []Placement
	placements = append(placements,
		Placement{Square: A8, Side: Blue, Type: HQ},
		Placement{Square: B8, Side: Blue, Type: Artillery, Orientation: OrientS},
	)
	for _, f := range []File{FileA, FileB, FileC} {
		placements = append(placements, Placement{Square: NewSquare(f, Rank7), Side: Blue, Type: Infantry})
	}
	placements = append(placements,
		Placement{Square: H1, Side: Red, Type: HQ},
		Placement{Square: G1, Side: Red, Type: Artillery, Orientation: OrientN},
	)
	for _, f := range []File{FileF, FileG, FileH} {
		placements = append(placements, Placement{Square: NewSquare(f, Rank2), Side: Red, Type: Infantry})
	}

	reserves := [NumSides]ReserveFleet{NewStartingReserve(), NewStartingReserve()}
	b, err := NewBoard(placements, reserves, Red)
	if err != nil {
		panic(err) // the starting position is fixed; this cannot fail.
	}
	return b
}

// Copy returns a deep copy (cheap: no pointers except the history slice).
func (b *Board) Copy() *Board {
	c := *b
	c.history = append([]Move(nil), b.history...)
	return &c
}

func (b *Board) Turn() Side                         { return b.turn }
func (b *Board) TurnMoves() int                     { return b.turnMoves }
func (b *Board) TurnAutoMoves() int                 { return b.turnAutoMoves }
func (b *Board) TurnPieces() Bitboard               { return b.turnPieces }
func (b *Board) Occupied() Bitboard                 { return b.occupiedBy[Red] | b.occupiedBy[Blue] }
func (b *Board) OccupiedBy(s Side) Bitboard         { return b.occupiedBy[s] }
func (b *Board) BombardedBy(s Side) Bitboard        { return b.bombardedBy[s] }
func (b *Board) AdjacentToInfantry(s Side) Bitboard { return b.adjToInfantry[s] }
func (b *Board) Reserve(s Side) ReserveFleet        { return b.reserves[s] }
func (b *Board) History() []Move                    { return append([]Move(nil), b.history...) }
func (b *Board) DidOfferDraw() bool                 { return b.didOfferDraw }
func (b *Board) DidAcceptDraw() bool                { return b.didAcceptDraw }

// PieceMask returns the occupancy mask for a single piece type, across both sides.
func (b *Board) PieceMask(t PieceType) Bitboard {
	return b.pieces[t]
}

// PieceAt returns the piece type and side at sq, if any.
func (b *Board) PieceAt(sq Square) (PieceType, Side, bool) {
	if !b.Occupied().IsSet(sq) {
		return NoPieceType, 0, false
	}
	side := Red
	if b.occupiedBy[Blue].IsSet(sq) {
		side = Blue
	}
	for t := HQ; t <= HeavyArtillery; t++ {
		if b.pieces[t].IsSet(sq) {
			return t, side, true
		}
	}
	return NoPieceType, 0, false
}

// OrientationAt returns the orientation of the artillery at sq, if any.
func (b *Board) OrientationAt(sq Square) (Orientation, bool) {
	t, _, ok := b.PieceAt(sq)
	if !ok || !t.IsArtillery() {
		return 0, false
	}
	return decodeOrientation(b.orient0.IsSet(sq), b.orient1.IsSet(sq), b.orient2.IsSet(sq)), true
}

// HQSquare returns the square of side's HQ, if still on the board.
func (b *Board) HQSquare(s Side) (Square, bool) {
	mask := b.pieces[HQ] & b.occupiedBy[s]
	if mask.IsEmpty() {
		return 0, false
	}
	return mask.LSB(), true
}

// FreeCaptureEnemies returns the currently capturable enemy squares for the side to move.
func (b *Board) FreeCaptureEnemies() Bitboard {
	return b.freeCapture.Enemies
}

// FreeCaptureAllowance returns the currently fire-able attacker squares for the side to move.
func (b *Board) FreeCaptureAllowance() Bitboard {
	return b.freeCapture.Allowance
}

// BombardmentTargets returns the enemy-occupied squares under the side-to-move's bombardment
// mask: the pieces that must be removed via AutoCapture{bombard} before anything else, §4.5(1).
func (b *Board) BombardmentTargets() Bitboard {
	return b.bombardedBy[b.turn] & b.occupiedBy[b.turn.Opponent()]
}

package board

// Board-wide geometric transforms, grounded on engine.py's apply_transform/mirror/
// rotate_90_clockwise and spec.md's invariant 7. Each returns a new Board; the receiver is
// left untouched.

var reflectVertical = [NumOrientations]Orientation{4, 3, 2, 1, 0, 7, 6, 5}
var reflectHorizontal = [NumOrientations]Orientation{0, 7, 6, 5, 4, 3, 2, 1}

func rotate90Orientation(o Orientation) Orientation {
	return Orientation((uint8(o) + 2) % uint8(NumOrientations))
}

// FlipVertical mirrors the board across the horizontal axis (rank r -> rank 7-r); files and
// side-to-move are unchanged.
func (b *Board) FlipVertical() *Board {
	return b.transform(
		func(sq Square) Square { return NewSquare(sq.File(), Rank(7-int(sq.Rank()))) },
		func(o Orientation) Orientation { return reflectVertical[o] },
		false,
	)
}

// FlipHorizontal mirrors the board across the vertical axis (file f -> file 7-f); ranks and
// side-to-move are unchanged.
func (b *Board) FlipHorizontal() *Board {
	return b.transform(
		func(sq Square) Square { return NewSquare(File(7-int(sq.File())), sq.Rank()) },
		func(o Orientation) Orientation { return reflectHorizontal[o] },
		false,
	)
}

// Rotate90Clockwise rotates the whole board 90 degrees clockwise: (file, rank) -> (rank,
// 7-file). Each artillery's orientation advances by the same quarter turn (the bit-plane
// rotate-90 formula of §9 applied after repositioning, equivalent to index+2 mod 8).
func (b *Board) Rotate90Clockwise() *Board {
	return b.transform(
		func(sq Square) Square { return NewSquare(File(int(sq.Rank())), Rank(7-int(sq.File()))) },
		rotate90Orientation,
		false,
	)
}

// Mirror composes FlipVertical and FlipHorizontal (equivalently, a 180 degree rotation of
// squares) with swapping red and blue: occupancy, reserves, and side to move all swap
// colour. Used by invariant 7: the resulting position's legal-move set is isomorphic to the
// original's under the same square transform.
func (b *Board) Mirror() *Board {
	return b.transform(
		func(sq Square) Square {
			return NewSquare(File(7-int(sq.File())), Rank(7-int(sq.Rank())))
		},
		func(o Orientation) Orientation { return reflectHorizontal[reflectVertical[o]] },
		true,
	)
}

// transform rebuilds a board by remapping every occupied square through squareMap and every
// artillery orientation through reflectOrientation, optionally swapping sides.
func (b *Board) transform(squareMap func(Square) Square, reflectOrientation func(Orientation) Orientation, swapSides bool) *Board {
	out := &Board{turn: b.turn}

	for _, sq := range b.Occupied().Squares() {
		t, side, _ := b.PieceAt(sq)
		newSq := squareMap(sq)
		newSide := side
		if swapSides {
			newSide = side.Opponent()
		}

		o := Orientation(0)
		if t.IsArtillery() {
			old, _ := b.OrientationAt(sq)
			o = reflectOrientation(old)
		}
		out.setPieceAt(newSq, newSide, t, o)
	}

	out.reserves = b.reserves
	if swapSides {
		out.reserves[Red], out.reserves[Blue] = b.reserves[Blue], b.reserves[Red]
		out.turn = b.turn.Opponent()
	}

	out.turnMoves = b.turnMoves
	out.turnAutoMoves = b.turnAutoMoves
	for _, sq := range b.turnPieces.Squares() {
		out.turnPieces = out.turnPieces.Set(squareMap(sq))
	}
	out.didOfferDraw = b.didOfferDraw
	out.didAcceptDraw = b.didAcceptDraw
	out.history = append([]Move(nil), b.history...)

	out.refreshFreeCaptures()
	return out
}

package board

// BombardmentTarget computes the square an artillery at sq, facing o, with the given range,
// bombards, per §4.3. Grounded on engine.py's get_bombardment_target/find_valid_diagonal.
//
// Cardinal orientations move `rng` squares along the axis, then clamp each coordinate to
// [0,7]. Diagonal orientations try `rng`, `rng-1`, ... squares until both coordinates fit on
// the board; if even a distance of 1 would overshoot, there is no target.
func BombardmentTarget(sq Square, o Orientation, rng int) (Square, bool) {
	f, r := int(sq.File()), int(sq.Rank())
	df, dr := o.delta()

	if o.IsCardinal() {
		nf := clamp(f+df*rng, 0, 7)
		nr := clamp(r+dr*rng, 0, 7)
		return NewSquare(File(nf), Rank(nr)), true
	}

	for d := rng; d >= 1; d-- {
		nf, nr := f+df*d, r+dr*d
		if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
			return NewSquare(File(nf), Rank(nr)), true
		}
	}
	return 0, false
}

// BombardedSegment returns the closed line segment from the artillery at sq (exclusive) to its
// bombardment target (inclusive), given its orientation and range. Empty if there is no target.
func BombardedSegment(sq Square, o Orientation, rng int) Bitboard {
	target, ok := BombardmentTarget(sq, o, rng)
	if !ok {
		return EmptyBitboard
	}
	return BetweenInclusiveEnd(sq, target)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

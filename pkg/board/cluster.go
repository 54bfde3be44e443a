package board

// infantryCluster is a maximal connected component of the bipartite infantry-adjacency graph
// (cross-colour orthogonal edges only), grounded on engine.py's
// _find_adjacency_clusters/_find_free_captures_for_cluster.
type infantryCluster struct {
	attackers Bitboard // side-to-move infantry in this cluster
	defenders Bitboard // opponent infantry in this cluster
	allowance int      // max(a-d, 0)
}

// findClusters partitions attacker ∪ defender infantry squares into clusters by flood fill
// over cross-colour orthogonal adjacency only (friend-to-friend adjacency does not create a
// cluster edge).
func findClusters(attackers, defenders Bitboard) []infantryCluster {
	all := attackers | defenders
	visited := EmptyBitboard

	var clusters []infantryCluster
	for _, start := range all.Squares() {
		if visited.IsSet(start) {
			continue
		}
		frontier := []Square{start}
		visited = visited.Set(start)

		var a, d Bitboard
		for len(frontier) > 0 {
			sq := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			if attackers.IsSet(sq) {
				a = a.Set(sq)
			} else {
				d = d.Set(sq)
			}

			var opposite Bitboard
			if attackers.IsSet(sq) {
				opposite = defenders
			} else {
				opposite = attackers
			}
			for _, n := range (AdjacentSteps(sq) & opposite).Squares() {
				if !visited.IsSet(n) {
					visited = visited.Set(n)
					frontier = append(frontier, n)
				}
			}
		}

		allowance := a.PopCount() - d.PopCount()
		if allowance < 0 {
			allowance = 0
		}
		clusters = append(clusters, infantryCluster{attackers: a, defenders: d, allowance: allowance})
	}
	return clusters
}

// isArtilleryPointedAt reports whether some opponent artillery has its forward-cardinal
// square equal to target, per §4.7. Diagonal orientations never gate captures.
func (b *Board) isArtilleryPointedAt(opponent Side, target Square) bool {
	artillery := b.allArtillery() & b.occupiedBy[opponent]
	for _, sq := range artillery.Squares() {
		o, _ := b.OrientationAt(sq)
		if !o.IsCardinal() {
			continue
		}
		df, dr := o.delta()
		f, r := int(sq.File())+df, int(sq.Rank())+dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		if NewSquare(File(f), Rank(r)) == target {
			return true
		}
	}
	return false
}

// computeFreeCaptures computes the free-capture snapshot for side, optionally applying a
// hypothetical relocation first (used by the generator to enumerate side-effect captures
// without mutating the board, per §9's "must not persist state" design note).
func (b *Board) computeFreeCaptures(side Side, relocate *Relocation) freeCaptureSnapshot {
	attackers := b.allInfantry() & b.occupiedBy[side]
	defenders := b.allInfantry() & b.occupiedBy[side.Opponent()]

	if relocate != nil {
		attackers = attackers.Clear(relocate.From).Set(relocate.To)
	}

	clusters := findClusters(attackers, defenders)

	engaged := b.MaximizeEngagement(side, relocate)
	unengagedAttackers := attackers &^ engaged[side]

	var snap freeCaptureSnapshot

	hqSquare, hqOK := b.HQSquare(side.Opponent())
	hqWeight := 0

	for _, c := range clusters {
		if c.allowance <= 0 {
			continue
		}
		snap.Clusters |= c.attackers | c.defenders

		selected := c.attackers.MSBN(c.allowance)
		snap.Allowance |= selected

		for _, a := range c.attackers.Squares() {
			capturable := AdjacentSteps(a) & c.defenders
			for _, e := range capturable.Squares() {
				if b.isArtilleryPointedAt(side.Opponent(), a) {
					continue
				}
				snap.Enemies = snap.Enemies.Set(e)
			}
		}

		if hqOK && (AdjacentSteps(hqSquare)&c.attackers&unengagedAttackers) != EmptyBitboard {
			k := (AdjacentSteps(hqSquare) & c.attackers & unengagedAttackers).PopCount()
			weight := 2
			if c.allowance == 1 {
				weight = 1
			}
			hqWeight += k * weight
		}
	}

	if hqOK && hqWeight > 1 {
		snap.Enemies = snap.Enemies.Set(hqSquare)
	}

	return snap
}

// refreshFreeCaptures recomputes the live free-capture snapshot for the side to move.
func (b *Board) refreshFreeCaptures() {
	b.freeCapture = b.computeFreeCaptures(b.turn, nil)
}

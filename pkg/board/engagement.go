package board

// MaximizeEngagement computes, for the current board, which infantry squares on each side are
// "engaged" (matched in a maximum bipartite matching over orthogonal adjacency between
// opposing infantry). If relocate is present, the attacker at relocate.From is treated as
// having moved to relocate.To instead (relocate.From excluded from the attacker set,
// relocate.To included), and is explored last in the matching order so that it yields matches
// preferentially to other attackers -- the deterministic tie-break of §4.6/§9.
func (b *Board) MaximizeEngagement(side Side, relocate *Relocation) (engaged [NumSides]Bitboard) {
	attackers := b.allInfantry() & b.occupiedBy[side]
	defenders := b.allInfantry() & b.occupiedBy[side.Opponent()]

	attackerList := orderedSquares(attackers)
	if relocate != nil {
		attackerList = removeSquare(attackerList, relocate.From)
		if !containsSquare(attackerList, relocate.To) {
			attackerList = append(attackerList, relocate.To)
		}
	}

	// adjacency[i] lists defender squares adjacent to attackerList[i], in exploration order.
	// The relocated attacker's would-be partner is appended (explored last within its own
	// list); for every other attacker, neighbours equal to relocate.To are inserted first.
	adjacency := make([][]Square, len(attackerList))
	for i, a := range attackerList {
		neighbours := AdjacentSteps(a) & defenders
		var list []Square
		isRelocated := relocate != nil && a == relocate.To
		for _, d := range orderedSquares(neighbours) {
			if isRelocated {
				list = append(list, d)
			} else if relocate != nil && d == relocate.To {
				list = append([]Square{d}, list...)
			} else {
				list = append(list, d)
			}
		}
		adjacency[i] = list
	}

	matchTo := map[Square]Square{} // defender -> attacker
	for i := range attackerList {
		visited := map[Square]bool{}
		bpm(i, attackerList, adjacency, visited, matchTo)
	}

	var red, blue Bitboard
	for defender, attacker := range matchTo {
		red = red.Set(attacker)
		blue = blue.Set(defender)
	}
	if side == Red {
		engaged[Red], engaged[Blue] = red, blue
	} else {
		engaged[Blue], engaged[Red] = red, blue
	}
	return engaged
}

// Relocation describes a hypothetical attacker move used to recompute engagement/free-capture
// consequences without mutating the board (§9 OQ: capture-preference hypotheticals must not
// persist state).
type Relocation struct {
	From, To Square
}

// bpm is the standard augmenting-path DFS for bipartite maximum matching (one augmenting path
// per attacker, visited set scoped per attempt).
func bpm(u int, attackerList []Square, adjacency [][]Square, visited map[Square]bool, matchTo map[Square]Square) bool {
	for _, v := range adjacency[u] {
		if visited[v] {
			continue
		}
		visited[v] = true

		if existing, ok := matchTo[v]; !ok {
			matchTo[v] = attackerList[u]
			return true
		} else {
			// Find existing's index to retry its augmenting path.
			idx := -1
			for i, a := range attackerList {
				if a == existing {
					idx = i
					break
				}
			}
			if idx >= 0 && bpm(idx, attackerList, adjacency, visited, matchTo) {
				matchTo[v] = attackerList[u]
				return true
			}
		}
	}
	return false
}

func orderedSquares(mask Bitboard) []Square {
	return mask.Squares()
}

func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}

func removeSquare(list []Square, sq Square) []Square {
	var ret []Square
	for _, s := range list {
		if s != sq {
			ret = append(ret, s)
		}
	}
	return ret
}

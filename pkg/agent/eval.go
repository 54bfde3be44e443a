package agent

import (
	"strings"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/config"
)

// defaultPieceValue mirrors engine.py's PIECE_VALUES, scaled by 100 to keep the evaluator
// in integer centipoints.
var defaultPieceValue = [board.NumPieceTypes]int{
	board.HQ:               10000,
	board.Infantry:         100,
	board.ArmoredInfantry:  200,
	board.AirborneInfantry: 400,
	board.Artillery:        300,
	board.ArmoredArtillery: 400,
	board.HeavyArtillery:   500,
}

// positionGradient mirrors engine.py's POSITION_GRADIENT (rank 1 at 0, rank 8 at 0.65-0.70,
// favouring advanced units), scaled by 100 and indexed the same way our Square numbering
// already matches the original's rank*8+file layout. Only the first 64 of the Python
// source's 72 literal entries are ever read there (square indices top out at 63); the
// dead trailing row is simply not carried over.
var positionGradient = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 7, 9, 10, 10, 9, 7, 5,
	15, 17, 19, 20, 20, 19, 17, 15,
	25, 27, 29, 30, 30, 29, 27, 25,
	35, 37, 39, 40, 40, 39, 37, 35,
	45, 47, 49, 50, 50, 49, 47, 45,
	55, 57, 59, 60, 60, 59, 57, 55,
	65, 67, 69, 70, 70, 69, 67, 65,
}

// positionMultiplier10 mirrors the per-piece-type multiplier in _get_color_score, scaled by
// 10 (artillery 1.0, most units 0.5, airborne infantry -3.0, HQ -0.2).
func positionMultiplier10(t board.PieceType) int {
	switch {
	case t.IsArtillery():
		return 10
	case t == board.AirborneInfantry:
		return -30
	case t == board.HQ:
		return -2
	default:
		return 5
	}
}

// gradientAt returns the positional bonus for side's piece sitting on sq: engine.py mirrors
// POSITION_GRADIENT for blue (POSITION_GRADIENT[::-1]) so that a square has the same bonus
// counted from the owner's own back rank outward.
func gradientAt(side board.Side, sq board.Square) int {
	if side == board.Red {
		return positionGradient[sq]
	}
	return positionGradient[63-sq]
}

// Evaluator scores a position, with a material table tunable via pkg/config.
type Evaluator struct {
	pieceValue [board.NumPieceTypes]int
}

// NewEvaluator builds an Evaluator from cfg, overriding defaultPieceValue entry-by-entry
// from cfg.Agent.PieceValues (keyed by the piece's single-letter symbol, e.g. "h" for heavy
// artillery). Unset entries keep the default.
func NewEvaluator(cfg config.Config) *Evaluator {
	e := &Evaluator{pieceValue: defaultPieceValue}
	for t := board.HQ; t <= board.HeavyArtillery; t++ {
		if v, ok := cfg.Agent.PieceValues[strings.ToLower(t.String())]; ok {
			e.pieceValue[t] = v
		}
	}
	return e
}

// defaultEvaluator is the zero-config Evaluator, used by the package-level Evaluate.
var defaultEvaluator = &Evaluator{pieceValue: defaultPieceValue}

// Evaluate scores the position from side's perspective: positive means side is better
// placed. Grounded on engine.py's evaluate_board/_get_color_score, minus the mid-evaluation
// auto-capture resolution the Python original performs by mutating a scratch copy of the
// board (out of scope for a one-ply evaluator, per the sample agents' no-search-tree design).
func Evaluate(b *board.Board, side board.Side) int {
	return defaultEvaluator.Score(b, side)
}

// Score scores the position from side's perspective using e's material table.
func (e *Evaluator) Score(b *board.Board, side board.Side) int {
	return e.colorScore(b, side) - e.colorScore(b, side.Opponent())
}

func (e *Evaluator) colorScore(b *board.Board, side board.Side) int {
	score := 0
	for t := board.HQ; t <= board.HeavyArtillery; t++ {
		mask := b.PieceMask(t) & b.OccupiedBy(side)
		score += e.pieceValue[t] * mask.PopCount()

		mult := positionMultiplier10(t)
		for _, sq := range mask.Squares() {
			score += gradientAt(side, sq) * mult / 10
		}
	}

	for _, sq := range b.BombardedBy(side).Squares() {
		score += gradientAt(side, sq)
	}

	return score
}

// Package agent provides simple, non-searching move pickers for a board.Board: a uniform
// random chooser and a one-ply greedy evaluator. Grounded on engine.py's RandomPlayer and
// ValuePlayer; neither agent here builds a search tree, consistent with spec.md's "no
// search/strategy engine" Non-goal — these are sample opponents, not the product.
package agent

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/config"
)

// Agent picks the next move to play in a position.
type Agent interface {
	// Name identifies the agent, for logging and UIs.
	Name() string
	// NextMove chooses one of b.LegalMoves(). It must not mutate b.
	NextMove(ctx context.Context, b *board.Board) (board.Move, error)
}

// RandomAgent picks uniformly at random among the legal moves. Grounded on engine.py's
// RandomPlayer.get_next_move.
type RandomAgent struct {
	Rand *rand.Rand // nil uses the package-level source
}

// NewRandomAgent builds a RandomAgent seeded from cfg.Agent.RandomSeed; a zero seed uses the
// package-level source, matching Python's bare random.choice (no explicit seed).
func NewRandomAgent(cfg config.Config) *RandomAgent {
	if cfg.Agent.RandomSeed == 0 {
		return &RandomAgent{}
	}
	return &RandomAgent{Rand: rand.New(rand.NewSource(cfg.Agent.RandomSeed))}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) NextMove(_ context.Context, b *board.Board) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("agent: no legal moves available")
	}
	if a.Rand != nil {
		return moves[a.Rand.Intn(len(moves))], nil
	}
	return moves[rand.Intn(len(moves))], nil
}

// GreedyAgent plays the move that maximises its Evaluator one ply deep, from its own side's
// perspective. Grounded on engine.py's ValuePlayer.get_next_move, which copies the board,
// pushes each candidate move, and keeps the move yielding the highest (negated, since the
// side to move flips) evaluate_board score.
type GreedyAgent struct {
	Side board.Side

	// Eval scores a resulting position. Nil uses the package default material table.
	Eval *Evaluator
}

func (a *GreedyAgent) Name() string { return "greedy" }

func (a *GreedyAgent) NextMove(_ context.Context, b *board.Board) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("agent: no legal moves available")
	}

	eval := a.Eval
	if eval == nil {
		eval = defaultEvaluator
	}

	best := moves[0]
	bestScore := minInt
	for _, m := range moves {
		next := b.Copy()
		if err := next.Push(m); err != nil {
			return board.Move{}, fmt.Errorf("agent: %w", err)
		}
		score := eval.Score(next, a.Side)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, nil
}

const minInt = -1 << 31

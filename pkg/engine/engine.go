// Package engine provides a stateful facade around a single pkg/board.Board, suitable for
// driving from a REPL or a long-lived server session. Grounded on the teacher's
// pkg/engine/engine.go (functional-option constructor, Options, Reset/Move/Board/Position
// shape), stripped of everything tied to tree search (no Analyze, no transposition table,
// no zobrist hash) since spec.md names "no search tree" a Non-goal.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/notation"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// StartingPosition is the notation.Decode-able position New starts from; empty means the
	// standard starting position. Reset("") always uses the standard starting position.
	StartingPosition string
}

func (o Options) String() string {
	return fmt.Sprintf("{startingPosition=%v}", o.StartingPosition)
}

// Engine wraps a single mutable board.Board behind a mutex; the board's own move history
// drives a replay-based TakeBack.
type Engine struct {
	name, author string
	opts         Options

	b  *board.Board
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New constructs an Engine at the standard GHQ starting position (or opts.StartingPosition,
// if set).
func New(ctx context.Context, name, author string, opts ...Option) (*Engine, error) {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}

	if err := e.Reset(ctx, e.opts.StartingPosition); err != nil {
		return nil, err
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e, nil
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns a copy of the current board, safe for the caller to inspect or mutate.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Copy()
}

// Position returns the current position in notation.Encode format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return notation.Encode(e.b)
}

// Reset resets the engine to a position string, or the standard starting position if empty.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if position == "" {
		e.b = board.StartingBoard()
		logw.Infof(ctx, "Reset to starting position: %v", e.b)
		return nil
	}

	b, err := notation.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.b = b

	logw.Infof(ctx, "Reset: %v", e.b)
	return nil
}

// Move applies a single move, given in notation.ParseMove format.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := notation.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	legal := false
	for _, m := range e.b.LegalMoves() {
		if m.Equals(candidate) {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal move: %v", move)
	}

	if err := e.b.Push(candidate); err != nil {
		return fmt.Errorf("illegal move: %w", err)
	}

	logw.Infof(ctx, "Move %v: %v", candidate, e.b)
	return nil
}

// TakeBack undoes the latest move by replaying the remaining history from the starting
// position. Board keeps only a flat history list (spec §9: no push/pop node stack), so this
// is a convenience replay rather than an O(1) pop.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	history := e.b.History()
	if len(history) == 0 {
		return fmt.Errorf("no move to take back")
	}
	history = history[:len(history)-1]

	b := board.StartingBoard()
	for _, m := range history {
		if err := b.Push(m); err != nil {
			return fmt.Errorf("engine: replay failed: %w", err)
		}
	}
	e.b = b

	logw.Infof(ctx, "Takeback: %v", e.b)
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/notation"
)

// perftCommand is a move generator debugging tool. Grounded on the teacher's cmd/perft,
// adapted to GHQ's single LegalMoves generator (no separate pseudo-legal pass).
type perftCommand struct {
	Depth    int    `short:"d" long:"depth" default:"3" description:"Search depth"`
	Divide   bool   `long:"divide" description:"Print per-move subtree counts at the final depth"`
	Position string `short:"p" long:"position" description:"Start position (default: standard GHQ setup)"`
}

func (c *perftCommand) Execute(args []string) error {
	b, err := startingOrDecode(c.Position)
	if err != nil {
		return err
	}

	for depth := 1; depth <= c.Depth; depth++ {
		start := time.Now()
		nodes := perft(b, depth, c.Divide && depth == c.Depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", notation.Encode(b), depth, nodes, elapsed.Microseconds())
	}
	return nil
}

func startingOrDecode(position string) (*board.Board, error) {
	if position == "" {
		return board.StartingBoard(), nil
	}
	return notation.Decode(position)
}

func perft(b *board.Board, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range b.LegalMoves() {
		next := b.Copy()
		if err := next.Push(m); err != nil {
			continue
		}
		count := perft(next, depth-1, false)
		if divide {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}

func addPerftCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("perft",
		"Count legal move tree nodes at increasing depth",
		"Runs the move generator to the given depth, printing node counts per ply.\n"+
			"Useful for validating the move generator against known GHQ perft results.",
		&perftCommand{})
	if err != nil {
		panic(err)
	}
}

// Command ghq is a CLI for the GHQ rules engine: an interactive play REPL, a move
// generator perft counter, and a one-shot board renderer. Grounded on
// neper-stars-houston's cmd/houston sub-command wiring (go-flags, one addXCommand per
// verb) in place of the teacher's bare flag package, since cmd/ghq needs several
// independent sub-commands the way cmd/morlock never did.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/seekerror/build"
)

var version = build.NewVersion(0, 1, 0)

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("ghq %v\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "ghq"
	parser.LongDescription = "A rules engine, REPL, and move generator for the board game GHQ."

	addPlayCommand(parser)
	addPerftCommand(parser)
	addRenderCommand(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}

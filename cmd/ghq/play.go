package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/herohde/ghq/pkg/agent"
	"github.com/herohde/ghq/pkg/board"
	"github.com/herohde/ghq/pkg/config"
	"github.com/herohde/ghq/pkg/engine"
	"github.com/herohde/ghq/pkg/engine/console"
	"github.com/seekerror/logw"
)

type playCommand struct {
	Config   string `short:"c" long:"config" description:"Path to a TOML agent config file"`
	Opponent string `short:"o" long:"opponent" default:"none" description:"Opponent agent: none, random, or greedy"`
	Position string `short:"p" long:"position" description:"Start position (default: standard GHQ setup)"`
}

func (c *playCommand) Execute(args []string) error {
	ctx := context.Background()

	var cfg config.Config
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	var opponent agent.Agent
	switch c.Opponent {
	case "none":
		// No automated opponent; both sides are typed by the operator.
	case "random":
		opponent = agent.NewRandomAgent(cfg)
	case "greedy":
		// The opponent always answers for blue; red is the operator typing moves.
		opponent = &agent.GreedyAgent{Side: board.Blue, Eval: agent.NewEvaluator(cfg)}
	default:
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}

	e, err := engine.New(ctx, "ghq", "herohde", engine.WithOptions(engine.Options{StartingPosition: c.Position}))
	if err != nil {
		logw.Exitf(ctx, "Failed to start engine: %v", err)
	}

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, opponent, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	return nil
}

func addPlayCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("play",
		"Play an interactive game over stdin/stdout",
		"Starts a console REPL: reset/undo/print, 'go' to ask the configured\n"+
			"opponent agent for a move, or any move string to play it directly.",
		&playCommand{})
	if err != nil {
		panic(err)
	}
}

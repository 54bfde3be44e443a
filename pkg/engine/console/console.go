// Package console provides a line-oriented REPL driver for an engine.Engine, for manual
// play and debugging. Grounded on the teacher's pkg/engine/console/console.go command
// dispatch (reset/undo/print/quit, default-as-move), stripped of every search-specific
// command (analyze/depth/hash/noise/halt) since this engine never searches a tree.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/ghq/pkg/agent"
	"github.com/herohde/ghq/pkg/engine"
	"github.com/herohde/ghq/pkg/notation"
	"github.com/herohde/ghq/pkg/render"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging and manual play.
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	ag  agent.Agent // optional. "go" asks ag for the next move.
	out chan<- string
}

// NewDriver starts a Driver reading commands from in and writing responses to the returned
// channel. ag may be nil, in which case the "go" command is rejected.
func NewDriver(ctx context.Context, e *engine.Engine, ag agent.Agent, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		ag:          ag,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				// reset [<position>]

				pos := ""
				if len(args) > 0 {
					pos = strings.Join(args, " ")
				}
				if err := d.e.Reset(ctx, pos); err != nil {
					d.out <- fmt.Sprintf("invalid position: %v", line)
					break
				}
				d.printBoard(ctx)

			case "undo", "u":
				if err := d.e.TakeBack(ctx); err != nil {
					d.out <- fmt.Sprintf("cannot undo: %v", err)
					break
				}
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "go", "g":
				if d.ag == nil {
					d.out <- "no agent configured"
					break
				}
				b := d.e.Board()
				move, err := d.ag.NextMove(ctx, b)
				if err != nil {
					d.out <- fmt.Sprintf("agent failed: %v", err)
					break
				}
				if err := d.e.Move(ctx, move.String()); err != nil {
					d.out <- fmt.Sprintf("agent chose illegal move %v: %v", move, err)
					break
				}
				d.out <- fmt.Sprintf("%v plays %v", d.ag.Name(), move)
				d.printBoard(ctx)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume move if not a recognized command.

				if err := d.e.Move(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move: '%v'", cmd)
				} else {
					d.printBoard(ctx)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) printBoard(ctx context.Context) {
	b := d.e.Board()

	d.out <- ""
	d.out <- render.ASCII(b)
	d.out <- fmt.Sprintf("position: %v", notation.Encode(b))
	d.out <- ""
}

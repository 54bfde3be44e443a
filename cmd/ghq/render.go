package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/herohde/ghq/pkg/notation"
	"github.com/herohde/ghq/pkg/render"
)

type renderCommand struct {
	Unicode bool `short:"u" long:"unicode" description:"Use unicode piece glyphs instead of ASCII letters"`
	Args    struct {
		Position string `positional-arg-name:"position" description:"Position to render (default: standard GHQ setup)"`
	} `positional-args:"yes"`
}

func (c *renderCommand) Execute(args []string) error {
	b, err := startingOrDecode(c.Args.Position)
	if err != nil {
		return err
	}

	if c.Unicode {
		fmt.Println(render.Unicode(b))
	} else {
		fmt.Println(render.ASCII(b))
	}
	return nil
}

func addRenderCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("render",
		"Render a single position to stdout",
		"Decodes a position string and prints an ASCII or unicode board diagram.",
		&renderCommand{})
	if err != nil {
		panic(err)
	}
}

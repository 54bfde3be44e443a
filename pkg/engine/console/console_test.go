package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/herohde/ghq/pkg/engine"
	"github.com/herohde/ghq/pkg/engine/console"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, out <-chan string, timeout time.Duration) []string {
	t.Helper()

	var lines []string
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-out:
			if !ok {
				return lines
			}
			lines = append(lines, line)
		case <-deadline:
			return lines
		}
	}
}

func TestConsolePrintsBoardOnPrintCommand(t *testing.T) {
	ctx := context.Background()

	e, err := engine.New(ctx, "ghq", "test")
	require.NoError(t, err)

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, nil, in)

	in <- "print"
	in <- "quit"
	close(in)

	lines := drain(t, out, time.Second)
	require.NotEmpty(t, lines)

	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "position:")
}

func TestConsoleRejectsGoWithoutAgent(t *testing.T) {
	ctx := context.Background()

	e, err := engine.New(ctx, "ghq", "test")
	require.NoError(t, err)

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, nil, in)

	in <- "go"
	in <- "quit"
	close(in)

	lines := drain(t, out, time.Second)
	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "no agent configured")
}

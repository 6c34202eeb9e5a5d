package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T) (*Game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewGame(&buf, WithLogger(quietLogger())), &buf
}

// run feeds one command and returns only what it printed.
func run(g *Game, buf *bytes.Buffer, cmd string) string {
	buf.Reset()
	g.Process(cmd)
	return buf.String()
}

// scriptedReader answers ReadLine from a fixed list, then io.EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type countingScreen struct{ clears int }

func (s *countingScreen) Clear() { s.clears++ }

// allItemNames lists every item in the world and the inventory.
func allItemNames(g *Game) []string {
	var names []string
	for _, r := range g.World.Rooms {
		names = append(names, r.ItemNames()...)
	}
	return append(names, g.Inventory.Names()...)
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_InitialState(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, "Foyer", g.CurrentRoom.Name)
	assert.Equal(t, 0, g.Inventory.Len())
	assert.Equal(t, InventoryLimit, g.Inventory.Capacity())
	assert.True(t, g.IsPlaying())
	assert.NotEqual(t, g.ID, NewGame(nil).ID)
}

func TestGame_Start(t *testing.T) {
	g, buf := newTestGame(t)
	g.Start()
	out := lines(buf.String())
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, "Welcome to the adventure game!", out[0])
	assert.Equal(t, "Foyer: A dimly lit entrance hall with a dusty chandelier.", out[1])
}

func TestGame_RunUntilQuit(t *testing.T) {
	screen := &countingScreen{}
	var buf bytes.Buffer
	g := NewGame(&buf, WithLogger(quietLogger()), WithScreen(screen))
	in := &scriptedReader{lines: []string{"take old key", "quit", "no", "inventory", "quit", "yes", "look"}}

	require.NoError(t, g.Run(in))

	assert.False(t, g.IsPlaying())
	assert.Equal(t, []string{"look"}, in.lines, "nothing is read after the confirmed quit")
	assert.Equal(t, []string{"\n> ", "\n> ", "", "\n> ", "\n> ", ""}, in.prompts)
	assert.Equal(t, 5, screen.clears, "once at start and before every command, never before a quit answer")

	out := buf.String()
	assert.Contains(t, out, "Welcome to the adventure game!\n")
	assert.Contains(t, out, "You take the Old Key.\n")
	assert.Contains(t, out, "You are carrying:\n- Old Key\n")
	assert.Equal(t, []string{"Old Key"}, g.Inventory.Names())
}

func TestGame_RunEndsAtEndOfInput(t *testing.T) {
	g, _ := newTestGame(t)
	in := &scriptedReader{lines: []string{"north"}}

	require.NoError(t, g.Run(in))
	assert.False(t, g.IsPlaying())
	assert.Equal(t, "Library", g.CurrentRoom.Name)
}

func TestGame_RunEndOfInputDuringQuitPrompt(t *testing.T) {
	g, _ := newTestGame(t)
	require.NoError(t, g.Run(&scriptedReader{lines: []string{"quit"}}))
	assert.False(t, g.IsPlaying())
}

type failingReader struct{ err error }

func (r failingReader) ReadLine(string) (string, error) { return "", r.err }

func TestGame_RunReadError(t *testing.T) {
	g, _ := newTestGame(t)
	boom := errors.New("boom")
	err := g.Run(failingReader{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, g.IsPlaying(), "a broken input channel is not a quit")
}

func TestGame_WrapWidth(t *testing.T) {
	var buf bytes.Buffer
	g := NewGame(&buf, WithLogger(quietLogger()), WithWrapWidth(20))
	g.Process("north")
	buf.Reset()
	g.Process("inspect ancient book")
	for _, line := range lines(buf.String()) {
		assert.LessOrEqual(t, len(line), 20, line)
	}
	assert.Greater(t, len(lines(buf.String())), 1)
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "running", stateRunning.String())
	assert.Equal(t, "awaiting_quit_confirmation", stateAwaitingQuit.String())
	assert.Equal(t, "terminated", stateTerminated.String())
}

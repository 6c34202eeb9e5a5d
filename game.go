package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type sessionState int

const (
	stateRunning sessionState = iota
	stateAwaitingQuit
	stateTerminated
)

func (s sessionState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateAwaitingQuit:
		return "awaiting_quit_confirmation"
	case stateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Game owns everything a session mutates: where the player stands and what
// they carry. Nothing here is shared.
type Game struct {
	ID          uuid.UUID
	World       *World
	CurrentRoom *Room
	Inventory   *Inventory
	Out         io.Writer
	Screen      Screen

	state  sessionState
	styles styles
	log    *slog.Logger
}

type GameOption func(*Game)

func WithLogger(l *slog.Logger) GameOption {
	return func(g *Game) { g.log = l }
}

func WithScreen(s Screen) GameOption {
	return func(g *Game) { g.Screen = s }
}

func WithWrapWidth(width int) GameOption {
	return func(g *Game) { g.styles.width = width }
}

// NewGame builds a fresh world and places the player in its first room with
// empty hands. A nil out writes to stdout.
func NewGame(out io.Writer, opts ...GameOption) *Game {
	g := &Game{
		ID:        uuid.New(),
		World:     NewWorld(),
		Inventory: NewInventory(InventoryLimit),
		Out:       out,
		Screen:    nopScreen{},
		log:       slog.Default(),
	}
	g.CurrentRoom = g.World.Start()
	g.styles = newStyles(outWriter(g), defaultWrapWidth)
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With("session", g.ID.String())
	return g
}

func (g *Game) IsPlaying() bool {
	return g.state != stateTerminated
}

func (g *Game) AwaitingQuitConfirmation() bool {
	return g.state == stateAwaitingQuit
}

// Start prints the greeting and the opening room.
func (g *Game) Start() {
	outPrintln(g, "Welcome to the adventure game!")
	look(g)
}

// Process runs one line of input against the session. While a quit is
// pending the line is taken as the answer instead of a command.
func (g *Game) Process(line string) {
	input := normalizeInput(line)
	switch g.state {
	case stateTerminated:
		outPrintln(g, "The game is over.")
	case stateAwaitingQuit:
		g.confirmQuit(input)
	default:
		processCommand(g, input)
	}
}

func (g *Game) requestQuit() {
	g.state = stateAwaitingQuit
	outPrint(g, "Are you sure you want to quit? (yes/no): ")
}

func (g *Game) confirmQuit(answer string) {
	if answer == "yes" {
		g.state = stateTerminated
		g.log.Info("session ended", "reason", "quit")
		return
	}
	g.state = stateRunning
}

// Run drives the session from in until the player confirms a quit or the
// input runs dry. End of input ends the session quietly.
func (g *Game) Run(in LineReader) error {
	g.Screen.Clear()
	g.Start()
	for g.IsPlaying() {
		prompt := "\n> "
		if g.AwaitingQuitConfirmation() {
			prompt = ""
		}
		line, err := in.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.state = stateTerminated
				g.log.Info("session ended", "reason", "end of input")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if !g.AwaitingQuitConfirmation() {
			g.Screen.Clear()
		}
		g.Process(line)
	}
	return nil
}

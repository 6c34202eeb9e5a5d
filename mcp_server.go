package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute, or the answer to a pending quit prompt"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before anything else"`
}

type CommandOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current game state"`
}

type MCPConfig struct {
	Addr         string
	Path         string
	Token        string
	Origins      []string
	JSONResponse bool
	Stateless    bool
}

// MCPServer serializes tool calls onto a single game session.
type MCPServer struct {
	mu   sync.Mutex
	game *Game
	log  *slog.Logger
}

func NewMCPServer(logger *slog.Logger) *MCPServer {
	s := &MCPServer{log: logger}
	s.game = s.newGame(io.Discard)
	return s
}

func (s *MCPServer) newGame(out io.Writer) *Game {
	return NewGame(out, WithLogger(s.log), WithWrapWidth(0))
}

// ExecuteCommand runs one line against g and captures what it printed.
func ExecuteCommand(g *Game, cmd string) (string, GameSummary) {
	var buf bytes.Buffer
	prevOut := g.Out
	g.Out = &buf
	defer func() {
		g.Out = prevOut
	}()

	g.Process(cmd)
	return buf.String(), SummarizeGame(g)
}

func (s *MCPServer) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		var buf bytes.Buffer
		s.game = s.newGame(&buf)
		s.game.Start()
		s.game.Out = io.Discard
		s.log.Info("game reset", "session", s.game.ID.String())
		if strings.TrimSpace(input.Command) == "" {
			return nil, &CommandOutput{
				Output: buf.String(),
				State:  SummarizeGame(s.game),
			}, nil
		}
		out, summary := ExecuteCommand(s.game, input.Command)
		return nil, &CommandOutput{
			Output: buf.String() + out,
			State:  summary,
		}, nil
	}

	output, summary := ExecuteCommand(s.game, input.Command)
	return nil, &CommandOutput{
		Output: output,
		State:  summary,
	}, nil
}

func RunMCPHTTP(server *MCPServer, cfg MCPConfig) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "manor",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the manor adventure and return its output plus a state summary.",
	}, server.HandleCommand)

	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:                  cfg.Stateless,
		JSONResponse:               cfg.JSONResponse,
		Logger:                     server.log,
		DisableLocalhostProtection: false,
	})

	mux := http.NewServeMux()
	mux.Handle(path, guard(handler, cfg.Origins, cfg.Token))

	server.log.Info("mcp server listening", "addr", cfg.Addr, "path", path)
	serverHTTP := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
	return serverHTTP.ListenAndServe()
}

// guard rejects foreign origins and, when a token is set, requests without
// the matching bearer header.
func guard(next http.Handler, origins []string, token string) http.Handler {
	originSet := map[string]struct{}{}
	for _, origin := range origins {
		originSet[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	headless := flag.Bool("headless", false, "Run in headless mode (no raw terminal input)")
	mcpHTTP := flag.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := flag.String("mcp-addr", cfg.MCPAddr, "MCP listen address")
	mcpPath := flag.String("mcp-path", cfg.MCPPath, "MCP endpoint path")
	mcpToken := flag.String("mcp-token", cfg.MCPToken, "Bearer token for MCP requests (optional)")
	mcpJSON := flag.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := flag.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	var origins stringSlice
	flag.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	flag.Usage = func() {
		fmt.Printf("Usage: manor [options]\n\n")
		fmt.Printf("Options:\n")
		fmt.Printf("  -h, --help             Show this help message\n")
		fmt.Printf("  --headless             Read plain lines from stdin, never clear the screen\n")
		fmt.Printf("  --mcp-http             Serve the game as an MCP tool over HTTP\n")
		fmt.Printf("  --mcp-addr <addr>      MCP listen address (default: %s)\n", cfg.MCPAddr)
		fmt.Printf("  --mcp-path <path>      MCP endpoint path (default: %s)\n", cfg.MCPPath)
		fmt.Printf("  --mcp-token <token>    Require this bearer token\n")
		fmt.Printf("  --mcp-origin <origin>  Allowed Origin (repeatable)\n")
		fmt.Printf("  --mcp-json-response    Force JSON responses instead of SSE\n")
		fmt.Printf("  --mcp-stateless        No sessions or SSE\n")
	}

	flag.Parse()

	logger := setupLogger(cfg, os.Stderr)

	if *mcpHTTP {
		if len(origins) == 0 {
			origins = append(origins, "http://localhost", "http://127.0.0.1")
		}
		server := NewMCPServer(logger)
		if err := RunMCPHTTP(server, MCPConfig{
			Addr:         *mcpAddr,
			Path:         *mcpPath,
			Token:        *mcpToken,
			Origins:      origins,
			JSONResponse: *mcpJSON,
			Stateless:    *mcpStateless,
		}); err != nil {
			log.Fatal(err)
		}
		return
	}

	g := NewGame(os.Stdout,
		WithLogger(logger),
		WithScreen(newScreen(os.Stdout, *headless)),
		WithWrapWidth(cfg.WrapWidth),
	)
	if err := g.Run(newLineReader(os.Stdin, os.Stdout, *headless)); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}

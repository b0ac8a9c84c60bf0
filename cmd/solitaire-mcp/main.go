// Command solitaire-mcp exposes the solitaire engine as MCP tools over
// stdio.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/server"

	"github.com/okmethod/ygo-solitaire-sub001/internal/cards"
	solitairemcp "github.com/okmethod/ygo-solitaire-sub001/internal/mcp"
)

type CLI struct {
	Decks string `help:"Path to the decks YAML file." default:"decks.yaml"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	s := server.NewMCPServer("ygo-solitaire", "1.0.0")
	ctrl := solitairemcp.NewController(cards.NewRegistry(), cli.Decks)
	ctrl.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

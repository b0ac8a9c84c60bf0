// Command solitaire-web serves the solitaire engine over HTTP and
// WebSocket.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/okmethod/ygo-solitaire-sub001/internal/cards"
	"github.com/okmethod/ygo-solitaire-sub001/internal/web"
)

type CLI struct {
	Addr  string `help:"Address to listen on." default:":8080"`
	Decks string `help:"Path to the decks YAML file." default:"decks.yaml"`
	Debug bool   `help:"Enable debug logging."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	var (
		logger *zap.Logger
		err    error
	)
	if cli.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		ctx.Exit(1)
	}
	defer logger.Sync()

	srv := web.NewServer(cards.NewRegistry(), cli.Decks, logger)
	if err := srv.ListenAndServe(cli.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

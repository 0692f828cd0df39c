package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper-board/internal/app"
	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func main() {
	log, err := logging.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mines.Log = log

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	board, err := config.NewBoard()
	if err != nil {
		log.Fatal("unable to read board config: ", err)
	}

	a := app.New(log, board, config.Addr())
	if err := a.Start(ctx); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func run(w io.Writer, log *logrus.Logger) error {
	board, err := config.NewBoard()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"params": board.Params.String(),
		"style":  board.Glyphs.Name,
		"seeded": board.Seeded,
	}).Debug("generating board")

	grid, err := mines.Generate(board.Params, board.Rand())
	if err != nil {
		return fmt.Errorf("unable to generate board: %w", err)
	}

	_, err = io.WriteString(w, mines.Render(grid, board.Glyphs))
	return err
}

func main() {
	log, err := logging.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mines.Log = log

	if err := run(os.Stdout, log); err != nil {
		log.Fatal(err)
	}
}

package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type Board struct {
	Seed   uint64
	Seeded bool
	Glyphs mines.Glyphs
	Params mines.Params
}

// Rand returns the generator the board is drawn with.
func (b Board) Rand() *rand.Rand {
	if b.Seeded {
		return mines.NewRand(b.Seed)
	}
	return mines.RandomRand()
}

// NewBoard reads the optional MINES_SEED and MINES_STYLE variables. With
// neither set the board is random and rendered in spoiler style.
func NewBoard() (*Board, error) {
	board := &Board{
		Glyphs: mines.SpoilerGlyphs,
		Params: mines.DefaultParams,
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok && seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		board.Seed, board.Seeded = seed, true
	}

	if style, ok := os.LookupEnv("MINES_STYLE"); ok && style != "" {
		glyphs, err := mines.ParseStyle(style)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_STYLE: %w", err)
		}
		board.Glyphs = glyphs
	}

	return board, nil
}

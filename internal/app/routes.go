package app

import (
	"github.com/vancomm/minesweeper-board/internal/handlers"
)

func (a *App) loadRoutes() {
	board := handlers.NewBoardHandler(a.log, a.board.Params, a.board.Glyphs)

	a.router.HandleFunc("GET /v1/status", handlers.Status)
	a.router.HandleFunc("GET /v1/board", board.Board)
}

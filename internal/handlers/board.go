package handlers

import (
	"math/rand/v2"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type BoardHandler struct {
	log    logrus.FieldLogger
	params mines.Params
	glyphs mines.Glyphs

	newRand func() *rand.Rand
}

func NewBoardHandler(log logrus.FieldLogger, params mines.Params, glyphs mines.Glyphs) *BoardHandler {
	return &BoardHandler{
		log:     log,
		params:  params,
		glyphs:  glyphs,
		newRand: mines.RandomRand,
	}
}

// Board serves one freshly generated board. Each request draws from its
// own generator, so handlers never share random state.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	query, err := decodeBoardQuery(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	glyphs := h.glyphs
	if query.Style != "" {
		if glyphs, err = mines.ParseStyle(query.Style); err != nil {
			sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
			return
		}
	}

	var rnd *rand.Rand
	if query.Seed != nil {
		rnd = mines.NewRand(*query.Seed)
	} else {
		rnd = h.newRand()
	}

	grid, err := mines.Generate(h.params, rnd)
	if err != nil {
		h.log.WithError(err).WithField("params", h.params.String()).Error("unable to generate board")
		sendErrorOrLog(w, h.log, http.StatusInternalServerError, err)
		return
	}

	if query.Format == formatJSON {
		sendJSONOrLog(w, h.log, grid)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(mines.Render(grid, glyphs))); err != nil {
		h.log.WithError(err).Error("unable to send board")
	}
}

package mines

import (
	"errors"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomRand returns a generator seeded from process entropy.
func RandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// PlaceMines picks k distinct squares of a width x height grid, every
// subset being equally likely. A k above the number of squares is capped.
func PlaceMines(width, height, k int, r *rand.Rand) []Point {
	/*
	 * Write down every square in row-major order, shuffle the whole list
	 * and keep its head.
	 */
	candidates := make([]Point, 0, width*height)
	for y := range height {
		for x := range width {
			candidates = append(candidates, Point{x, y})
		}
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	k = max(0, min(k, len(candidates)))
	return candidates[:k]
}

// Build lays the mines onto an empty grid and counts them into every
// neighbouring square. Mines are processed in the order given.
//
// panics [AssertionError]
func Build(width, height int, mines []Point) *Grid {
	g := newGrid(width, height)
	for _, m := range mines {
		if !g.InBounds(m.X, m.Y) {
			panic(AssertionError{"mine placed outside the grid"})
		}
		g.cells[m.Y*width+m.X] = Mine
		for n := range g.Neighbors(m.X, m.Y) {
			g.cells[n.Y*width+n.X].inc()
		}
	}
	return g
}

// Generate places p.MineCount mines at random and builds the board.
func Generate(p Params, r *rand.Rand) (grid *Grid, err error) {
	defer func() {
		var ae AssertionError
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				grid, err = nil, ae
				return
			}
			panic(rec)
		}
	}()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	width, height, mineCount := p.Unpack()
	if mineCount > p.Cells() {
		Log.WithFields(logrus.Fields{
			"params": p.String(),
			"cells":  p.Cells(),
		}).Warn("mine count exceeds grid capacity, every square will be a mine")
	}

	points := PlaceMines(width, height, mineCount, r)
	grid = Build(width, height, points)

	Log.WithFields(logrus.Fields{
		"params": p.String(),
		"mines":  grid.Mines(),
	}).Debug("board generated")

	return grid, nil
}

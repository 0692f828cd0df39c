package mines

import (
	"encoding/json"
	"iter"
)

type Point struct {
	X, Y int
}

// Grid is a generated board. Cells are stored row-major, so the cell at
// column x, row y lives at index y*Width + x.
type Grid struct {
	width, height int
	cells         []Cell
}

func newGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(AssertionError{"grid dimensions must be positive"})
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height), // all Empty
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

// At returns the cell at column x, row y.
//
// panics [AssertionError]
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(AssertionError{"point out of grid bounds"})
	}
	return g.cells[y*g.width+x]
}

// Mines returns the number of mine cells.
func (g *Grid) Mines() (n int) {
	for _, c := range g.cells {
		if c.IsMine() {
			n++
		}
	}
	return
}

// Neighbors yields the in-bounds squares surrounding x, y.
func (g *Grid) Neighbors(x, y int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !g.InBounds(x+dx, y+dy) {
					continue
				}
				if !yield(Point{x + dx, y + dy}) {
					return
				}
			}
		}
	}
}

// Rows yields each row index with a copy of its cells.
func (g *Grid) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for y := range g.height {
			row := make([]Cell, g.width)
			copy(row, g.cells[y*g.width:(y+1)*g.width])
			if !yield(y, row) {
				return
			}
		}
	}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) String() string {
	return Render(g, PlainGlyphs)
}

type gridJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Mines  int      `json:"mines"`
	Cells  [][]Cell `json:"cells"`
}

// [Grid] implements [json.Marshaler]
func (g *Grid) MarshalJSON() ([]byte, error) {
	dto := gridJSON{
		Width:  g.width,
		Height: g.height,
		Mines:  g.Mines(),
		Cells:  make([][]Cell, 0, g.height),
	}
	for _, row := range g.Rows() {
		dto.Cells = append(dto.Cells, row)
	}
	return json.Marshal(dto)
}

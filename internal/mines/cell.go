package mines

import "strconv"

// Cell is the state of a single square of a generated board.
//
// The zero value is Empty. Mine is a sentinel; any value in 1..8 is the
// number of mines surrounding a safe square.
type Cell int8

const (
	Mine  Cell = -1
	Empty Cell = 0
)

// Count returns the cell holding n adjacent mines. Count(0) is Empty.
func Count(n int) Cell {
	if n < 0 || n > 8 {
		panic(AssertionError{"adjacent mine count out of range: " + strconv.Itoa(n)})
	}
	return Cell(n)
}

func (c Cell) IsMine() bool {
	return c == Mine
}

// Adjacent returns the number of neighbouring mines, or 0 for a mine.
func (c Cell) Adjacent() int {
	if c == Mine {
		return 0
	}
	return int(c)
}

// inc registers one more neighbouring mine. Mines do not carry counts.
func (c *Cell) inc() {
	if *c != Mine {
		*c++
	}
}

func (c Cell) String() string {
	return PlainGlyphs.Glyph(c)
}

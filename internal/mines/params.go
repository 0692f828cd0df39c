package mines

import "fmt"

const (
	DefaultWidth     = 8
	DefaultHeight    = 8
	DefaultMineCount = DefaultWidth + DefaultHeight/2
)

// DefaultParams is the only board shape the commands ever generate.
var DefaultParams = Params{
	Width:     DefaultWidth,
	Height:    DefaultHeight,
	MineCount: DefaultMineCount,
}

type Params struct {
	Width, Height, MineCount int
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p Params) Cells() int {
	return p.Width * p.Height
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// Validate rejects shapes no grid can have. A mine count above the number
// of cells is accepted; placement caps it.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	}
	return nil
}

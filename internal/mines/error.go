package mines

import "errors"

var (
	ErrInvalidParams = errors.New("invalid board params")
	ErrUnknownStyle  = errors.New("unknown glyph style")
)

// AssertionError reports a broken caller contract, such as a mine placed
// outside the grid. It is raised with panic.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Glyphs is a display style for board cells.
type Glyphs struct {
	Name    string
	Empty   string
	Mine    string
	Digits  [8]string // Digits[n-1] is the glyph for n adjacent mines
	Spoiler bool      // wrap every token as ||`glyph`||
}

var keycaps = [8]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣"}

var (
	SpoilerGlyphs = Glyphs{
		Name:    "spoiler",
		Empty:   "▫️",
		Mine:    "💣",
		Digits:  keycaps,
		Spoiler: true,
	}
	EmojiGlyphs = Glyphs{
		Name:   "emoji",
		Empty:  "▫️",
		Mine:   "💣",
		Digits: keycaps,
	}
	PlainGlyphs = Glyphs{
		Name:   "plain",
		Empty:  ".",
		Mine:   "*",
		Digits: [8]string{"1", "2", "3", "4", "5", "6", "7", "8"},
	}
)

var styles = map[string]Glyphs{
	SpoilerGlyphs.Name: SpoilerGlyphs,
	EmojiGlyphs.Name:   EmojiGlyphs,
	PlainGlyphs.Name:   PlainGlyphs,
}

func ParseStyle(name string) (Glyphs, error) {
	g, ok := styles[strings.ToLower(name)]
	if !ok {
		return Glyphs{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return g, nil
}

// Glyph returns the bare glyph for c, without spoiler markup.
func (gs Glyphs) Glyph(c Cell) string {
	switch {
	case c == Mine:
		return gs.Mine
	case c == Empty:
		return gs.Empty
	case 1 <= c && c <= 8:
		return gs.Digits[c-1]
	default:
		panic(AssertionError{"invalid cell state " + strconv.Itoa(int(c))})
	}
}

// Token returns the glyph for c as it appears on a rendered board.
func (gs Glyphs) Token(c Cell) string {
	glyph := gs.Glyph(c)
	return iif(gs.Spoiler, "||`"+glyph+"`||", glyph)
}

// Render writes one line per grid row, each cell a token followed by a
// single space.
func Render(g *Grid, glyphs Glyphs) string {
	var b strings.Builder
	for _, row := range g.Rows() {
		for _, c := range row {
			b.WriteString(glyphs.Token(c))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

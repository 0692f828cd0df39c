package mines

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIif(t *testing.T) {
	assert.Equal(t, 1, iif(true, 1, 0))
	assert.Equal(t, 0, iif(false, 1, 0))
}

func TestRenderPlain(t *testing.T) {
	g := Build(3, 2, []Point{{0, 0}})
	assert.Equal(t, "* 1 . \n1 1 . \n", Render(g, PlainGlyphs))
	assert.Equal(t, Render(g, PlainGlyphs), g.String())
}

func TestRenderLayout(t *testing.T) {
	g := Build(5, 3, []Point{{4, 2}})
	lines := strings.Split(strings.TrimSuffix(Render(g, PlainGlyphs), "\n"), "\n")
	require.Len(t, lines, 3)

	for y, line := range lines {
		tokens := strings.Fields(line)
		require.Len(t, tokens, 5, "row %d", y)
		for x, token := range tokens {
			assert.Equal(t, g.At(x, y).String(), token, "cell %d:%d", x, y)
		}
	}
	assert.Equal(t, "*", strings.Fields(lines[2])[4])
}

func TestRenderSpoiler(t *testing.T) {
	g := Build(2, 1, []Point{{0, 0}})
	assert.Equal(t, "||`💣`|| ||`1️⃣`|| \n", Render(g, SpoilerGlyphs))
	assert.Equal(t, "💣 1️⃣ \n", Render(g, EmojiGlyphs))
}

func TestRenderNoMines(t *testing.T) {
	out := Render(Build(8, 8, nil), SpoilerGlyphs)
	assert.Equal(t, 64, strings.Count(out, SpoilerGlyphs.Empty))
	assert.NotContains(t, out, SpoilerGlyphs.Mine)
	for _, d := range SpoilerGlyphs.Digits {
		assert.NotContains(t, out, d)
	}
}

func TestRenderFullCoverage(t *testing.T) {
	out := Render(Build(8, 8, PlaceMines(8, 8, 64, NewRand(9))), PlainGlyphs)
	assert.Equal(t, strings.Repeat(strings.Repeat("* ", 8)+"\n", 8), out)
}

func TestGlyphDigits(t *testing.T) {
	for n := 1; n <= 8; n++ {
		assert.Equal(t, keycaps[n-1], SpoilerGlyphs.Glyph(Count(n)))
		assert.Equal(t, string(rune('0'+n)), PlainGlyphs.Glyph(Count(n)))
	}
	assert.Panics(t, func() { PlainGlyphs.Glyph(Cell(9)) })
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"spoiler", "emoji", "plain", "PLAIN"} {
		g, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), g.Name)
	}
	_, err := ParseStyle("fancy")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestGridJSON(t *testing.T) {
	g := Build(3, 2, []Point{{2, 1}})
	b, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"width":3,"height":2,"mines":1,"cells":[[0,1,1],[0,1,-1]]}`,
		string(b),
	)
}

func TestCount(t *testing.T) {
	assert.Equal(t, Empty, Count(0))
	assert.Equal(t, 3, Count(3).Adjacent())
	assert.Equal(t, 0, Mine.Adjacent())
	assert.Panics(t, func() { Count(9) })

	c := Mine
	c.inc()
	assert.Equal(t, Mine, c)
}

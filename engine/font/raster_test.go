package font

import (
	"testing"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func testRasterizer(t *testing.T, pixelSize float64) *Rasterizer {
	ttf, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)
	r := NewRasterizer(ttf, pixelSize)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRasterizeProducesInk(t *testing.T) {
	r := testRasterizer(t, 20)

	glyph, err := r.Rasterize('H')
	require.NoError(t, err)
	assert.False(t, glyph.Empty())
	assert.Greater(t, glyph.Advance, 0)
	assert.Len(t, glyph.Coverage, glyph.Width*glyph.Height)

	inked := 0
	for i, value := range glyph.Coverage {
		if value != 0 && value != 0xFF {
			t.Fatalf("coverage byte %d is %d, must be binary after thresholding", i, value)
		}
		if value == 0xFF {
			inked++
		}
	}
	assert.Greater(t, inked, 0)
}

func TestRasterizeSpaceIsEmptyWithAdvance(t *testing.T) {
	r := testRasterizer(t, 20)

	glyph, err := r.Rasterize(' ')
	require.NoError(t, err)
	assert.True(t, glyph.Empty())
	assert.Greater(t, glyph.Advance, 0)
}

func TestRasterizeMissingGlyph(t *testing.T) {
	r := testRasterizer(t, 20)

	_, err := r.Rasterize('') // private use area, not in Go Regular
	assert.True(t, errors.Is(err, ErrGlyphNotFound))
}

func TestFaceNameIsFullName(t *testing.T) {
	r := testRasterizer(t, 20)

	// family alone would be just "Go", the style must be part of it
	assert.Equal(t, "Go Regular", r.FaceName())
}

func TestLineMetrics(t *testing.T) {
	r := testRasterizer(t, 20)

	lineHeight, base := r.LineMetrics()
	assert.Greater(t, base, 0)
	assert.GreaterOrEqual(t, lineHeight, base)
}

func TestLargerSizeMeansLargerGlyphs(t *testing.T) {
	small, err := testRasterizer(t, 12).Rasterize('M')
	require.NoError(t, err)
	big, err := testRasterizer(t, 40).Rasterize('M')
	require.NoError(t, err)

	assert.Greater(t, big.Width, small.Width)
	assert.Greater(t, big.Height, small.Height)
	assert.Greater(t, big.Advance, small.Advance)
}

package font

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidGlyph(ch rune, w, h int) *GlyphBitmap {
	coverage := make([]uint8, w*h)
	for i := range coverage {
		coverage[i] = 0xFF
	}
	return &GlyphBitmap{Rune: ch, Width: w, Height: h, Coverage: coverage, Advance: w + 1}
}

func rectsOverlap(a, b PackedRect) bool {
	if a.Width == 0 || a.Height == 0 || b.Width == 0 || b.Height == 0 {
		return false
	}
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// grow expands a rect by the padding on all sides, so an overlap check on the
// grown rects also catches glyphs packed closer than the padding allows.
func grow(r PackedRect, padding int) PackedRect {
	if r.Width == 0 || r.Height == 0 {
		return r
	}
	return PackedRect{
		Rune:   r.Rune,
		X:      r.X - padding,
		Y:      r.Y - padding,
		Width:  r.Width + 2*padding,
		Height: r.Height + 2*padding,
	}
}

func TestPackKeepsRectsInsideAtlas(t *testing.T) {
	bitmaps := []*GlyphBitmap{
		solidGlyph('a', 7, 9),
		solidGlyph('b', 12, 5),
		solidGlyph('c', 3, 14),
		solidGlyph('d', 20, 20),
		solidGlyph('e', 1, 1),
	}
	rects, err := Pack(bitmaps, 48, 48, 1)
	require.NoError(t, err)
	require.Len(t, rects, len(bitmaps))

	for _, rect := range rects {
		assert.GreaterOrEqual(t, rect.X, 0)
		assert.GreaterOrEqual(t, rect.Y, 0)
		assert.LessOrEqual(t, rect.X+rect.Width, 48)
		assert.LessOrEqual(t, rect.Y+rect.Height, 48)
	}
}

func TestPackRectsDoNotOverlap(t *testing.T) {
	const padding = 2
	var bitmaps []*GlyphBitmap
	for i := 0; i < 30; i++ {
		bitmaps = append(bitmaps, solidGlyph(rune('a'+i), 3+i%7, 4+i%5))
	}
	rects, err := Pack(bitmaps, 64, 64, padding)
	require.NoError(t, err)

	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rectsOverlap(grow(rects[i], padding), rects[j]),
				"rects %d and %d too close: %+v vs %+v", i, j, rects[i], rects[j])
		}
	}
}

func TestPackStartsNewShelfBelowTallestGlyph(t *testing.T) {
	// two glyphs fill the first shelf, the third has to wrap
	bitmaps := []*GlyphBitmap{
		solidGlyph('a', 10, 12),
		solidGlyph('b', 10, 8),
		solidGlyph('c', 10, 5),
	}
	rects, err := Pack(bitmaps, 24, 64, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, rects[0].Y)
	assert.Equal(t, 1, rects[1].Y)
	// below the 12px glyph, not the 8px one
	assert.Equal(t, 1+12+1, rects[2].Y)
	assert.Equal(t, 1, rects[2].X)
}

func TestPackOverflowReportsPlacedCount(t *testing.T) {
	bitmaps := []*GlyphBitmap{
		solidGlyph('a', 10, 10),
		solidGlyph('b', 10, 10),
		solidGlyph('c', 10, 10),
	}
	_, err := Pack(bitmaps, 12, 24, 1)
	require.Error(t, err)

	var overflow *PackingOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 2, overflow.Placed)
	assert.Equal(t, 3, overflow.Total)
	assert.Equal(t, 12, overflow.AtlasWidth)
	assert.Equal(t, 24, overflow.AtlasHeight)
}

func TestPackGlyphLargerThanAtlas(t *testing.T) {
	_, err := Pack([]*GlyphBitmap{solidGlyph('a', 20, 20)}, 8, 8, 1)
	var overflow *PackingOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 0, overflow.Placed)
}

func TestPackEmptyBitmapsTakeNoSpace(t *testing.T) {
	space := &GlyphBitmap{Rune: ' ', Advance: 5}
	bitmaps := []*GlyphBitmap{space, solidGlyph('a', 4, 4), space}
	rects, err := Pack(bitmaps, 16, 16, 1)
	require.NoError(t, err)
	require.Len(t, rects, 3)

	assert.Equal(t, PackedRect{Rune: ' '}, rects[0])
	assert.Equal(t, PackedRect{Rune: ' '}, rects[2])
	assert.Equal(t, 1, rects[1].X)
	assert.Equal(t, 1, rects[1].Y)
}

func TestPackNoBitmaps(t *testing.T) {
	rects, err := Pack(nil, 16, 16, 1)
	require.NoError(t, err)
	assert.Empty(t, rects)
}

package font

// PackedRect is the atlas placement of one glyph bitmap.
type PackedRect struct {
	Rune          rune
	X, Y          int
	Width, Height int
}

// DefaultPadding is the pixel gap inserted between packed glyphs so linear
// filtering cannot sample a neighbour.
const DefaultPadding = 1

// Pack places the given bitmaps into an atlas of the given size using shelf
// packing: glyphs fill a row left to right, a new shelf starts below the
// tallest glyph of the current one. Bitmaps are consumed in input order and
// the returned rects match it 1:1. Empty bitmaps take no space and come back
// as zero rects.
//
// Padding must be >= 0 and is kept around every glyph, including the atlas
// edges. When a glyph cannot fit, Pack fails with PackingOverflowError and
// reports how many were placed; it never truncates or resizes.
func Pack(bitmaps []*GlyphBitmap, atlasWidth, atlasHeight, padding int) ([]PackedRect, error) {
	if padding < 0 {
		padding = DefaultPadding
	}
	rects := make([]PackedRect, 0, len(bitmaps))

	penX := padding
	penY := padding
	shelfHeight := 0
	placed := 0

	for _, bitmap := range bitmaps {
		if bitmap.Empty() {
			rects = append(rects, PackedRect{Rune: bitmap.Rune})
			continue
		}

		if penX+bitmap.Width+padding > atlasWidth {
			// shelf is full, move below its tallest glyph
			penX = padding
			penY += shelfHeight + padding
			shelfHeight = 0
		}

		if penX+bitmap.Width+padding > atlasWidth || penY+bitmap.Height+padding > atlasHeight {
			return nil, &PackingOverflowError{
				Placed:      placed,
				Total:       countInked(bitmaps),
				AtlasWidth:  atlasWidth,
				AtlasHeight: atlasHeight,
			}
		}

		rects = append(rects, PackedRect{
			Rune:   bitmap.Rune,
			X:      penX,
			Y:      penY,
			Width:  bitmap.Width,
			Height: bitmap.Height,
		})
		placed++

		penX += bitmap.Width + padding
		if bitmap.Height > shelfHeight {
			shelfHeight = bitmap.Height
		}
	}

	return rects, nil
}

func countInked(bitmaps []*GlyphBitmap) int {
	count := 0
	for _, bitmap := range bitmaps {
		if !bitmap.Empty() {
			count++
		}
	}
	return count
}

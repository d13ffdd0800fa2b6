package font

// Tile is one glyph instance: a screen position plus the atlas rectangle it
// samples. Color is inherited from the font, there is no per-glyph override.
type Tile struct {
	X, Y           float32
	Width, Height  int
	AtlasX, AtlasY int
}

// TextRun groups the tiles one Layout call produced so a caller can replay or
// discard them as a unit. Width/Height are the bounding box of the emitted
// tiles, zero for runs without ink.
type TextRun struct {
	Text             string
	OriginX, OriginY float32
	Tiles            []Tile
	Width, Height    float32
}

// Layout walks text by codepoint and produces one tile per inked glyph. A
// newline moves the pen to the start of the next line, there is no word
// wrap. Codepoints without a baked glyph advance the pen by the space
// advance (zero when space is absent too) instead of failing the run.
//
// Layout is pure: the same inputs always yield the same tiles.
func Layout(font *BitmapFont, text string, originX, originY float32) *TextRun {
	run := &TextRun{Text: text, OriginX: originX, OriginY: originY}
	desc := font.Descriptor()

	fallbackAdvance := 0
	if space, ok := desc.Lookup(' '); ok {
		fallbackAdvance = space.XAdvance
	}

	penX := originX
	penY := originY
	var minX, minY, maxX, maxY float32
	for _, ch := range text {
		if ch == '\n' {
			penX = originX
			penY += float32(desc.LineHeight)
			continue
		}
		metrics, ok := desc.Lookup(ch)
		if !ok {
			penX += float32(fallbackAdvance)
			continue
		}
		if metrics.Width > 0 && metrics.Height > 0 {
			tile := Tile{
				X:      penX + float32(metrics.XOffset),
				Y:      penY + float32(metrics.YOffset),
				Width:  metrics.Width,
				Height: metrics.Height,
				AtlasX: metrics.X,
				AtlasY: metrics.Y,
			}
			if len(run.Tiles) == 0 {
				minX, minY = tile.X, tile.Y
				maxX, maxY = tile.X+float32(tile.Width), tile.Y+float32(tile.Height)
			} else {
				minX = min32(minX, tile.X)
				minY = min32(minY, tile.Y)
				maxX = max32(maxX, tile.X+float32(tile.Width))
				maxY = max32(maxY, tile.Y+float32(tile.Height))
			}
			run.Tiles = append(run.Tiles, tile)
		}
		penX += float32(metrics.XAdvance)
	}

	if len(run.Tiles) > 0 {
		run.Width = maxX - minX
		run.Height = maxY - minY
	}
	return run
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package font

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"

	"github.com/memmaker/bakefont/engine/util"
)

// BakeRequest is everything the host hands over for one bake.
type BakeRequest struct {
	FontPath    string
	Name        string // output name, also recorded as the atlas page file
	FontSize    float64
	AtlasWidth  int
	AtlasHeight int
	FirstChar   int
	NumChars    int
	Padding     int // 0 means DefaultPadding
}

// BakeResult is one finished bake. It can be persisted via WriteFiles or
// handed to a BitmapFont directly, both without re-baking.
type BakeResult struct {
	Descriptor *Descriptor
	Atlas      *image.NRGBA
}

// Bake reads the font file named by the request and runs the full
// rasterize -> pack -> blit pipeline.
func Bake(request BakeRequest) (*BakeResult, error) {
	data, err := os.ReadFile(request.FontPath)
	if err != nil {
		return nil, errors.Wrapf(ErrFontLoad, "%s: %s", request.FontPath, err)
	}
	return BakeData(data, request)
}

// BakeData is Bake for font bytes already in memory.
func BakeData(fontData []byte, request BakeRequest) (*BakeResult, error) {
	ttf, err := truetype.Parse(fontData)
	if err != nil {
		return nil, errors.Wrap(ErrFontLoad, err.Error())
	}

	rasterizer := NewRasterizer(ttf, request.FontSize)
	defer rasterizer.Close()

	bitmaps := make([]*GlyphBitmap, 0, request.NumChars)
	for ch := request.FirstChar; ch < request.FirstChar+request.NumChars; ch++ {
		glyph, rasterErr := rasterizer.Rasterize(rune(ch))
		if rasterErr != nil {
			if errors.Is(rasterErr, ErrGlyphNotFound) {
				// a hole in the face must not abort the whole bake
				util.LogBakeDebug(fmt.Sprintf("[Bake] skipping U+%04X, face has no glyph", ch))
				continue
			}
			return nil, rasterErr
		}
		bitmaps = append(bitmaps, glyph)
	}

	padding := request.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	rects, err := Pack(bitmaps, request.AtlasWidth, request.AtlasHeight, padding)
	if err != nil {
		return nil, err
	}

	atlas := image.NewNRGBA(image.Rect(0, 0, request.AtlasWidth, request.AtlasHeight))
	for i, bitmap := range bitmaps {
		blit(atlas, bitmap, rects[i])
	}

	lineHeight, base := rasterizer.LineMetrics()
	desc := &Descriptor{
		Face:       rasterizer.FaceName(),
		Size:       request.FontSize,
		FirstChar:  request.FirstChar,
		NumChars:   request.NumChars,
		LineHeight: lineHeight,
		Base:       base,
		ScaleW:     request.AtlasWidth,
		ScaleH:     request.AtlasHeight,
		PageFile:   pageFileName(request.Name),
		Chars:      make([]Char, 0, len(bitmaps)),
	}
	for i, bitmap := range bitmaps {
		rect := rects[i]
		desc.Chars = append(desc.Chars, Char{
			Rune: bitmap.Rune,
			GlyphMetrics: GlyphMetrics{
				X:        rect.X,
				Y:        rect.Y,
				Width:    rect.Width,
				Height:   rect.Height,
				XOffset:  bitmap.BearingX,
				YOffset:  base + bitmap.BearingY,
				XAdvance: bitmap.Advance,
			},
		})
	}
	desc.reindex()

	util.LogBakeInfo(fmt.Sprintf("[Bake] %s: %d glyphs at %.1fpx into %dx%d", desc.Face, len(desc.Chars), request.FontSize, request.AtlasWidth, request.AtlasHeight))
	return &BakeResult{Descriptor: desc, Atlas: atlas}, nil
}

// blit copies thresholded coverage into the atlas, coverage replicated into
// all four channels. Texels outside glyph rects stay fully transparent.
func blit(atlas *image.NRGBA, bitmap *GlyphBitmap, rect PackedRect) {
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			value := bitmap.Coverage[y*bitmap.Width+x]
			offset := atlas.PixOffset(rect.X+x, rect.Y+y)
			atlas.Pix[offset] = value
			atlas.Pix[offset+1] = value
			atlas.Pix[offset+2] = value
			atlas.Pix[offset+3] = value
		}
	}
}

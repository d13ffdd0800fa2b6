package font

import (
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GlyphBitmap is the tightly cropped greyscale coverage of one rasterized
// glyph. Bearing and advance are whole pixels relative to the baseline pen
// position.
type GlyphBitmap struct {
	Rune          rune
	Width, Height int
	Coverage      []uint8 // Width*Height bytes, row-major
	BearingX      int     // left edge of ink relative to the pen
	BearingY      int     // top edge of ink relative to the baseline, negative above it
	Advance       int
}

// Empty reports whether the glyph has no ink. Whitespace glyphs are empty but
// still carry a valid advance.
func (g *GlyphBitmap) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Coverage at or above this becomes fully opaque, everything below becomes
// fully transparent. Keeps pixel-style fonts crisp at their native size.
const coverageThreshold = 0x80

// Rasterizer renders single codepoints of one face at one pixel size.
type Rasterizer struct {
	ttf  *truetype.Font
	face xfont.Face
	size float64
}

// NewRasterizer creates a rasterizer for the given parsed font at the given
// pixel size. At 72 DPI one point maps to exactly one pixel.
func NewRasterizer(ttf *truetype.Font, pixelSize float64) *Rasterizer {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    pixelSize,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	return &Rasterizer{ttf: ttf, face: face, size: pixelSize}
}

// LineMetrics returns the line height and the baseline offset from the top of
// a line, both in pixels.
func (r *Rasterizer) LineMetrics() (lineHeight, base int) {
	metrics := r.face.Metrics()
	return metrics.Height.Ceil(), metrics.Ascent.Ceil()
}

// FaceName returns the full font name, family plus style.
func (r *Rasterizer) FaceName() string {
	return r.ttf.Name(truetype.NameIDFontFullName)
}

func (r *Rasterizer) Close() error {
	return r.face.Close()
}

// Rasterize renders one codepoint. Glyphs without ink (e.g. space) come back
// empty with a valid advance. Codepoints the face has no outline for fail
// with ErrGlyphNotFound.
func (r *Rasterizer) Rasterize(ch rune) (*GlyphBitmap, error) {
	if r.ttf.Index(ch) == 0 {
		return nil, errors.Wrapf(ErrGlyphNotFound, "U+%04X", ch)
	}

	dot := fixed.P(0, 0)
	dr, mask, maskp, advance, ok := r.face.Glyph(dot, ch)
	if !ok {
		return nil, errors.Wrapf(ErrGlyphNotFound, "U+%04X", ch)
	}

	glyph := &GlyphBitmap{Rune: ch, Advance: advance.Round()}
	if dr.Empty() {
		return glyph, nil
	}

	alpha, isAlpha := mask.(*image.Alpha)
	if !isAlpha {
		return nil, errors.Wrapf(ErrGlyphNotFound, "U+%04X: unexpected mask format", ch)
	}

	w, h := dr.Dx(), dr.Dy()
	glyph.Width = w
	glyph.Height = h
	glyph.BearingX = dr.Min.X
	glyph.BearingY = dr.Min.Y
	glyph.Coverage = make([]uint8, w*h)
	for y := 0; y < h; y++ {
		srcRow := alpha.Pix[(maskp.Y+y)*alpha.Stride+maskp.X:]
		for x := 0; x < w; x++ {
			if srcRow[x] >= coverageThreshold {
				glyph.Coverage[y*w+x] = 0xFF
			}
		}
	}
	return glyph, nil
}

package font

import (
	"fmt"

	"github.com/pkg/errors"
)

// The bake and load pipelines report failures as one of these kinds. Callers
// match them with errors.Is, except for PackingOverflowError which carries
// data and is matched with errors.As.
var (
	// ErrFontLoad means the font bytes could not be read or parsed. Fatal to
	// the bake.
	ErrFontLoad = errors.New("font could not be loaded")

	// ErrGlyphNotFound means the face has no outline for a codepoint. The
	// baker recovers by skipping the glyph.
	ErrGlyphNotFound = errors.New("no glyph for codepoint")

	// ErrMalformedDescriptor means a persisted descriptor is missing required
	// fields. Fatal to the load, does not affect an already displayed font.
	ErrMalformedDescriptor = errors.New("malformed font descriptor")

	// ErrResourceLoad means a descriptor or atlas file could not be read.
	ErrResourceLoad = errors.New("resource could not be loaded")
)

// PackingOverflowError is returned when the requested atlas is too small for
// the glyphs of a bake. Placed tells how many glyphs fit before the overflow,
// so the caller can retry with a larger atlas or a smaller range.
type PackingOverflowError struct {
	Placed      int
	Total       int
	AtlasWidth  int
	AtlasHeight int
}

func (e *PackingOverflowError) Error() string {
	return fmt.Sprintf("atlas overflow: placed %d of %d glyphs into %dx%d", e.Placed, e.Total, e.AtlasWidth, e.AtlasHeight)
}

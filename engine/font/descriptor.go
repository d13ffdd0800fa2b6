package font

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// GlyphMetrics locates one glyph in the atlas and tells the layout engine how
// to place it. X/Y/Width/Height address the atlas rectangle, XOffset/YOffset
// shift the quad relative to the pen (YOffset measured from the top of the
// line), XAdvance moves the pen.
type GlyphMetrics struct {
	X, Y          int
	Width, Height int
	XOffset       int
	YOffset       int
	XAdvance      int
}

// Char is one character record of a baked font.
type Char struct {
	Rune rune
	GlyphMetrics
}

// Descriptor is the durable record of one baked font. It is built once per
// bake and never mutated afterwards; a re-bake replaces it wholesale.
type Descriptor struct {
	Face       string
	Size       float64
	FirstChar  int
	NumChars   int
	LineHeight int
	Base       int
	ScaleW     int
	ScaleH     int
	PageFile   string
	Chars      []Char

	byRune map[rune]int
}

// Lookup returns the metrics for a codepoint, or ok == false when the bake
// did not produce an entry for it.
func (d *Descriptor) Lookup(ch rune) (GlyphMetrics, bool) {
	index, ok := d.byRune[ch]
	if !ok {
		return GlyphMetrics{}, false
	}
	return d.Chars[index].GlyphMetrics, true
}

func (d *Descriptor) reindex() {
	d.byRune = make(map[rune]int, len(d.Chars))
	for i, c := range d.Chars {
		d.byRune[c.Rune] = i
	}
}

// The persisted schema mirrors the classic BMFont block structure, mapped
// into JSON objects. Required numeric fields are pointers so a missing field
// is distinguishable from zero.

type descriptorJSON struct {
	Info   infoJSON   `json:"info"`
	Common commonJSON `json:"common"`
	Pages  []pageJSON `json:"pages"`
	Chars  []charJSON `json:"chars"`
}

type infoJSON struct {
	Face      string   `json:"face"`
	Size      *float64 `json:"size"`
	FirstChar int      `json:"firstChar,omitempty"`
	NumChars  int      `json:"numChars,omitempty"`
}

type commonJSON struct {
	LineHeight *int `json:"lineHeight"`
	Base       *int `json:"base"`
	ScaleW     *int `json:"scaleW"`
	ScaleH     *int `json:"scaleH"`
	Pages      int  `json:"pages"`
}

type pageJSON struct {
	ID   int    `json:"id"`
	File string `json:"file"`
}

type charJSON struct {
	ID       *int32 `json:"id"`
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
	XOffset  *int   `json:"xoffset"`
	YOffset  *int   `json:"yoffset"`
	XAdvance *int   `json:"xadvance"`
	Page     int    `json:"page"`
	Channel  int    `json:"chnl"`
}

// Serialize writes the descriptor into its persisted JSON form. The result
// always parses back into an equal Descriptor.
func (d *Descriptor) Serialize() []byte {
	out := descriptorJSON{
		Info: infoJSON{
			Face:      d.Face,
			Size:      &d.Size,
			FirstChar: d.FirstChar,
			NumChars:  d.NumChars,
		},
		Common: commonJSON{
			LineHeight: &d.LineHeight,
			Base:       &d.Base,
			ScaleW:     &d.ScaleW,
			ScaleH:     &d.ScaleH,
			Pages:      1,
		},
		Pages: []pageJSON{{ID: 0, File: d.PageFile}},
		Chars: make([]charJSON, 0, len(d.Chars)),
	}
	for i := range d.Chars {
		c := &d.Chars[i]
		id := int32(c.Rune)
		out.Chars = append(out.Chars, charJSON{
			ID:       &id,
			X:        &c.X,
			Y:        &c.Y,
			Width:    &c.Width,
			Height:   &c.Height,
			XOffset:  &c.XOffset,
			YOffset:  &c.YOffset,
			XAdvance: &c.XAdvance,
			Page:     0,
			Channel:  15,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

// Parse reads a persisted descriptor. Missing required numeric fields fail
// with ErrMalformedDescriptor; unknown fields are ignored.
func Parse(data []byte) (*Descriptor, error) {
	var in descriptorJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(ErrMalformedDescriptor, err.Error())
	}
	if in.Info.Size == nil {
		return nil, errors.Wrap(ErrMalformedDescriptor, "info: missing size")
	}
	if in.Common.LineHeight == nil || in.Common.Base == nil || in.Common.ScaleW == nil || in.Common.ScaleH == nil {
		return nil, errors.Wrap(ErrMalformedDescriptor, "common: missing lineHeight, base, scaleW or scaleH")
	}
	if len(in.Pages) > 1 {
		return nil, errors.Wrap(ErrMalformedDescriptor, "multi-page fonts are not supported")
	}

	d := &Descriptor{
		Face:       in.Info.Face,
		Size:       *in.Info.Size,
		FirstChar:  in.Info.FirstChar,
		NumChars:   in.Info.NumChars,
		LineHeight: *in.Common.LineHeight,
		Base:       *in.Common.Base,
		ScaleW:     *in.Common.ScaleW,
		ScaleH:     *in.Common.ScaleH,
		Chars:      make([]Char, 0, len(in.Chars)),
	}
	if len(in.Pages) == 1 {
		d.PageFile = in.Pages[0].File
	}
	for i, c := range in.Chars {
		if c.ID == nil || c.X == nil || c.Y == nil || c.Width == nil || c.Height == nil ||
			c.XOffset == nil || c.YOffset == nil || c.XAdvance == nil {
			return nil, errors.Wrap(ErrMalformedDescriptor, fmt.Sprintf("chars[%d]: missing required field", i))
		}
		d.Chars = append(d.Chars, Char{
			Rune: rune(*c.ID),
			GlyphMetrics: GlyphMetrics{
				X:        *c.X,
				Y:        *c.Y,
				Width:    *c.Width,
				Height:   *c.Height,
				XOffset:  *c.XOffset,
				YOffset:  *c.YOffset,
				XAdvance: *c.XAdvance,
			},
		})
	}
	d.reindex()
	return d, nil
}

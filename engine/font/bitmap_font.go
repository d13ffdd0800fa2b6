package font

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/memmaker/bakefont/engine/glhf"
)

// BitmapFont binds a baked font together at runtime: the atlas texture (owned),
// the text shader (borrowed, shared across fonts), the descriptor (owned) and
// the tile batch (owned). A dirty flag defers vertex rebuilds until the next
// Flush.
type BitmapFont struct {
	texture           *glhf.Texture
	shader            *glhf.Shader
	desc              *Descriptor
	batch             *TileBatch
	needsBufferUpdate bool
}

func NewBitmapFont(shader *glhf.Shader, texture *glhf.Texture, desc *Descriptor) *BitmapFont {
	return &BitmapFont{
		texture: texture,
		shader:  shader,
		desc:    desc,
		batch:   NewTileBatch(shader, texture),
	}
}

func (f *BitmapFont) Descriptor() *Descriptor {
	return f.desc
}

// Lookup returns the baked metrics for a codepoint. ok == false means the
// codepoint was outside the baked range or skipped during the bake.
func (f *BitmapFont) Lookup(ch rune) (GlyphMetrics, bool) {
	return f.desc.Lookup(ch)
}

// AppendRun adds a layout result to the batch.
func (f *BitmapFont) AppendRun(run *TextRun) {
	f.batch.Append(run.Tiles)
	f.MarkDirty()
}

// ClearText removes all tiles, e.g. before replaying runs after a re-bake.
func (f *BitmapFont) ClearText() {
	f.batch.Clear()
	f.MarkDirty()
}

func (f *BitmapFont) MarkDirty() {
	f.needsBufferUpdate = true
}

func (f *BitmapFont) TileCount() int {
	return f.batch.TileCount()
}

// Dirty reports whether the batch must be re-flushed before the next draw.
func (f *BitmapFont) Dirty() bool {
	return f.needsBufferUpdate
}

func (f *BitmapFont) SetPosition(pos mgl32.Vec3) {
	f.batch.SetPosition(pos)
}

// Flush rebuilds the vertex data from the live tiles if the font is dirty and
// is a no-op otherwise.
func (f *BitmapFont) Flush() {
	if !f.needsBufferUpdate {
		return
	}
	f.batch.Rebuild(f.desc.ScaleW, f.desc.ScaleH)
	f.needsBufferUpdate = false
}

// Replace swaps in a new atlas texture and descriptor after a re-bake. This
// is destructive: all existing tiles referenced the old atlas and are
// dropped, the caller replays its text runs against the new tables.
func (f *BitmapFont) Replace(texture *glhf.Texture, desc *Descriptor) {
	f.texture = texture
	f.desc = desc
	f.batch.Clear()
	f.batch.SetTexture(texture)
	f.MarkDirty()
}

func (f *BitmapFont) Draw() {
	f.Flush()
	f.batch.Draw()
}

package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memmaker/bakefont/engine/glhf"
)

func TestBuildVertexDataQuadPerTile(t *testing.T) {
	tile := Tile{X: 10, Y: 20, Width: 4, Height: 8, AtlasX: 32, AtlasY: 64}

	data := buildVertexData([]Tile{tile}, 128, 128)
	require.Len(t, data, 6*4)

	// top-left vertex
	assert.Equal(t, glhf.GlFloat(10), data[0])
	assert.Equal(t, glhf.GlFloat(20), data[1])
	assert.Equal(t, glhf.GlFloat(32.0/128.0), data[2])
	assert.Equal(t, glhf.GlFloat(64.0/128.0), data[3])

	// bottom-right vertex of the first triangle
	assert.Equal(t, glhf.GlFloat(14), data[8])
	assert.Equal(t, glhf.GlFloat(28), data[9])
	assert.Equal(t, glhf.GlFloat(36.0/128.0), data[10])
	assert.Equal(t, glhf.GlFloat(72.0/128.0), data[11])
}

func TestFlushClearsDirtyFlag(t *testing.T) {
	f := latinFont(t)

	f.AppendRun(Layout(f, "Hi", 0, 0))
	assert.True(t, f.Dirty())

	f.Flush()
	assert.False(t, f.Dirty())
	assert.Len(t, f.batch.VertexData(), 2*6*4)

	// flushing a clean font is a no-op
	f.Flush()
	assert.False(t, f.Dirty())
}

func TestClearTextDropsAllTiles(t *testing.T) {
	f := latinFont(t)

	f.AppendRun(Layout(f, "Hi", 0, 0))
	f.AppendRun(Layout(f, "You", 0, 40))
	assert.Equal(t, 5, f.TileCount())

	f.ClearText()
	assert.Equal(t, 0, f.TileCount())
	assert.True(t, f.Dirty())
}

func TestReplaceInvalidatesTiles(t *testing.T) {
	f := latinFont(t)
	f.AppendRun(Layout(f, "Hi", 0, 0))
	f.Flush()

	request := latinRequest()
	request.FontSize = 32
	rebaked := bakeWith(t, request)

	f.Replace(nil, rebaked.Descriptor)
	assert.Equal(t, 0, f.TileCount(), "old tiles referenced the old atlas")
	assert.True(t, f.Dirty())
	assert.Equal(t, float64(32), f.Descriptor().Size)

	// replaying the run against the new descriptor restores the text
	f.AppendRun(Layout(f, "Hi", 0, 0))
	assert.Equal(t, 2, f.TileCount())
}

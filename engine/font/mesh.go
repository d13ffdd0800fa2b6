package font

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/memmaker/bakefont/engine/glhf"
	"github.com/memmaker/bakefont/engine/util"
)

// TileBatch holds all live tiles of one font plus the flattened vertex data
// they turn into. Tiles are append-only; removing a run means clearing and
// replaying the surviving runs.
type TileBatch struct {
	shader   *glhf.Shader
	texture  *glhf.Texture
	vertices *glhf.VertexSlice
	raw      []glhf.GlFloat
	tiles    []Tile
	pos      mgl32.Vec3
}

func NewTileBatch(shader *glhf.Shader, texture *glhf.Texture) *TileBatch {
	return &TileBatch{
		shader:  shader,
		texture: texture,
	}
}

func (b *TileBatch) Append(tiles []Tile) {
	b.tiles = append(b.tiles, tiles...)
}

func (b *TileBatch) Clear() {
	b.tiles = nil
	b.raw = nil
	b.vertices = nil
}

func (b *TileBatch) TileCount() int {
	return len(b.tiles)
}

func (b *TileBatch) SetTexture(texture *glhf.Texture) {
	b.texture = texture
}

func (b *TileBatch) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

// Rebuild flattens the current tiles into vertex data for an atlas of the
// given dimensions and uploads it when a shader is attached.
func (b *TileBatch) Rebuild(scaleW, scaleH int) {
	b.raw = buildVertexData(b.tiles, scaleW, scaleH)
	if b.shader == nil {
		return
	}
	vertices := glhf.MakeVertexSlice(b.shader, len(b.raw)/4, len(b.raw)/4)
	vertices.Begin()
	vertices.SetVertexData(b.raw)
	vertices.End()
	b.vertices = vertices
}

// VertexData returns the flattened vertex data of the last Rebuild.
func (b *TileBatch) VertexData() []glhf.GlFloat {
	return b.raw
}

func (b *TileBatch) Draw() {
	if b.vertices == nil {
		return
	}
	if b.texture == nil {
		util.LogTextError("TileBatch: texture is nil")
		return
	}
	b.shader.SetUniformAttr(1, b.GetTransformMatrix())

	b.texture.Begin()

	b.vertices.Begin()
	b.vertices.Draw()
	b.vertices.End()

	b.texture.End()
}

func (b *TileBatch) GetTransformMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(b.pos.X(), b.pos.Y(), b.pos.Z())
}

// buildVertexData emits two triangles per tile, four floats per vertex:
// position x, y and texture u, v.
func buildVertexData(tiles []Tile, scaleW, scaleH int) []glhf.GlFloat {
	atlasWidth := glhf.GlFloat(scaleW)
	atlasHeight := glhf.GlFloat(scaleH)
	rawVertices := make([]glhf.GlFloat, 0, len(tiles)*6*4)
	for _, tile := range tiles {
		width := glhf.GlFloat(tile.Width)
		height := glhf.GlFloat(tile.Height)

		leftU := glhf.GlFloat(tile.AtlasX) / atlasWidth
		rightU := (glhf.GlFloat(tile.AtlasX) + width) / atlasWidth
		topV := glhf.GlFloat(tile.AtlasY) / atlasHeight
		bottomV := (glhf.GlFloat(tile.AtlasY) + height) / atlasHeight

		left := glhf.GlFloat(tile.X)
		top := glhf.GlFloat(tile.Y)

		rawVertices = append(rawVertices, []glhf.GlFloat{
			// first triangle
			// Top-left
			left, top, leftU, topV,
			// Bottom-left
			left, top + height, leftU, bottomV,
			// Bottom-right
			left + width, top + height, rightU, bottomV,

			// second triangle
			// Top-left
			left, top, leftU, topV,
			// Bottom-right
			left + width, top + height, rightU, bottomV,
			// Top-right
			left + width, top, rightU, topV,
		}...)
	}
	return rawVertices
}

package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/memmaker/bakefont/engine/font"
	"github.com/memmaker/bakefont/engine/glhf"
	"github.com/memmaker/bakefont/engine/util"
)

// Engine is the explicit handle for the host-facing font operations: import,
// re-bake, export and load. One Engine drives one displayed BitmapFont; the
// display slot starts empty and is created on the first successful bake.
//
// A failed bake or load leaves the currently displayed font and its tiles
// untouched.
type Engine struct {
	shader   *glhf.Shader
	request  font.BakeRequest
	lastBake *font.BakeResult
	display  *font.BitmapFont
	runs     []displayRun
}

type displayRun struct {
	text string
	x, y float32
}

func NewEngine(shader *glhf.Shader) *Engine {
	return &Engine{shader: shader}
}

// SetText replaces the displayed text. The runs are remembered so they can be
// replayed after every re-bake.
func (e *Engine) SetText(text string, x, y float32) {
	e.runs = []displayRun{{text: text, x: x, y: y}}
	e.replayRuns()
}

// AddText appends another remembered run at the given origin.
func (e *Engine) AddText(text string, x, y float32) {
	e.runs = append(e.runs, displayRun{text: text, x: x, y: y})
	e.replayRuns()
}

// ImportFont bakes the font at the given path with the engine's current atlas
// settings (or defaults when nothing was baked yet).
func (e *Engine) ImportFont(path string, pixelSize float64) error {
	request := e.request
	if request.AtlasWidth == 0 {
		request = defaultRequest()
	}
	request.FontPath = path
	request.FontSize = pixelSize
	request.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return e.ImportRequest(request)
}

// ImportRequest bakes with fully caller-controlled settings.
func (e *Engine) ImportRequest(request font.BakeRequest) error {
	result, err := font.Bake(request)
	if err != nil {
		return err
	}
	e.request = request
	e.present(result)
	return nil
}

// Rebake re-runs the pipeline for the imported font with new settings. Every
// re-bake is a full rebuild of the atlas.
func (e *Engine) Rebake(pixelSize float64, atlasWidth, atlasHeight, firstChar, numChars int) error {
	if e.request.FontPath == "" {
		return errors.New("no font imported")
	}
	request := e.request
	request.FontSize = pixelSize
	request.AtlasWidth = atlasWidth
	request.AtlasHeight = atlasHeight
	request.FirstChar = firstChar
	request.NumChars = numChars
	return e.ImportRequest(request)
}

// Export persists the last bake under outputName without re-baking.
func (e *Engine) Export(outputName string) error {
	if e.lastBake == nil {
		return errors.New("nothing baked yet")
	}
	return e.lastBake.WriteFiles(outputName)
}

// Load reads a persisted bake from disk and presents it.
func (e *Engine) Load(outputName string) error {
	desc, atlasImage, err := font.LoadBaked(outputName)
	if err != nil {
		return err
	}
	e.lastBake = nil
	e.presentLoaded(desc, util.NewTextureFromImage(atlasImage))
	return nil
}

func (e *Engine) Request() font.BakeRequest {
	return e.request
}

func (e *Engine) Display() *font.BitmapFont {
	return e.display
}

func (e *Engine) Draw() {
	if e.display == nil {
		return
	}
	e.display.Draw()
}

func (e *Engine) present(result *font.BakeResult) {
	e.lastBake = result
	atlas := result.Atlas
	texture := glhf.NewTexture(atlas.Bounds().Dx(), atlas.Bounds().Dy(), false, atlas.Pix)
	e.presentLoaded(result.Descriptor, texture)
}

// presentLoaded replaces the descriptor and texture but reuses the display
// entity when one exists.
func (e *Engine) presentLoaded(desc *font.Descriptor, texture *glhf.Texture) {
	if e.display == nil {
		e.display = font.NewBitmapFont(e.shader, texture, desc)
	} else {
		e.display.Replace(texture, desc)
	}
	e.replayRuns()
	util.LogTextDebug(fmt.Sprintf("[Engine] presenting %s with %d tiles", desc.Face, e.display.TileCount()))
}

func (e *Engine) replayRuns() {
	if e.display == nil {
		return
	}
	e.display.ClearText()
	for _, run := range e.runs {
		e.display.AppendRun(font.Layout(e.display, run.text, run.x, run.y))
	}
}

func defaultRequest() font.BakeRequest {
	return font.BakeRequest{
		FontSize:    20,
		AtlasWidth:  512,
		AtlasHeight: 512,
		FirstChar:   32,
		NumChars:    96,
	}
}

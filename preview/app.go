package preview

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/memmaker/bakefont/engine/font"
	"github.com/memmaker/bakefont/engine/glhf"
	"github.com/memmaker/bakefont/engine/util"
)

const sampleText = "The quick brown fox\njumps over the lazy dog\n0123456789 !\"#$%&'()*+,-./"

// App is the interactive font preview: it shows the sample text with the
// current bake and re-bakes on keypresses.
//
//	up / down    re-bake one pixel size larger / smaller
//	E            export descriptor + atlas under the request name
//	L            load them back from disk
//	escape       quit
type App struct {
	*util.GlApplication
	textShader *glhf.Shader
	engine     *Engine
}

func NewApp(title string, width, height int, request font.BakeRequest) *App {
	window, terminateFunc := util.InitOpenGL(title, width, height)
	glApp := &util.GlApplication{
		WindowWidth:   width,
		WindowHeight:  height,
		Window:        window,
		TerminateFunc: terminateFunc,
	}
	window.SetKeyCallback(glApp.KeyCallback)

	myApp := &App{
		GlApplication: glApp,
	}
	myApp.textShader = myApp.loadTextShader()
	myApp.engine = NewEngine(myApp.textShader)
	myApp.DrawFunc = myApp.Draw
	myApp.UpdateFunc = myApp.Update
	myApp.KeyHandler = myApp.handleKeyEvents

	myApp.engine.SetText(sampleText, 16, 16)
	if err := myApp.engine.ImportRequest(request); err != nil {
		util.LogBakeError(fmt.Sprintf("[Preview] initial bake failed: %s", err))
	}
	return myApp
}

func (a *App) Update(elapsed float64) {}

func (a *App) Draw(elapsed float64) {
	a.textShader.Begin()
	a.engine.Draw()
	a.textShader.End()
}

func (a *App) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	request := a.engine.Request()
	switch key {
	case glfw.KeyEscape:
		a.Window.SetShouldClose(true)
	case glfw.KeyUp:
		a.rebakeAt(request.FontSize + 1)
	case glfw.KeyDown:
		if request.FontSize > 1 {
			a.rebakeAt(request.FontSize - 1)
		}
	case glfw.KeyE:
		if err := a.engine.Export(request.Name); err != nil {
			util.LogIOError(fmt.Sprintf("[Preview] export failed: %s", err))
		}
	case glfw.KeyL:
		if err := a.engine.Load(request.Name); err != nil {
			util.LogIOError(fmt.Sprintf("[Preview] load failed: %s", err))
		}
	}
}

func (a *App) rebakeAt(pixelSize float64) {
	request := a.engine.Request()
	err := a.engine.Rebake(pixelSize, request.AtlasWidth, request.AtlasHeight, request.FirstChar, request.NumChars)
	if err != nil {
		// the previous bake stays on screen
		util.LogBakeError(fmt.Sprintf("[Preview] re-bake at %.0fpx failed: %s", pixelSize, err))
	}
}

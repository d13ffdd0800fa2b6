package util

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/bakefont/engine/glhf"
)

type GlApplication struct {
	Window          *glfw.Window
	TerminateFunc   func()
	UpdateFunc      func(elapsed float64)
	DrawFunc        func(elapsed float64)
	KeyHandler      func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	WindowWidth     int
	WindowHeight    int
	ticks           uint64
	FramesPerSecond float64
	FPSRunningAvg   float64
	FPSMin          float64
	FPSMax          float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(
			key,
			scancode,
			action,
			mods,
		)
	}
}

func (a *GlApplication) Run() {
	defer a.TerminateFunc()
	previousTime := glfw.GetTime()
	shouldQuit := false
	time := glfw.GetTime()
	for !shouldQuit {
		if a.Window.ShouldClose() {
			shouldQuit = true
		}

		glhf.Clear(0, 0, 0, 1)

		time = glfw.GetTime()
		elapsed := time - previousTime
		previousTime = time
		a.UpdateFunc(elapsed)

		a.DrawFunc(elapsed)

		a.FramesPerSecond = 1.0 / elapsed
		if a.ticks%60 == 0 {
			sixtyTicksAverage := a.FPSRunningAvg
			a.Window.SetTitle(fmt.Sprintf("FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f) / Elapsed: %.3f", a.FramesPerSecond, sixtyTicksAverage, a.FPSMin, a.FPSMax, elapsed*1000))
			a.FPSRunningAvg = 0 + a.FramesPerSecond*(1.0/60.0)
			a.FPSMin = math.MaxFloat64
			a.FPSMax = 0
		} else {
			a.FPSRunningAvg = a.FPSRunningAvg + a.FramesPerSecond*(1.0/60.0)
			if a.FramesPerSecond < a.FPSMin {
				a.FPSMin = a.FramesPerSecond
			}
			if a.FramesPerSecond > a.FPSMax {
				a.FPSMax = a.FramesPerSecond
			}
		}

		a.Window.SwapBuffers()
		glfw.PollEvents()
		a.ticks++
	}
}

func InitOpenGL(title string, width, height int) (*glfw.Window, func()) {
	var win *glfw.Window
	glErr := glfw.Init()
	if glErr != nil {
		println("glfw: ", glErr.Error())
		panic(glErr)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var err error

	win, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // enable (1) vsync

	glhf.Init()

	version := gl.GoStr(gl.GetString(gl.VERSION))
	LogGlInfo(fmt.Sprintf("OpenGL version %s", version))

	return win, func() {
		glfw.Terminate()
	}
}

// NewTextureFromImage creates a new texture from any decoded image,
// converting it to NRGBA first.
func NewTextureFromImage(img image.Image) *glhf.Texture {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return glhf.NewTexture(
		nrgba.Bounds().Dx(),
		nrgba.Bounds().Dy(),
		false,
		nrgba.Pix,
	)
}

func Get2DPixelCoordOrthographicProjectionMatrix(width, height int) mgl32.Mat4 {
	// we want 0,0 to be at the top left
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}

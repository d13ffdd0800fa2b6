package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init initializes OpenGL by loading the function pointers from the active
// OpenGL context. This function must be manually run inside the main thread,
// after the context is created and made current.
//
// It also enables alpha blending, which text rendering relies on.
func Init() {
	err := gl.Init()
	if err != nil {
		panic(errors.Wrap(err, "failed to initialize OpenGL"))
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Clear clears the current framebuffer with the given color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

const SizeOfFloat32 = 4

package preview

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/memmaker/bakefont/engine/glhf"
	"github.com/memmaker/bakefont/engine/util"
)

var (
	//go:embed shader/text.vert
	textVertexShaderSource string

	//go:embed shader/text.frag
	textFragmentShaderSource string
)

func (a *App) loadTextShader() *glhf.Shader {
	var (
		vertexFormat = glhf.AttrFormat{
			{Name: "position", Type: glhf.Vec2},
			{Name: "texCoord", Type: glhf.Vec2},
		}
		uniformFormat = glhf.AttrFormat{
			glhf.Attr{Name: "projection", Type: glhf.Mat4},
			glhf.Attr{Name: "model", Type: glhf.Mat4},
			glhf.Attr{Name: "textColor", Type: glhf.Vec4},
		}
		shader *glhf.Shader
	)
	var err error
	shader, err = glhf.NewShader(vertexFormat, uniformFormat, textVertexShaderSource, textFragmentShaderSource)

	if err != nil {
		panic(err)
	}

	shader.Begin()
	shader.SetUniformAttr(0, util.Get2DPixelCoordOrthographicProjectionMatrix(a.WindowWidth, a.WindowHeight))
	shader.SetUniformAttr(1, mgl32.Ident4())
	shader.SetUniformAttr(2, mgl32.Vec4{1, 1, 1, 1})
	shader.End()
	return shader
}

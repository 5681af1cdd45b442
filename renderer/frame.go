package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goquad/graphics"
)

type frame struct {
	r   *Renderer
	pts int64
}

func (f *frame) Clear(c graphics.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (f *frame) Draw(vb graphics.VertexBuffer, ib graphics.IndexBuffer, p graphics.Program, uniforms graphics.Uniforms) error {
	vertices, ok := vb.(*vertexBuffer)
	if !ok {
		return graphics.Fail("draw", fmt.Errorf("vertex buffer %T was not created by this renderer", vb))
	}
	indices, ok := ib.(*indexBuffer)
	if !ok {
		return graphics.Fail("draw", fmt.Errorf("index buffer %T was not created by this renderer", ib))
	}
	if p == nil {
		return graphics.Fail("draw", fmt.Errorf("no program"))
	}
	mode, err := primitiveMode(indices.topology)
	if err != nil {
		return graphics.Fail("draw", err)
	}

	gl.UseProgram(p.Handle())
	setUniforms(p.Handle(), uniforms)
	gl.BindVertexArray(vertices.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices.ebo)
	gl.DrawElements(mode, int32(indices.count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return checkError("draw")
}

// Finish hands the frame to the sink, if any, and presents it.
func (f *frame) Finish() error {
	if f.r.sink != nil {
		if err := f.r.capture(f.pts); err != nil {
			return err
		}
	}
	f.r.context.SwapBuffers()
	return checkError("present")
}

func setUniforms(program uint32, uniforms graphics.Uniforms) {
	for name, v := range uniforms {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc != -1 {
			gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
		}
	}
}

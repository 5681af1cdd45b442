package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/shader"
)

// glInitOnce ensures gl.Init() is called only once per process.
var glInitOnce sync.Once

// Renderer is the OpenGL implementation of graphics.Surface.
type Renderer struct {
	context graphics.Context
	sink    FrameSink

	positionAttribute string

	programs []uint32
	vaos     []uint32
	buffers  []uint32

	frameCount int64
}

func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{
		context:           ctx,
		positionAttribute: shader.PositionAttribute,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, graphics.Fail("create surface", fmt.Errorf("failed to initialize OpenGL: %w", initErr))
	}
	log.Printf("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return r, nil
}

// SetPositionAttribute names the vertex input bound to location 0 when
// programs are linked. Translated shaders rename their inputs.
func (r *Renderer) SetPositionAttribute(name string) {
	r.positionAttribute = name
}

// SetFrameSink attaches a consumer that receives every finished frame.
func (r *Renderer) SetFrameSink(sink FrameSink) {
	r.sink = sink
}

func (r *Renderer) IsGLES() bool {
	return r.context.IsGLES()
}

func (r *Renderer) PollEvents() []graphics.Event {
	return r.context.PollEvents()
}

// BeginFrame binds the default framebuffer and sizes the viewport to it.
func (r *Renderer) BeginFrame() graphics.Frame {
	width, height := r.context.GetFramebufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	f := &frame{r: r, pts: r.frameCount}
	r.frameCount++
	return f
}

func (r *Renderer) Shutdown() {
	for _, p := range r.programs {
		gl.DeleteProgram(p)
	}
	if len(r.buffers) > 0 {
		gl.DeleteBuffers(int32(len(r.buffers)), &r.buffers[0])
	}
	if len(r.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(r.vaos)), &r.vaos[0])
	}
	r.programs, r.buffers, r.vaos = nil, nil, nil
	r.context.Shutdown()
}

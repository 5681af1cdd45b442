package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goquad/graphics"
)

var vertexStride = int32(unsafe.Sizeof(graphics.Vertex{}))

// vertexBuffer owns a VAO with the positions bound to attribute 0.
type vertexBuffer struct {
	vao   uint32
	vbo   uint32
	count int
}

func (b *vertexBuffer) Handle() uint32 { return b.vao }
func (b *vertexBuffer) Len() int       { return b.count }

type indexBuffer struct {
	ebo      uint32
	count    int
	topology graphics.Topology
}

func (b *indexBuffer) Handle() uint32              { return b.ebo }
func (b *indexBuffer) Len() int                    { return b.count }
func (b *indexBuffer) Topology() graphics.Topology { return b.topology }

func (r *Renderer) NewVertexBuffer(vertices []graphics.Vertex) (graphics.VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("vertex buffer is empty")
	}
	b := &vertexBuffer{count: len(vertices)}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vaos = append(r.vaos, b.vao)
	r.buffers = append(r.buffers, b.vbo)
	if err := checkError("upload vertex buffer"); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Renderer) NewIndexBuffer(indices []uint32, topology graphics.Topology) (graphics.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("index buffer is empty")
	}
	if _, err := primitiveMode(topology); err != nil {
		return nil, err
	}
	if topology == graphics.TrianglesList && len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangle list needs a multiple of 3 indices, got %d", len(indices))
	}
	b := &indexBuffer{count: len(indices), topology: topology}
	gl.GenBuffers(1, &b.ebo)
	// The element binding is VAO state, so the data goes in through
	// ARRAY_BUFFER and the buffer is bound as indices at draw time.
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.buffers = append(r.buffers, b.ebo)
	if err := checkError("upload index buffer"); err != nil {
		return nil, err
	}
	return b, nil
}

func primitiveMode(t graphics.Topology) (uint32, error) {
	switch t {
	case graphics.TrianglesList:
		return gl.TRIANGLES, nil
	default:
		return 0, fmt.Errorf("unsupported topology %v", t)
	}
}

// Package scene uploads the static quad the frame loop draws every frame.
package scene

import (
	"log"

	"github.com/richinsley/goquad/frameloop"
	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/shader"
)

// QuadVertices are the quad corners in normalized device coordinates, listed
// counter-clockwise.
var QuadVertices = []graphics.Vertex{
	{Position: [2]float32{-1, -1}},
	{Position: [2]float32{1, -1}},
	{Position: [2]float32{1, 1}},
	{Position: [2]float32{-1, 1}},
}

// QuadIndices split the quad into two triangles.
var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}

// NewQuad compiles src and uploads the quad geometry. Every error is a
// *graphics.BackendError.
func NewQuad(dev graphics.Device, src shader.Sources) (frameloop.Drawable, error) {
	program, err := dev.CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return frameloop.Drawable{}, graphics.Fail("compile program", err)
	}
	vb, err := dev.NewVertexBuffer(QuadVertices)
	if err != nil {
		return frameloop.Drawable{}, graphics.Fail("upload vertex buffer", err)
	}
	ib, err := dev.NewIndexBuffer(QuadIndices, graphics.TrianglesList)
	if err != nil {
		return frameloop.Drawable{}, graphics.Fail("upload index buffer", err)
	}
	log.Printf("Quad ready: %d vertices, %d indices (%v)", vb.Len(), ib.Len(), ib.Topology())
	return frameloop.Drawable{Vertices: vb, Indices: ib, Program: program}, nil
}

package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goquad/graphics"
)

func TestErrorString(t *testing.T) {
	cases := map[uint32]string{
		gl.INVALID_ENUM:      "GL_INVALID_ENUM",
		gl.INVALID_OPERATION: "GL_INVALID_OPERATION",
		gl.OUT_OF_MEMORY:     "GL_OUT_OF_MEMORY",
		0x1234:               "GL error 0x1234",
	}
	for code, want := range cases {
		if got := errorString(code); got != want {
			t.Errorf("errorString(0x%x) = %q, want %q", code, got, want)
		}
	}
}

func TestPrimitiveMode(t *testing.T) {
	mode, err := primitiveMode(graphics.TrianglesList)
	if err != nil || mode != gl.TRIANGLES {
		t.Fatalf("primitiveMode(TrianglesList) = %v, %v", mode, err)
	}
	if _, err := primitiveMode(graphics.Topology(42)); err == nil {
		t.Error("unknown topology should be rejected")
	}
}

func TestVertexStride(t *testing.T) {
	if vertexStride != 8 {
		t.Errorf("vertexStride = %d, want 8 (two float32)", vertexStride)
	}
}

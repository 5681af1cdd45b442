// Package graphics describes the rendering capabilities the frame loop
// consumes. Implementations live in renderer.
package graphics

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var Blue = Color{0, 0, 1, 1}

// Vertex is a single 2D position in normalized device coordinates.
type Vertex struct {
	Position [2]float32
}

// Topology is the interpretation of an index sequence.
type Topology int

const (
	TrianglesList Topology = iota
)

func (t Topology) String() string {
	if t == TrianglesList {
		return "triangles"
	}
	return "unknown"
}

// Uniforms maps uniform names to vec4 values. Components past the uniform's
// declared size are ignored.
type Uniforms map[string][4]float32

// Program is a linked vertex/fragment shader pair.
type Program interface {
	Handle() uint32
}

type VertexBuffer interface {
	Handle() uint32
	Len() int
}

type IndexBuffer interface {
	Handle() uint32
	Len() int
	Topology() Topology
}

// Device creates GPU resources.
type Device interface {
	CompileProgram(vertexSource, fragmentSource string) (Program, error)
	NewVertexBuffer(vertices []Vertex) (VertexBuffer, error)
	NewIndexBuffer(indices []uint32, topology Topology) (IndexBuffer, error)
}

// Frame is one renderable target, presented by Finish.
type Frame interface {
	Clear(c Color)
	Draw(vb VertexBuffer, ib IndexBuffer, program Program, uniforms Uniforms) error
	Finish() error
}

// Surface is a Device bound to a presentable window or pbuffer.
type Surface interface {
	Device
	BeginFrame() Frame
	PollEvents() []Event
	Shutdown()
}

package frameloop

import (
	"errors"
	"testing"

	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/input"
)

type handle uint32

func (h handle) Handle() uint32 { return uint32(h) }

type fakeVertices struct{ handle }

func (fakeVertices) Len() int { return 4 }

type fakeIndices struct{ handle }

func (fakeIndices) Len() int                    { return 6 }
func (fakeIndices) Topology() graphics.Topology { return graphics.TrianglesList }

type fakeSurface struct {
	// batches[i] is returned by the i-th PollEvents call.
	batches  [][]graphics.Event
	polls    int
	draws    int
	finishes int
	clears   []graphics.Color
	drawErr  error
	finErr   error
}

type fakeFrame struct{ s *fakeSurface }

func (f fakeFrame) Clear(c graphics.Color) { f.s.clears = append(f.s.clears, c) }

func (f fakeFrame) Draw(graphics.VertexBuffer, graphics.IndexBuffer, graphics.Program, graphics.Uniforms) error {
	f.s.draws++
	return f.s.drawErr
}

func (f fakeFrame) Finish() error {
	f.s.finishes++
	return f.s.finErr
}

func (s *fakeSurface) BeginFrame() graphics.Frame { return fakeFrame{s} }

func (s *fakeSurface) PollEvents() []graphics.Event {
	defer func() { s.polls++ }()
	if s.polls < len(s.batches) {
		return s.batches[s.polls]
	}
	return nil
}

func (s *fakeSurface) CompileProgram(string, string) (graphics.Program, error) { return handle(1), nil }
func (s *fakeSurface) NewVertexBuffer([]graphics.Vertex) (graphics.VertexBuffer, error) {
	return fakeVertices{2}, nil
}
func (s *fakeSurface) NewIndexBuffer([]uint32, graphics.Topology) (graphics.IndexBuffer, error) {
	return fakeIndices{3}, nil
}
func (s *fakeSurface) Shutdown() {}

func newDriver(s *fakeSurface, opts Options) *Driver {
	d := Drawable{Vertices: fakeVertices{2}, Indices: fakeIndices{3}, Program: handle(1)}
	return New(s, d, Geometry{Width: 800, Height: 600}, opts)
}

func pressed(k input.Key) graphics.KeyEvent {
	return graphics.KeyEvent{State: input.Pressed, Key: k, HasKey: true}
}

func released(k input.Key) graphics.KeyEvent {
	return graphics.KeyEvent{State: input.Released, Key: k, HasKey: true}
}

func TestCloseStopsLoop(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		nil,
		{graphics.CloseEvent{}, pressed(input.KeyA)},
	}}
	d := newDriver(s, DefaultOptions())

	if err := d.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if d.State() != Terminated {
		t.Fatalf("state = %v, want terminated", d.State())
	}
	if s.draws != 2 || s.finishes != 2 {
		t.Errorf("draws=%d finishes=%d, want 2 each", s.draws, s.finishes)
	}
	if d.Tracker().IsPressed(input.KeyA) {
		t.Error("events after close must not be applied")
	}

	// terminated is absorbing
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if s.draws != 2 {
		t.Errorf("Step after termination drew a frame")
	}
}

func TestEscapeStopsLoop(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		{released(input.KeyEscape)},
		{pressed(input.KeyLeft)},
		{pressed(input.KeyEscape)},
		{graphics.CloseEvent{}},
	}}
	d := newDriver(s, DefaultOptions())

	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if d.Frames() != 3 {
		t.Errorf("frames = %d, want 3", d.Frames())
	}
	if s.polls != 3 {
		t.Errorf("polls = %d, want 3", s.polls)
	}
}

func TestEscapeReleasedWithinBatch(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		{pressed(input.KeyEscape), released(input.KeyEscape)},
		{released(input.KeyEscape), pressed(input.KeyEscape)},
	}}
	d := newDriver(s, DefaultOptions())

	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if d.Frames() != 2 {
		t.Errorf("only the latest state per frame counts; frames = %d, want 2", d.Frames())
	}
}

func TestResizeUpdatesGeometryOnly(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		{pressed(input.KeyW), graphics.ResizeEvent{Width: 1024, Height: 768}},
		{graphics.ResizeEvent{Width: 320, Height: 200}},
		{graphics.CloseEvent{}},
	}}
	d := newDriver(s, DefaultOptions())

	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if got := d.Geometry(); got != (Geometry{1024, 768}) {
		t.Errorf("geometry = %+v, want 1024x768", got)
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if got := d.Geometry(); got != (Geometry{320, 200}) {
		t.Errorf("geometry = %+v, want 320x200", got)
	}
	if !d.Tracker().IsPressed(input.KeyW) {
		t.Error("resize must not alter key states")
	}
	if d.State() != Running {
		t.Errorf("state = %v, want running", d.State())
	}
}

func TestUnresolvedAndOtherEventsIgnored(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		{
			graphics.KeyEvent{State: input.Pressed, Key: input.KeyEscape, HasKey: false},
			graphics.OtherEvent{Kind: "focus"},
		},
		{graphics.CloseEvent{}},
	}}
	d := newDriver(s, DefaultOptions())

	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if d.State() != Running {
		t.Fatal("a key event without a key code must be ignored")
	}
	if d.Geometry() != (Geometry{800, 600}) {
		t.Error("geometry should be unchanged")
	}
}

func TestClearColor(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{{graphics.CloseEvent{}}}}
	d := newDriver(s, DefaultOptions())
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if len(s.clears) != 1 || s.clears[0] != (graphics.Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("clears = %v, want one opaque blue clear", s.clears)
	}
}

func TestBackendFailureIsReturned(t *testing.T) {
	cause := errors.New("GL_OUT_OF_MEMORY")

	t.Run("Draw", func(t *testing.T) {
		s := &fakeSurface{drawErr: graphics.Fail("draw", cause)}
		d := newDriver(s, DefaultOptions())
		err := d.Run()
		var be *graphics.BackendError
		if !errors.As(err, &be) || be.Op != "draw" {
			t.Fatalf("Run error = %v, want draw BackendError", err)
		}
		if s.finishes != 0 {
			t.Error("a failed draw must not present")
		}
		if d.State() != Terminated {
			t.Error("driver should terminate on failure")
		}
	})

	t.Run("Finish", func(t *testing.T) {
		s := &fakeSurface{finErr: graphics.Fail("finish", cause)}
		d := newDriver(s, DefaultOptions())
		err := d.Run()
		if !errors.Is(err, cause) {
			t.Fatalf("Run error = %v, want wrapping %v", err, cause)
		}
		if s.polls != 0 {
			t.Error("events must not be drained after a failed present")
		}
	})
}

func TestMaxFrames(t *testing.T) {
	s := &fakeSurface{}
	opts := DefaultOptions()
	opts.MaxFrames = 5
	d := newDriver(s, opts)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if d.Frames() != 5 || s.draws != 5 {
		t.Errorf("frames=%d draws=%d, want 5", d.Frames(), s.draws)
	}
}

func TestCustomExitKey(t *testing.T) {
	s := &fakeSurface{batches: [][]graphics.Event{
		{pressed(input.KeyEscape)},
		{pressed(input.KeyQ)},
	}}
	opts := DefaultOptions()
	opts.ExitKey = input.KeyQ
	d := newDriver(s, opts)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if d.Frames() != 2 {
		t.Errorf("frames = %d, want 2", d.Frames())
	}
}

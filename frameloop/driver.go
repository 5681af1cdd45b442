// Package frameloop runs the per-frame draw, present and event-drain cycle.
package frameloop

import (
	"fmt"
	"log"

	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/input"
)

// State of the driver. Terminated is absorbing.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Geometry is the current window size in pixels.
type Geometry struct {
	Width, Height int
}

// Drawable is the static content submitted once per frame.
type Drawable struct {
	Vertices graphics.VertexBuffer
	Indices  graphics.IndexBuffer
	Program  graphics.Program
}

type Options struct {
	ClearColor graphics.Color
	ExitKey    input.Key
	// MaxFrames stops the loop after that many completed frames. Zero means
	// the loop only ends on close or the exit key.
	MaxFrames int
}

func DefaultOptions() Options {
	return Options{
		ClearColor: graphics.Blue,
		ExitKey:    input.KeyEscape,
	}
}

type Driver struct {
	surface  graphics.Surface
	drawable Drawable
	opts     Options
	tracker  *input.Tracker
	geometry Geometry
	state    State
	frames   int
}

func New(surface graphics.Surface, drawable Drawable, initial Geometry, opts Options) *Driver {
	return &Driver{
		surface:  surface,
		drawable: drawable,
		opts:     opts,
		tracker:  input.NewTracker(),
		geometry: initial,
		state:    Running,
	}
}

func (d *Driver) State() State            { return d.state }
func (d *Driver) Geometry() Geometry      { return d.geometry }
func (d *Driver) Frames() int             { return d.frames }
func (d *Driver) Tracker() *input.Tracker { return d.tracker }

// Run iterates until the window is closed, the exit key is pressed or
// MaxFrames is reached. Backend failures end the loop and are returned as-is.
func (d *Driver) Run() error {
	for d.state == Running {
		if err := d.Step(); err != nil {
			d.state = Terminated
			return err
		}
	}
	return nil
}

// Step performs one iteration. It is a no-op once the driver has terminated.
func (d *Driver) Step() error {
	if d.state == Terminated {
		return nil
	}

	frame := d.surface.BeginFrame()
	frame.Clear(d.opts.ClearColor)
	if err := frame.Draw(d.drawable.Vertices, d.drawable.Indices, d.drawable.Program, graphics.Uniforms{}); err != nil {
		return fmt.Errorf("frame %d: %w", d.frames, err)
	}
	if err := frame.Finish(); err != nil {
		return fmt.Errorf("frame %d: %w", d.frames, err)
	}
	d.frames++

	for _, ev := range d.surface.PollEvents() {
		if d.apply(ev) {
			log.Printf("Window closed after %d frames", d.frames)
			d.state = Terminated
			return nil
		}
	}

	if d.tracker.GetKeyState(d.opts.ExitKey) == input.Pressed {
		log.Printf("%v pressed after %d frames", d.opts.ExitKey, d.frames)
		d.state = Terminated
		return nil
	}
	if d.opts.MaxFrames > 0 && d.frames >= d.opts.MaxFrames {
		log.Printf("Frame limit %d reached", d.opts.MaxFrames)
		d.state = Terminated
	}
	return nil
}

// apply folds one event into the driver state and reports whether it closes the loop.
func (d *Driver) apply(ev graphics.Event) bool {
	switch e := ev.(type) {
	case graphics.CloseEvent:
		return true
	case graphics.ResizeEvent:
		d.geometry = Geometry{Width: e.Width, Height: e.Height}
	case graphics.KeyEvent:
		if e.HasKey {
			d.tracker.SetKeyState(e.Key, e.State)
		}
	}
	return false
}

package graphics

import "github.com/richinsley/goquad/input"

// Event is a platform event drained once per frame.
type Event interface {
	isEvent()
}

// CloseEvent is delivered when the user asks to close the window.
type CloseEvent struct{}

// ResizeEvent carries the new framebuffer size.
type ResizeEvent struct {
	Width, Height int
}

// KeyEvent is a keyboard transition. HasKey is false when the platform key
// has no input.Key equivalent.
type KeyEvent struct {
	State  input.State
	Key    input.Key
	HasKey bool
}

// OtherEvent stands in for platform events the loop does not act on.
type OtherEvent struct {
	Kind string
}

func (CloseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (KeyEvent) isEvent()    {}
func (OtherEvent) isEvent()  {}

package graphics

// Context defines the interface for an OpenGL context and the platform
// window or pbuffer that owns it.
type Context interface {
	MakeCurrent()
	Shutdown()
	SwapBuffers()
	// PollEvents returns every platform event delivered since the previous call.
	PollEvents() []Event
	GetFramebufferSize() (int, int)
	IsGLES() bool
}

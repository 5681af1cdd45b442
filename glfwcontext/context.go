package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goquad/graphics"
	options "github.com/richinsley/goquad/options"
)

// Context owns a GLFW window and queues its events until the next PollEvents.
type Context struct {
	window *glfw.Window
	events []graphics.Event
}

// New creates a GLFW window with an OpenGL 4.1 core context.
func New(cfg *options.Config) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if cfg.WindowResizable() {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Display.Width, cfg.Display.Height, cfg.Display.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetCloseCallback(c.glfwCloseCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFocusCallback(c.glfwFocusCallback)

	return c, nil
}

func (c *Context) glfwCloseCallback(w *glfw.Window) {
	c.events = append(c.events, graphics.CloseEvent{})
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	// Minimizing reports 0x0; that is not a size the loop can render at.
	if width <= 0 || height <= 0 {
		c.events = append(c.events, graphics.OtherEvent{Kind: "minimize"})
		return
	}
	c.events = append(c.events, graphics.ResizeEvent{Width: width, Height: height})
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.events = append(c.events, keyEvent(key, action))
}

func (c *Context) glfwFocusCallback(w *glfw.Window, focused bool) {
	c.events = append(c.events, graphics.OtherEvent{Kind: "focus"})
}

// PollEvents processes pending GLFW events and returns them in delivery order.
func (c *Context) PollEvents() []graphics.Event {
	glfw.PollEvents()
	events := c.events
	c.events = nil
	return events
}

func (c *Context) IsGLES() bool {
	return false
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

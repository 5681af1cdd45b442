package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyApostrophe:   input.KeyApostrophe,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyPeriod:       input.KeyPeriod,
	glfw.KeySlash:        input.KeySlash,
	glfw.KeySemicolon:    input.KeySemicolon,
	glfw.KeyEqual:        input.KeyEqual,
	glfw.KeyLeftBracket:  input.KeyLeftBracket,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeyRightBracket: input.KeyRightBracket,
	glfw.KeyGraveAccent:  input.KeyGraveAccent,
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyInsert:       input.KeyInsert,
	glfw.KeyDelete:       input.KeyDelete,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyPageUp:       input.KeyPageUp,
	glfw.KeyPageDown:     input.KeyPageDown,
	glfw.KeyHome:         input.KeyHome,
	glfw.KeyEnd:          input.KeyEnd,
	glfw.KeyCapsLock:     input.KeyCapsLock,
	glfw.KeyScrollLock:   input.KeyScrollLock,
	glfw.KeyNumLock:      input.KeyNumLock,
	glfw.KeyPrintScreen:  input.KeyPrintScreen,
	glfw.KeyPause:        input.KeyPause,
	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyLeftSuper:    input.KeyLeftSuper,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyRightAlt:     input.KeyRightAlt,
	glfw.KeyRightSuper:   input.KeyRightSuper,
	glfw.KeyMenu:         input.KeyMenu,
}

// translateKey maps a GLFW key onto input.Key. Ranges that GLFW lays out
// contiguously are computed instead of listed.
func translateKey(key glfw.Key) (input.Key, bool) {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.Key0 + input.Key(key-glfw.Key0), true
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.KeyA + input.Key(key-glfw.KeyA), true
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return input.KeyF1 + input.Key(key-glfw.KeyF1), true
	}
	k, ok := keyMap[key]
	return k, ok
}

func translateAction(action glfw.Action) input.State {
	if action == glfw.Release {
		return input.Released
	}
	return input.Pressed
}

func keyEvent(key glfw.Key, action glfw.Action) graphics.KeyEvent {
	k, ok := translateKey(key)
	return graphics.KeyEvent{State: translateAction(action), Key: k, HasKey: ok}
}

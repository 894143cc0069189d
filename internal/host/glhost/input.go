//go:build !android

package glhost

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"backdrop/internal/app"
	"backdrop/internal/ui"
)

// bindInput forwards window callbacks to the session bus. Positions stay in
// window coordinates, the same space the surface draws in.
func bindInput(window *glfw.Window, bus *app.EventBus) {
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		bus.Emit(app.Event{Type: app.EventPointerMove, X: x, Y: y})
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			bus.Emit(app.Event{Type: app.EventPointerEnter})
			return
		}
		bus.Emit(app.Event{Type: app.EventPointerLeave})
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := mouseButton(b)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			bus.Emit(app.Event{Type: app.EventButtonDown, X: x, Y: y, Button: btn})
		case glfw.Release:
			bus.Emit(app.Event{Type: app.EventButtonUp, X: x, Y: y, Button: btn})
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		name := specialKeyName(key)
		if name == "" {
			name = glfw.GetKeyName(key, scancode)
			if mods&glfw.ModShift != 0 {
				name = strings.ToUpper(name)
			}
		}
		if name != "" {
			bus.Emit(app.Event{Type: app.EventKey, Key: name})
		}
	})
}

func mouseButton(b glfw.MouseButton) (app.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return app.ButtonLeft, true
	case glfw.MouseButtonRight:
		return app.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return app.ButtonMiddle, true
	}
	return 0, false
}

// specialKeyName names keys GetKeyName leaves blank.
func specialKeyName(key glfw.Key) string {
	switch key {
	case glfw.KeyUp:
		return ui.KeyArrowUp
	case glfw.KeyDown:
		return ui.KeyArrowDown
	case glfw.KeyLeft:
		return ui.KeyArrowLeft
	case glfw.KeyRight:
		return ui.KeyArrowRight
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return "Enter"
	case glfw.KeyTab:
		return "Tab"
	case glfw.KeyBackspace:
		return "Backspace"
	case glfw.KeySpace:
		return " "
	}
	return ""
}

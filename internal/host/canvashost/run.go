// Package canvashost runs a session on an SDL window through the
// tfriedel6/canvas drawing API.
package canvashost

import (
	"fmt"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"backdrop/internal/app"
	"backdrop/internal/host"
	"backdrop/internal/ui"
)

const (
	fontSize    = 18.0
	statsMargin = 24.0
	toastRise   = 64.0 // how far a toast travels while sliding in
)

var textColor = "#f7931e"

func Run(cfg host.Config, opts app.Options, log *zap.Logger) error {
	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return fmt.Errorf("sdl canvas window: %w", err)
	}
	defer wnd.Destroy()

	if _, err := sdl.ShowCursor(sdl.DISABLE); err != nil {
		log.Warn("hide cursor failed", zap.Error(err))
	}
	cv.SetFont(goregular.TTF, fontSize)

	surf := &Surface{cv: cv}
	opts.Width, opts.Height = surf.Size()
	opts.Clipboard = app.ClipboardFunc(sdl.SetClipboardText)
	sess, err := app.NewSession(opts)
	if err != nil {
		return err
	}
	bindInput(wnd, sess.Bus())

	log.Info("canvas host started",
		zap.Int("width", cv.Width()),
		zap.Int("height", cv.Height()),
	)

	clock := host.NewClock()
	wnd.MainLoop(func() {
		sess.Frame(surf, clock.Step())
		drawOverlay(cv, sess.Overlay())
	})
	log.Info("canvas host closed")
	return nil
}

func bindInput(wnd *sdlcanvas.Window, bus *app.EventBus) {
	wnd.MouseMove = func(x, y int) {
		bus.Emit(app.Event{Type: app.EventPointerMove, X: float64(x), Y: float64(y)})
	}
	wnd.MouseDown = func(button, x, y int) {
		if b, ok := mouseButton(button); ok {
			bus.Emit(app.Event{Type: app.EventButtonDown, X: float64(x), Y: float64(y), Button: b})
		}
	}
	wnd.MouseUp = func(button, x, y int) {
		if b, ok := mouseButton(button); ok {
			bus.Emit(app.Event{Type: app.EventButtonUp, X: float64(x), Y: float64(y), Button: b})
		}
	}
	wnd.KeyDown = func(scancode int, rn rune, _ string) {
		if sdl.Scancode(scancode) == sdl.SCANCODE_ESCAPE {
			wnd.Close()
			return
		}
		if name := keyName(sdl.Scancode(scancode), rn); name != "" {
			bus.Emit(app.Event{Type: app.EventKey, Key: name})
		}
	}
	// Window enter/leave are not handled by sdlcanvas itself and arrive here.
	wnd.Event = func(e sdl.Event) {
		we, ok := e.(*sdl.WindowEvent)
		if !ok {
			return
		}
		switch we.Event {
		case sdl.WINDOWEVENT_LEAVE:
			bus.Emit(app.Event{Type: app.EventPointerLeave})
		case sdl.WINDOWEVENT_ENTER:
			bus.Emit(app.Event{Type: app.EventPointerEnter})
		}
	}
}

func mouseButton(b int) (app.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return app.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return app.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return app.ButtonMiddle, true
	}
	return 0, false
}

func keyName(sc sdl.Scancode, rn rune) string {
	switch sc {
	case sdl.SCANCODE_UP:
		return ui.KeyArrowUp
	case sdl.SCANCODE_DOWN:
		return ui.KeyArrowDown
	case sdl.SCANCODE_LEFT:
		return ui.KeyArrowLeft
	case sdl.SCANCODE_RIGHT:
		return ui.KeyArrowRight
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
		return "Enter"
	}
	if rn != 0 {
		return string(rn)
	}
	return ""
}

// drawOverlay prints the stats strip top-left and slides the toast up from
// the bottom edge.
func drawOverlay(cv *canvas.Canvas, o app.Overlay) {
	cv.SetFillStyle(textColor)
	y := statsMargin + fontSize
	for _, st := range o.Stats {
		cv.FillText(st.Text+"  "+st.Label, statsMargin, y)
		y += fontSize * 1.5
	}
	if o.Toast != "" {
		ty := float64(cv.Height()) - statsMargin + o.ToastOffset*toastRise
		cv.FillText(o.Toast, statsMargin, ty)
	}
}

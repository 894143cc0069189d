// Package termhost runs a session in a terminal through tcell, drawing the
// field with half-block cells.
package termhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"backdrop/internal/app"
	"backdrop/internal/host"
	"backdrop/internal/ui"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	toastRise     = 3                     // rows a toast travels while sliding in
)

var textStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xf7, 0x93, 0x1e)).Bold(true)

// Run takes over the terminal until Escape, Ctrl+C or q is pressed. The
// window size in cfg is ignored; the field fills the terminal.
func Run(_ host.Config, opts app.Options, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	t, err := newTerm(screen, opts)
	if err != nil {
		return err
	}
	cols, rows := screen.Size()
	log.Info("terminal host started", zap.Int("cols", cols), zap.Int("rows", rows))

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pumpEvents(screen, done, 100)

	clock := host.NewClock()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handle(ev) {
				log.Info("terminal host closed")
				return nil
			}
		case <-ticker.C:
			t.draw(clock.Step())
		}
	}
}

// pumpEvents forwards screen events until the screen is finalised or done is
// closed. The returned channel is closed when the pump stops.
func pumpEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

type term struct {
	screen tcell.Screen
	sess   *app.Session
	surf   *Surface

	buttons      tcell.ButtonMask
	lastX, lastY int
}

func newTerm(screen tcell.Screen, opts app.Options) (*term, error) {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	surf := newSurface(cols, rows)
	opts.Width, opts.Height = surf.Size()
	opts.Clipboard = app.ClipboardFunc(func(text string) error {
		screen.SetClipboard([]byte(text))
		return nil
	})
	sess, err := app.NewSession(opts)
	if err != nil {
		return nil, err
	}
	return &term{screen: screen, sess: sess, surf: surf, lastX: -1, lastY: -1}, nil
}

// handle turns a tcell event into session events. It returns false when the
// user asked to quit.
func (t *term) handle(ev tcell.Event) bool {
	bus := t.sess.Bus()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if name := keyName(ev); name != "" {
			bus.Emit(app.Event{Type: app.EventKey, Key: name})
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCentre(col, row)
		if col != t.lastX || row != t.lastY {
			bus.Emit(app.Event{Type: app.EventPointerMove, X: x, Y: y})
			t.lastX, t.lastY = col, row
		}
		now := ev.Buttons()
		for _, mb := range []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3} {
			b, _ := mouseButton(mb)
			was, is := t.buttons&mb != 0, now&mb != 0
			switch {
			case is && !was:
				bus.Emit(app.Event{Type: app.EventButtonDown, X: x, Y: y, Button: b})
			case was && !is:
				bus.Emit(app.Event{Type: app.EventButtonUp, X: x, Y: y, Button: b})
			}
		}
		t.buttons = now

	case *tcell.EventFocus:
		if ev.Focused {
			bus.Emit(app.Event{Type: app.EventPointerEnter})
		} else {
			bus.Emit(app.Event{Type: app.EventPointerLeave})
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.surf.Resize(cols, rows)
		t.screen.Sync()
	}
	return true
}

func (t *term) draw(dt float64) {
	t.sess.Frame(t.surf, dt)
	t.surf.Flush(t.screen)
	t.drawOverlay(t.sess.Overlay())
	t.screen.Show()
}

func (t *term) drawOverlay(o app.Overlay) {
	for i, st := range o.Stats {
		t.print(2, 1+i, st.Text+"  "+st.Label)
	}
	if o.Toast != "" {
		row := t.surf.rows - 2 + int(o.ToastOffset*toastRise)
		t.print(2, row, o.Toast)
	}
}

// print writes s over the field, keeping the lower dot as each cell's
// background.
func (t *term) print(col, row int, s string) {
	if row < 0 || row >= t.surf.rows {
		return
	}
	for _, r := range s {
		if col >= t.surf.cols {
			return
		}
		bg := toTcell(t.surf.Dot(col, row*2+1))
		t.screen.SetContent(col, row, r, nil, textStyle.Background(bg))
		col++
	}
}

// cellCentre maps a terminal cell to the viewport point at its centre.
func cellCentre(col, row int) (float64, float64) {
	return float64(col*CellW) + CellW/2, float64(row*CellH) + CellH/2
}

func mouseButton(b tcell.ButtonMask) (app.Button, bool) {
	switch b {
	case tcell.Button1:
		return app.ButtonLeft, true
	case tcell.Button2:
		return app.ButtonRight, true
	case tcell.Button3:
		return app.ButtonMiddle, true
	}
	return 0, false
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return ui.KeyArrowUp
	case tcell.KeyDown:
		return ui.KeyArrowDown
	case tcell.KeyLeft:
		return ui.KeyArrowLeft
	case tcell.KeyRight:
		return ui.KeyArrowRight
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

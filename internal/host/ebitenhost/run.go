// Package ebitenhost runs a session inside an ebiten game loop.
package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"backdrop/internal/app"
	"backdrop/internal/host"
	"backdrop/internal/ui"
)

const (
	statsMargin = 16
	lineHeight  = 18
	toastRise   = 48
)

var textColor = color.NRGBA{R: 0xf7, G: 0x93, B: 0x1e, A: 0xff}

type game struct {
	sess  *app.Session
	surf  *Surface
	clock *host.Clock

	inside       bool
	lastX, lastY int
	keys         []ebiten.Key
	chars        []rune
}

// Run drives the session with ebiten until the window closes or Escape is
// pressed. ebiten has no clipboard API, so right-click copy is a no-op here.
func Run(cfg host.Config, opts app.Options, log *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	opts.Width, opts.Height = float64(cfg.Width), float64(cfg.Height)
	opts.Clipboard = nil
	sess, err := app.NewSession(opts)
	if err != nil {
		return err
	}
	g := &game{sess: sess, surf: newSurface(), clock: host.NewClock()}

	log.Info("ebiten host started", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	log.Info("ebiten host closed")
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	bus := g.sess.Bus()

	x, y := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	in := ebiten.IsFocused() && x >= 0 && y >= 0 && x < w && y < h
	switch {
	case in && !g.inside:
		bus.Emit(app.Event{Type: app.EventPointerEnter})
	case !in && g.inside:
		bus.Emit(app.Event{Type: app.EventPointerLeave})
	}
	g.inside = in
	if in && (x != g.lastX || y != g.lastY) {
		bus.Emit(app.Event{Type: app.EventPointerMove, X: float64(x), Y: float64(y)})
		g.lastX, g.lastY = x, y
	}

	for _, mb := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		b, ok := mouseButton(mb)
		if !ok {
			continue
		}
		if inpututil.IsMouseButtonJustPressed(mb) {
			bus.Emit(app.Event{Type: app.EventButtonDown, X: float64(x), Y: float64(y), Button: b})
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			bus.Emit(app.Event{Type: app.EventButtonUp, X: float64(x), Y: float64(y), Button: b})
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name := specialKeyName(k); name != "" {
			bus.Emit(app.Event{Type: app.EventKey, Key: name})
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		bus.Emit(app.Event{Type: app.EventKey, Key: string(r)})
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surf.bind(screen)
	g.sess.Frame(g.surf, g.clock.Step())
	drawOverlay(screen, g.sess.Overlay())
}

// Layout follows the window so the field always covers the full viewport.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func drawOverlay(screen *ebiten.Image, o app.Overlay) {
	face := basicfont.Face7x13
	y := statsMargin + face.Ascent
	for _, st := range o.Stats {
		text.Draw(screen, st.Text+"  "+st.Label, face, statsMargin, y, textColor)
		y += lineHeight
	}
	if o.Toast != "" {
		h := screen.Bounds().Dy()
		ty := h - statsMargin + int(o.ToastOffset*toastRise)
		text.Draw(screen, o.Toast, face, statsMargin, ty, textColor)
	}
}

func mouseButton(b ebiten.MouseButton) (app.Button, bool) {
	switch b {
	case ebiten.MouseButtonLeft:
		return app.ButtonLeft, true
	case ebiten.MouseButtonRight:
		return app.ButtonRight, true
	case ebiten.MouseButtonMiddle:
		return app.ButtonMiddle, true
	}
	return 0, false
}

// specialKeyName names keys that produce no input character. Printable keys
// arrive through AppendInputChars instead so shift and layout are respected.
func specialKeyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return ui.KeyArrowUp
	case ebiten.KeyArrowDown:
		return ui.KeyArrowDown
	case ebiten.KeyArrowLeft:
		return ui.KeyArrowLeft
	case ebiten.KeyArrowRight:
		return ui.KeyArrowRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "Enter"
	case ebiten.KeyTab:
		return "Tab"
	case ebiten.KeyBackspace:
		return "Backspace"
	}
	return ""
}

package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/internal/app"
	"backdrop/internal/field"
	"backdrop/internal/paint"
	"backdrop/internal/ui"
)

func newTestTerm(t *testing.T, opts app.Options) (*term, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	opts.Field = field.DefaultConfig()
	opts.Field.Count = 6
	tm, err := newTerm(screen, opts)
	require.NoError(t, err)
	return tm, screen
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestSurfaceSizeFollowsCells(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	w, h := tm.surf.Size()
	assert.Equal(t, 40.0*CellW, w)
	assert.Equal(t, 20.0*CellH, h)
	fw, _ := tm.sess.Field().Size()
	assert.Equal(t, w, fw)
}

func TestKonamiFromTerminalKeys(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	events := []*tcell.EventKey{
		key(tcell.KeyUp, 0), key(tcell.KeyUp, 0),
		key(tcell.KeyDown, 0), key(tcell.KeyDown, 0),
		key(tcell.KeyLeft, 0), key(tcell.KeyRight, 0),
		key(tcell.KeyLeft, 0), key(tcell.KeyRight, 0),
		key(tcell.KeyRune, 'b'), key(tcell.KeyRune, 'a'),
	}
	for _, ev := range events {
		require.True(t, tm.handle(ev))
	}
	assert.True(t, tm.sess.RainbowActive())
}

func TestQuitKeys(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	assert.False(t, tm.handle(key(tcell.KeyEscape, 0)))
	assert.False(t, tm.handle(key(tcell.KeyCtrlC, 0)))
	assert.False(t, tm.handle(key(tcell.KeyRune, 'q')))
}

func TestMouseButtonsPressAndRelease(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	cur := tm.sess.Cursor()

	tm.handle(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	assert.True(t, cur.Pressed())
	x, y := cur.Target()
	assert.Equal(t, 5.0*CellW+CellW/2, x)
	assert.Equal(t, 3.0*CellH+CellH/2, y)

	tm.handle(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, cur.Pressed())
}

func TestFocusHidesCursor(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	tm.handle(tcell.NewEventFocus(false))
	assert.False(t, tm.sess.Cursor().Visible())
	assert.False(t, tm.sess.Field().Pointer().Present)

	tm.handle(tcell.NewEventFocus(true))
	assert.True(t, tm.sess.Cursor().Visible())
}

func TestResizeGrowsSurface(t *testing.T) {
	tm, _ := newTestTerm(t, app.Options{})
	tm.handle(tcell.NewEventResize(60, 30))
	tm.draw(0.016)

	w, h := tm.surf.Size()
	assert.Equal(t, 60.0*CellW, w)
	assert.Equal(t, 30.0*CellH, h)
	_, fh := tm.sess.Field().Size()
	assert.Equal(t, h, fh)
}

func TestDrawWritesHalfBlocksAndStats(t *testing.T) {
	tm, screen := newTestTerm(t, app.Options{
		Stats: []ui.Stat{{Label: "Projects", Value: "15+"}},
	})
	tm.draw(0.016)

	mainc, _, _, _ := screen.GetContent(30, 15)
	assert.Equal(t, halfBlock, mainc)

	mainc, _, _, _ = screen.GetContent(2, 1)
	assert.NotEqual(t, halfBlock, mainc)
}

func TestSurfaceRasterises(t *testing.T) {
	s := newSurface(4, 2)
	s.Clear()
	bg := toColorful(paint.Background)
	assert.Equal(t, bg, s.Dot(0, 0))

	white := paint.RGBA(255, 255, 255, 1)
	s.FillCircle(16, 16, 8, white)
	r, g, b := s.Dot(1, 1).RGB255()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	// off-grid shapes are clipped
	s.FillCircle(-100, -100, 20, white)
	s.StrokeLine(0, 0, 1000, 0, 8, white)
	r, _, _ = s.Dot(3, 0).RGB255()
	assert.Equal(t, uint8(255), r)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, ui.KeyArrowDown, keyName(key(tcell.KeyDown, 0)))
	assert.Equal(t, "a", keyName(key(tcell.KeyRune, 'a')))
	assert.Empty(t, keyName(key(tcell.KeyF1, 0)))
}

func TestPumpStopsWhenNobodyReads(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	done := make(chan struct{})
	events := pumpEvents(screen, done, 0)
	require.NoError(t, screen.PostEvent(key(tcell.KeyRune, 'x')))

	// The loop has gone away: nothing reads, and the screen is torn down.
	close(done)
	screen.Fini()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event pump still running after the screen was finalised")
		}
	}
}

package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"backdrop/internal/app"
	"backdrop/internal/audio"
	"backdrop/internal/field"
	"backdrop/internal/paint"
	"backdrop/internal/ui"
)

type recordingPlayer struct {
	played []audio.SoundKind
}

func (p *recordingPlayer) Play(k audio.SoundKind) { p.played = append(p.played, k) }

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) SetText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func newSession(t *testing.T, opts app.Options) (*app.Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	if opts.Field.Count == 0 {
		opts.Field = field.DefaultConfig()
		opts.Field.Count = 4
	}
	if opts.Width == 0 {
		opts.Width, opts.Height = 400, 300
	}
	opts.Logger = zap.New(core)
	s, err := app.NewSession(opts)
	require.NoError(t, err)
	return s, logs
}

func pressKeys(s *app.Session, keys []string) {
	for _, k := range keys {
		s.Bus().Emit(app.Event{Type: app.EventKey, Key: k})
	}
}

func TestWelcomeIsLogged(t *testing.T) {
	_, logs := newSession(t, app.Options{})
	assert.Equal(t, 1, logs.FilterMessage("welcome to the backdrop").Len())
}

func TestNewSessionRejectsEmptyViewport(t *testing.T) {
	_, err := app.NewSession(app.Options{Field: field.DefaultConfig(), Width: 0, Height: 100})
	assert.ErrorIs(t, err, field.ErrInvalidViewport)
}

func TestKonamiStartsRainbow(t *testing.T) {
	player := &recordingPlayer{}
	s, logs := newSession(t, app.Options{Audio: player})
	rec := paint.NewRecorder(400, 300)

	pressKeys(s, ui.Konami)
	require.True(t, s.RainbowActive())
	assert.Equal(t, app.KonamiMessage, s.Overlay().Toast)
	assert.Equal(t, []audio.SoundKind{audio.SoundEasterEgg}, player.played)
	assert.Equal(t, 1, logs.FilterMessage("konami code entered").Len())

	s.Frame(rec, app.RainbowDuration/2)
	assert.NotEqual(t, field.Palette.Particle, rec.Filter(paint.OpFillCircle)[0].Color)

	s.Frame(rec, app.RainbowDuration/2)
	assert.False(t, s.RainbowActive())
	assert.Equal(t, field.Palette.Particle, rec.Filter(paint.OpFillCircle)[0].Color)
}

func TestWrongKeysDoNothing(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newSession(t, app.Options{Audio: player})
	pressKeys(s, []string{"ArrowUp", "ArrowDown", "b", "a"})
	assert.False(t, s.RainbowActive())
	assert.Empty(t, player.played)
	assert.Empty(t, s.Overlay().Toast)
}

func TestRightClickCopiesEmail(t *testing.T) {
	player := &recordingPlayer{}
	clip := &fakeClipboard{}
	s, _ := newSession(t, app.Options{Audio: player, Clipboard: clip, Email: "me@example.com"})

	s.Bus().Emit(app.Event{Type: app.EventButtonDown, Button: app.ButtonRight})
	assert.Equal(t, "me@example.com", clip.text)
	assert.Equal(t, app.CopiedMessage, s.Overlay().Toast)
	assert.Equal(t, []audio.SoundKind{audio.SoundCopy}, player.played)
}

func TestCopyWithoutClipboardOnlyLogs(t *testing.T) {
	s, logs := newSession(t, app.Options{Email: "me@example.com"})
	s.Bus().Emit(app.Event{Type: app.EventButtonDown, Button: app.ButtonRight})
	assert.Empty(t, s.Overlay().Toast)
	assert.Equal(t, 1, logs.FilterMessage("copy skipped").Len())
}

func TestCopyFailureIsLogged(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	s, logs := newSession(t, app.Options{Clipboard: clip, Email: "me@example.com"})
	s.Bus().Emit(app.Event{Type: app.EventButtonDown, Button: app.ButtonRight})
	assert.Empty(t, s.Overlay().Toast)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestLeftClickPressesCursor(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newSession(t, app.Options{Audio: player})

	s.Bus().Emit(app.Event{Type: app.EventButtonDown, Button: app.ButtonLeft})
	assert.True(t, s.Cursor().Pressed())
	assert.Equal(t, []audio.SoundKind{audio.SoundClick}, player.played)

	s.Bus().Emit(app.Event{Type: app.EventButtonUp, Button: app.ButtonLeft})
	assert.False(t, s.Cursor().Pressed())
}

func TestPointerLifecycle(t *testing.T) {
	s, _ := newSession(t, app.Options{})
	rec := paint.NewRecorder(400, 300)

	s.Frame(rec, 1.0/60)
	assert.Zero(t, s.Field().Stats().PointerLinks)
	assert.Zero(t, rec.Count(paint.OpFillRect))

	s.Bus().Emit(app.Event{Type: app.EventPointerMove, X: 200, Y: 150})
	s.Frame(rec, 1.0/60)
	assert.Equal(t, 1, rec.Count(paint.OpFillRect))
	tx, ty := s.Cursor().Target()
	assert.Equal(t, 200.0, tx)
	assert.Equal(t, 150.0, ty)

	s.Bus().Emit(app.Event{Type: app.EventPointerLeave})
	s.Frame(rec, 1.0/60)
	assert.Zero(t, rec.Count(paint.OpFillRect))
	assert.False(t, s.Cursor().Visible())
	// Only particles remain: the hidden cursor draws nothing.
	assert.Equal(t, s.Field().Len(), rec.Count(paint.OpFillCircle))

	s.Bus().Emit(app.Event{Type: app.EventPointerEnter})
	assert.True(t, s.Cursor().Visible())
	assert.False(t, s.Field().Pointer().Present)
}

func TestFrameFollowsSurfaceSize(t *testing.T) {
	s, _ := newSession(t, app.Options{})
	rec := paint.NewRecorder(800, 600)
	s.Frame(rec, 1.0/60)
	w, h := s.Field().Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	s.Bus().Emit(app.Event{Type: app.EventResize, X: 0, Y: 600})
	w, _ = s.Field().Size()
	assert.Equal(t, 800.0, w)
}

func TestOverlayShowsCounters(t *testing.T) {
	s, _ := newSession(t, app.Options{Stats: []ui.Stat{{Label: "Projects", Value: "20+"}}})
	rec := paint.NewRecorder(400, 300)

	s.Frame(rec, ui.CountInterval)
	o := s.Overlay()
	require.Len(t, o.Stats, 1)
	assert.Equal(t, "0.16", o.Stats[0].Text)

	s.Frame(rec, ui.CountDuration+1)
	assert.Equal(t, "20+", s.Overlay().Stats[0].Text)
}

func TestToastSlidesAway(t *testing.T) {
	s, _ := newSession(t, app.Options{Clipboard: &fakeClipboard{}, Email: "me@example.com"})
	rec := paint.NewRecorder(400, 300)

	s.Bus().Emit(app.Event{Type: app.EventButtonDown, Button: app.ButtonRight})
	s.Frame(rec, 1)
	assert.Equal(t, 0.0, s.Overlay().ToastOffset)

	s.Frame(rec, ui.ToastHold)
	assert.Empty(t, s.Overlay().Toast)
}

func TestBench(t *testing.T) {
	cfg := field.DefaultConfig()
	cfg.Count = 20

	rep, err := app.Bench(cfg, 400, 300, 40, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 40, rep.Frames)
	assert.Equal(t, 30, rep.GlowFrames)
	assert.Greater(t, rep.Ops, 40*20)
	assert.GreaterOrEqual(t, rep.PerFrame(), rep.Elapsed/41)

	_, err = app.Bench(cfg, 400, 300, 0, nil)
	assert.Error(t, err)
}

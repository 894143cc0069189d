package app

import (
	"fmt"

	"go.uber.org/zap"

	"backdrop/internal/audio"
	"backdrop/internal/field"
	"backdrop/internal/paint"
	"backdrop/internal/ui"
)

const (
	RainbowDuration = 3.0 // seconds for one full hue turn

	KonamiMessage = "Konami Code Activated! You found the easter egg!"
	CopiedMessage = "Email copied to clipboard!"
)

// Clipboard receives text copied by the session.
type Clipboard interface {
	SetText(text string) error
}

// ClipboardFunc adapts a plain function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) SetText(text string) error { return f(text) }

type Options struct {
	Field         field.Config
	Width, Height float64
	Email         string
	Stats         []ui.Stat
	Audio         audio.Player // nil plays nothing
	Clipboard     Clipboard    // nil disables copy
	Logger        *zap.Logger  // nil logs nothing
}

// Session ties the field and the interface overlays to one viewport. All
// methods must be called from the host's frame goroutine.
type Session struct {
	field    *field.Field
	cursor   *ui.Cursor
	konami   *ui.Sequence
	toasts   ui.Toasts
	counters *ui.Counters
	bus      *EventBus

	rainbowOn  bool
	rainbowAge float64

	email string
	audio audio.Player
	clip  Clipboard
	log   *zap.Logger
}

func NewSession(opts Options) (*Session, error) {
	f, err := field.New(opts.Field, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		field:    f,
		cursor:   ui.NewCursor(),
		konami:   ui.NewSequence(ui.Konami),
		counters: ui.NewCounters(opts.Stats),
		bus:      NewEventBus(),
		email:    opts.Email,
		audio:    opts.Audio,
		clip:     opts.Clipboard,
		log:      opts.Logger,
	}
	if s.audio == nil {
		s.audio = audio.Nop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.subscribe()
	s.counters.Start()

	s.log.Info("welcome to the backdrop",
		zap.Int("particles", f.Len()),
		zap.Float64("width", opts.Width),
		zap.Float64("height", opts.Height),
	)
	return s, nil
}

func (s *Session) subscribe() {
	s.bus.Subscribe(EventPointerMove, func(e Event) {
		s.field.MovePointer(e.X, e.Y)
		s.cursor.MoveTo(e.X, e.Y)
	})
	s.bus.Subscribe(EventPointerLeave, func(Event) {
		s.field.LeavePointer()
		s.cursor.Hide()
	})
	s.bus.Subscribe(EventPointerEnter, func(Event) {
		s.cursor.Show()
	})
	s.bus.Subscribe(EventResize, func(e Event) {
		s.field.Resize(e.X, e.Y)
	})
	s.bus.Subscribe(EventKey, func(e Event) {
		if s.konami.Push(e.Key) {
			s.activateKonami()
		}
	})
	s.bus.Subscribe(EventButtonDown, func(e Event) {
		switch e.Button {
		case ButtonLeft:
			s.cursor.Press()
			s.audio.Play(audio.SoundClick)
		case ButtonRight:
			s.copyEmail()
		}
	})
	s.bus.Subscribe(EventButtonUp, func(e Event) {
		if e.Button == ButtonLeft {
			s.cursor.Release()
		}
	})
}

func (s *Session) activateKonami() {
	s.log.Info("konami code entered")
	s.toasts.Show(KonamiMessage)
	s.rainbowOn = true
	s.rainbowAge = 0
	s.field.SetHueShift(0)
	s.audio.Play(audio.SoundEasterEgg)
}

func (s *Session) copyEmail() {
	if s.clip == nil || s.email == "" {
		s.log.Debug("copy skipped", zap.Bool("clipboard", s.clip != nil), zap.String("email", s.email))
		return
	}
	if err := s.clip.SetText(s.email); err != nil {
		s.log.Warn("clipboard write failed", zap.Error(err))
		return
	}
	s.toasts.Show(CopiedMessage)
	s.audio.Play(audio.SoundCopy)
}

// Bus is where hosts deliver input.
func (s *Session) Bus() *EventBus { return s.bus }

// Frame advances every animation by dt seconds and draws one frame onto dst.
// A change in dst's size is applied as a resize first.
func (s *Session) Frame(dst paint.Surface, dt float64) {
	if w, h := dst.Size(); w > 0 && h > 0 {
		if fw, fh := s.field.Size(); w != fw || h != fh {
			s.bus.Emit(Event{Type: EventResize, X: w, Y: h})
		}
	}

	if s.rainbowOn {
		s.rainbowAge += dt
		if s.rainbowAge >= RainbowDuration {
			s.rainbowOn = false
			s.field.SetHueShift(0)
		} else {
			s.field.SetHueShift(360 * s.rainbowAge / RainbowDuration)
		}
	}
	s.toasts.Update(dt)
	s.counters.Advance(dt)

	s.field.Tick(dst)
	s.cursor.Update()
	s.cursor.Draw(dst)
}

// StatText is one stats entry as currently displayed.
type StatText struct {
	Label string
	Text  string
}

// Overlay is the text layer for hosts that can print.
type Overlay struct {
	Toast       string
	ToastOffset float64 // 1 hidden, 0 fully shown
	Stats       []StatText
}

func (s *Session) Overlay() Overlay {
	var o Overlay
	if t := s.toasts.Latest(); t != nil {
		o.Toast = t.Message
		o.ToastOffset = t.Offset()
	}
	for _, c := range s.counters.Items() {
		o.Stats = append(o.Stats, StatText{Label: c.Label, Text: c.Text()})
	}
	return o
}

func (s *Session) Field() *field.Field { return s.field }
func (s *Session) Cursor() *ui.Cursor  { return s.cursor }

// RainbowActive reports whether the easter egg hue cycle is running.
func (s *Session) RainbowActive() bool { return s.rainbowOn }

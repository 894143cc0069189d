package app

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"backdrop/internal/field"
	"backdrop/internal/paint"
)

// BenchReport summarises a headless run.
type BenchReport struct {
	Frames       int
	Elapsed      time.Duration
	Ops          int
	Links        int
	PointerLinks int
	GlowFrames   int
}

// PerFrame is the mean wall time of one frame.
func (r BenchReport) PerFrame() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Frames)
}

// Bench drives a session over an in-memory recorder at a fixed 60 Hz step.
// The pointer circles the centre for the first three quarters of the run and
// is absent for the rest.
func Bench(cfg field.Config, w, h float64, frames int, log *zap.Logger) (BenchReport, error) {
	if frames <= 0 {
		return BenchReport{}, fmt.Errorf("bench: frame count %d must be positive", frames)
	}
	s, err := NewSession(Options{Field: cfg, Width: w, Height: h, Logger: log})
	if err != nil {
		return BenchReport{}, err
	}
	rec := paint.NewRecorder(w, h)

	const dt = 1.0 / 60
	var rep BenchReport
	leaveAt := frames * 3 / 4
	start := time.Now()
	for i := 0; i < frames; i++ {
		switch {
		case i < leaveAt:
			a := float64(i) * dt
			s.Bus().Emit(Event{
				Type: EventPointerMove,
				X:    w/2 + math.Cos(a)*w/4,
				Y:    h/2 + math.Sin(a)*h/4,
			})
		case i == leaveAt:
			s.Bus().Emit(Event{Type: EventPointerLeave})
		}
		s.Frame(rec, dt)

		st := s.Field().Stats()
		rep.Ops += len(rec.Ops)
		rep.Links += st.Links
		rep.PointerLinks += st.PointerLinks
		if st.Glow {
			rep.GlowFrames++
		}
	}
	rep.Elapsed = time.Since(start)
	rep.Frames = frames
	return rep, nil
}

package field

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidViewport = errors.New("field: viewport must have positive width and height")
	ErrInvalidCount    = errors.New("field: particle count must not be negative")
)

// Particle has no identity beyond its slot in the field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64 // fixed at creation
}

// Pointer is the last known cursor position. Present is false until the first
// move and after every leave.
type Pointer struct {
	X, Y    float64
	Radius  float64
	Present bool
}

// FrameStats counts what the last Tick drew.
type FrameStats struct {
	Links        int
	PointerLinks int
	Pushes       int
	Glow         bool
}

// Field owns a fixed set of drifting particles and the pointer that disturbs them.
type Field struct {
	cfg     Config
	w, h    float64
	p       []Particle
	pointer Pointer
	hue     float64
	stats   FrameStats
}

// New spawns cfg.Count particles uniformly over a w×h viewport.
func New(cfg Config, w, h float64) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new field %gx%g: %w", w, h, ErrInvalidViewport)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("new field with %d particles: %w", cfg.Count, ErrInvalidCount)
	}

	f := &Field{
		cfg:     cfg,
		w:       w,
		h:       h,
		p:       make([]Particle, 0, cfg.Count),
		pointer: Pointer{Radius: cfg.PointerRadius},
	}

	r := NewRand(cfg.Seed)
	for n := 0; n < cfg.Count; n++ {
		f.p = append(f.p, Particle{
			X:      r.RangeF(0, w),
			Y:      r.RangeF(0, h),
			VX:     r.RangeF(-cfg.MaxSpeed, cfg.MaxSpeed),
			VY:     r.RangeF(-cfg.MaxSpeed, cfg.MaxSpeed),
			Radius: r.RangeF(cfg.MinRadius, cfg.MaxRadius),
		})
	}
	return f, nil
}

// NewFrom builds a field around an explicit particle set, for scripted scenes.
func NewFrom(cfg Config, w, h float64, ps []Particle) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new field %gx%g: %w", w, h, ErrInvalidViewport)
	}
	cfg.Count = len(ps)
	f := &Field{
		cfg:     cfg,
		w:       w,
		h:       h,
		p:       append([]Particle(nil), ps...),
		pointer: Pointer{Radius: cfg.PointerRadius},
	}
	return f, nil
}

// Resize records the new viewport. Particles are left where they are; any that
// now sit outside bounce their way back in.
func (f *Field) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	f.w, f.h = w, h
}

func (f *Field) Size() (float64, float64) { return f.w, f.h }

// MovePointer marks the pointer present at (x, y).
func (f *Field) MovePointer(x, y float64) {
	f.pointer.X = x
	f.pointer.Y = y
	f.pointer.Present = true
}

// LeavePointer marks the pointer absent; no link, push or glow happens until
// the next move.
func (f *Field) LeavePointer() {
	f.pointer.Present = false
}

func (f *Field) Pointer() Pointer { return f.pointer }

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.p))
	copy(out, f.p)
	return out
}

func (f *Field) Len() int { return len(f.p) }

// SetHueShift rotates the hue of every colour drawn from now on.
func (f *Field) SetHueShift(deg float64) { f.hue = deg }

func (f *Field) Stats() FrameStats { return f.stats }

func (f *Field) Config() Config { return f.cfg }

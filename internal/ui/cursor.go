package ui

import "backdrop/internal/paint"

// Follower easing factors, the fraction of the remaining gap closed each frame.
const (
	RingEase   = 0.15
	DotEase    = 0.30
	BubbleEase = 0.08
)

const (
	RingRadius      = 18.0
	RingClickRadius = 12.0
	RingWidth       = 2.0
	DotRadius       = 4.0
	DotClickScale   = 1.5
	BubbleRadius    = 28.0
	BubbleOpacity   = 0.8
)

var Palette = struct {
	Ring   paint.Color
	Dot    paint.Color
	Bubble paint.Color
}{
	Ring:   paint.RGBA(255, 107, 53, 0.9),
	Dot:    paint.RGBA(247, 147, 30, 1),
	Bubble: paint.RGBA(255, 107, 53, 0.12),
}

// Follower chases a target with a fixed per-frame ease.
type Follower struct {
	X, Y float64
	Ease float64
}

func (f *Follower) Step(tx, ty float64) {
	f.X += (tx - f.X) * f.Ease
	f.Y += (ty - f.Y) * f.Ease
}

// Cursor replaces the system pointer with a ring, a dot and a slow bubble,
// each trailing the real pointer at its own pace.
type Cursor struct {
	Ring, Dot, Bubble Follower

	tx, ty  float64
	visible bool
	pressed bool
}

func NewCursor() *Cursor {
	return &Cursor{
		Ring:    Follower{Ease: RingEase},
		Dot:     Follower{Ease: DotEase},
		Bubble:  Follower{Ease: BubbleEase},
		visible: true,
	}
}

func (c *Cursor) MoveTo(x, y float64) { c.tx, c.ty = x, y }
func (c *Cursor) Target() (float64, float64) { return c.tx, c.ty }

func (c *Cursor) Show()    { c.visible = true }
func (c *Cursor) Hide()    { c.visible = false }
func (c *Cursor) Press()   { c.pressed = true }
func (c *Cursor) Release() { c.pressed = false }

func (c *Cursor) Visible() bool { return c.visible }
func (c *Cursor) Pressed() bool { return c.pressed }

// Update eases every follower one frame towards the target. Followers keep
// moving while hidden so they do not jump when the pointer comes back.
func (c *Cursor) Update() {
	c.Ring.Step(c.tx, c.ty)
	c.Dot.Step(c.tx, c.ty)
	c.Bubble.Step(c.tx, c.ty)
}

// Draw paints bubble, ring and dot, back to front.
func (c *Cursor) Draw(s paint.Surface) {
	if !c.visible {
		return
	}
	s.FillCircle(c.Bubble.X, c.Bubble.Y, BubbleRadius, Palette.Bubble.ScaleAlpha(BubbleOpacity))

	ring := RingRadius
	if c.pressed {
		ring = RingClickRadius
	}
	s.StrokeCircle(c.Ring.X, c.Ring.Y, ring, RingWidth, Palette.Ring)

	dot := DotRadius
	if c.pressed {
		dot *= DotClickScale
	}
	s.FillCircle(c.Dot.X, c.Dot.Y, dot, Palette.Dot)
}

package field

import (
	"math"

	"backdrop/internal/paint"
)

// Tick advances every particle by one frame and draws the result onto s:
// particles, particle-particle links, then pointer links, pushes and glow.
func (f *Field) Tick(s paint.Surface) {
	f.stats = FrameStats{}
	s.Clear()

	dot := f.color(Palette.Particle)
	for i := range f.p {
		p := &f.p[i]
		f.step(p)
		s.FillCircle(p.X, p.Y, p.Radius, dot)
	}

	f.connect(s)
	if f.pointer.Present {
		f.interact(s)
	}
}

// step integrates one frame of drift. Bounces flip the velocity sign without
// clamping the position, so a particle may overshoot for a frame or two.
// A particle outside the bounds flips every frame it stays outside, whichever
// way it is heading.
func (f *Field) step(p *Particle) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > f.w {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > f.h {
		p.VY = -p.VY
	}
}

// connect links every unordered pair closer than LinkDistance.
func (f *Field) connect(s paint.Surface) {
	maxD := f.cfg.LinkDistance
	maxD2 := maxD * maxD
	base := f.color(Palette.Link)

	for a := 0; a < len(f.p); a++ {
		pa := &f.p[a]
		for b := a + 1; b < len(f.p); b++ {
			pb := &f.p[b]
			dx := pa.X - pb.X
			dy := pa.Y - pb.Y
			d2 := dx*dx + dy*dy
			if d2 >= maxD2 {
				continue
			}
			alpha := LinkAlpha(math.Sqrt(d2), maxD, LinkAlphaScale)
			s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, LinkWidth, base.WithAlpha(alpha))
			f.stats.Links++
		}
	}
}

// interact links particles to the pointer, pushes them away and paints the glow.
func (f *Field) interact(s paint.Surface) {
	ptr := f.pointer
	base := f.color(Palette.PointerLink)

	for i := range f.p {
		p := &f.p[i]
		d := math.Hypot(ptr.X-p.X, ptr.Y-p.Y)
		if d >= ptr.Radius {
			continue
		}
		alpha := LinkAlpha(d, ptr.Radius, PointerAlphaScale)
		s.StrokeLine(p.X, p.Y, ptr.X, ptr.Y, PointerLinkWidth, base.WithAlpha(alpha))
		f.stats.PointerLinks++

		p.X, p.Y = Repel(p.X, p.Y, ptr.X, ptr.Y, ptr.Radius, f.cfg.RepelStep)
		f.stats.Pushes++
	}

	g := paint.NewRadialGradient(ptr.X, ptr.Y, 0, ptr.Radius)
	g.AddColorStop(0, f.color(Palette.GlowInner))
	g.AddColorStop(1, f.color(Palette.GlowOuter))
	s.FillRect(0, 0, f.w, f.h, g)
	f.stats.Glow = true
}

func (f *Field) color(c paint.Color) paint.Color {
	return c.RotateHue(f.hue)
}

// LinkAlpha fades a link linearly from scale at distance 0 to 0 at maxDist.
// Distances at or beyond maxDist give 0.
func LinkAlpha(d, maxDist, scale float64) float64 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (1 - d/maxDist) * scale
}

// Repel pushes the point (px, py) directly away from (mx, my). The push is
// step at distance 0 and falls linearly to 0 at radius. Coincident points use
// angle 0, which moves the point towards -x.
func Repel(px, py, mx, my, radius, step float64) (float64, float64) {
	dx := mx - px
	dy := my - py
	d := math.Hypot(dx, dy)
	if radius <= 0 || d >= radius {
		return px, py
	}
	force := (radius - d) / radius
	angle := 0.0
	if d > 0 {
		angle = math.Atan2(dy, dx)
	}
	push := clampF(force, 0, 1) * step
	return px - math.Cos(angle)*push, py - math.Sin(angle)*push
}

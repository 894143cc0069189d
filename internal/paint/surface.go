package paint

import (
	"math"
	"sort"
)

// Surface is a 2D drawing target sized to the viewport. Coordinates are in
// viewport pixels with the origin top-left and y growing down. Implementations
// never read pixels back.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillRect paints the rectangle with a radial gradient. Pixels beyond the
	// outer radius take the last stop's colour.
	FillRect(x, y, w, h float64, g *RadialGradient)
}

type ColorStop struct {
	Offset float64 // 0 = inner circle, 1 = outer circle
	Color  Color
}

// RadialGradient is a two-circle gradient sharing one centre.
type RadialGradient struct {
	X, Y   float64
	R0, R1 float64
	Stops  []ColorStop
}

func NewRadialGradient(x, y, r0, r1 float64) *RadialGradient {
	return &RadialGradient{X: x, Y: y, R0: r0, R1: r1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset.
func (g *RadialGradient) AddColorStop(offset float64, c Color) {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, ColorStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = ColorStop{Offset: offset, Color: c}
}

// At samples the gradient at normalised position t in [0..1].
func (g *RadialGradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	t = clamp01(t)
	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s := g.Stops[i]
		if t <= s.Offset {
			prev := g.Stops[i-1]
			span := s.Offset - prev.Offset
			if span <= 0 {
				return s.Color
			}
			return Lerp(prev.Color, s.Color, (t-prev.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// AtPoint samples the gradient at viewport position (px, py).
func (g *RadialGradient) AtPoint(px, py float64) Color {
	dx := px - g.X
	dy := py - g.Y
	d := dx*dx + dy*dy
	span := g.R1 - g.R0
	if span <= 0 {
		return g.At(1)
	}
	return g.At((math.Sqrt(d) - g.R0) / span)
}

// Ends returns the first and last stop colours; renderers that only support
// two-stop gradients use these.
func (g *RadialGradient) Ends() (inner, outer Color) {
	if len(g.Stops) == 0 {
		return Color{}, Color{}
	}
	return g.Stops[0].Color, g.Stops[len(g.Stops)-1].Color
}

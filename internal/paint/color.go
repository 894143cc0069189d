package paint

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit per channel colour with a straight (non-premultiplied) alpha in [0..1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Background is the page colour every host clears to.
var Background = RGBA(10, 10, 10, 1)

// RGBA builds a Color the way a CSS rgba() literal reads.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// ScaleAlpha multiplies the alpha channel by k.
func (c Color) ScaleAlpha(k float64) Color {
	c.A = clamp01(c.A * k)
	return c
}

// RotateHue shifts the hue by deg degrees, keeping saturation, value and alpha.
func (c Color) RotateHue(deg float64) Color {
	if deg == 0 {
		return c
	}
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := cf.Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// Lerp blends a towards b by t in [0..1], alpha included.
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
		A: a.A + (b.A-a.A)*t,
	}
}

// CSS renders the colour as an rgba() literal.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.4f)", c.R, c.G, c.B, c.A)
}

// NRGBA converts to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// Floats returns the channels as float32 in [0..1], the layout GPU buffers want.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A)
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

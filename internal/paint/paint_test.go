package paint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/internal/paint"
)

func TestRotateHueKeepsAlpha(t *testing.T) {
	c := paint.RGBA(255, 0, 0, 0.4)

	assert.Equal(t, c, c.RotateHue(0))

	g := c.RotateHue(120)
	assert.InDelta(t, 0.4, g.A, 1e-9)
	assert.Less(t, int(g.R), 5)
	assert.Greater(t, int(g.G), 250)

	full := c.RotateHue(360)
	assert.Equal(t, c.R, full.R)
	assert.Equal(t, c.G, full.G)
}

func TestColorAlphaClamped(t *testing.T) {
	c := paint.RGBA(1, 2, 3, 2)
	assert.Equal(t, 1.0, c.A)
	assert.Equal(t, 0.0, c.WithAlpha(-1).A)
	assert.InDelta(t, 0.25, paint.RGBA(0, 0, 0, 0.5).ScaleAlpha(0.5).A, 1e-9)
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "rgba(255, 107, 53, 0.5000)", paint.RGBA(255, 107, 53, 0.5).CSS())
}

func TestGradientStopsOrdered(t *testing.T) {
	g := paint.NewRadialGradient(0, 0, 0, 100)
	g.AddColorStop(1, paint.RGBA(0, 0, 0, 0))
	g.AddColorStop(0, paint.RGBA(255, 255, 255, 1))
	g.AddColorStop(0.5, paint.RGBA(128, 128, 128, 0.5))

	require.Len(t, g.Stops, 3)
	assert.Equal(t, 0.0, g.Stops[0].Offset)
	assert.Equal(t, 0.5, g.Stops[1].Offset)
	assert.Equal(t, 1.0, g.Stops[2].Offset)
}

func TestGradientSampling(t *testing.T) {
	g := paint.NewRadialGradient(10, 10, 0, 100)
	g.AddColorStop(0, paint.RGBA(255, 107, 53, 0.15))
	g.AddColorStop(1, paint.RGBA(255, 107, 53, 0))

	assert.InDelta(t, 0.15, g.AtPoint(10, 10).A, 1e-9)
	assert.InDelta(t, 0.075, g.AtPoint(60, 10).A, 1e-9)
	assert.InDelta(t, 0.0, g.AtPoint(500, 10).A, 1e-9)

	inner, outer := g.Ends()
	assert.InDelta(t, 0.15, inner.A, 1e-9)
	assert.InDelta(t, 0.0, outer.A, 1e-9)
}

func TestRecorderClearResets(t *testing.T) {
	r := paint.NewRecorder(100, 50)
	r.FillCircle(1, 1, 1, paint.Color{})
	r.Clear()
	r.StrokeLine(0, 0, 1, 1, 1, paint.Color{})

	require.Len(t, r.Ops, 2)
	assert.Equal(t, paint.OpClear, r.Ops[0].Kind)
	assert.Equal(t, 1, r.Count(paint.OpStrokeLine))
	assert.Equal(t, 0, r.Count(paint.OpFillCircle))

	w, h := r.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
}

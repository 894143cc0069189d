//go:build !android

package glhost

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/internal/app"
	"backdrop/internal/paint"
	"backdrop/internal/ui"
)

func TestBatchesKeepCallOrder(t *testing.T) {
	s := newSurface(200, 100)
	c := paint.RGBA(255, 0, 0, 1)

	s.Clear()
	s.FillCircle(10, 10, 2, c)
	s.FillCircle(20, 10, 2, c)
	s.StrokeLine(0, 0, 10, 0, 1, c)
	g := paint.NewRadialGradient(50, 50, 0, 30)
	g.AddColorStop(0, c)
	g.AddColorStop(1, c.WithAlpha(0))
	s.FillRect(0, 0, 200, 100, g)
	s.StrokeCircle(30, 30, 18, 2, c)

	require.Len(t, s.batches, 4)
	assert.Equal(t, batchDiscs, s.batches[0].kind)
	assert.Equal(t, int32(2), s.batches[0].count)
	assert.Equal(t, batchLines, s.batches[1].kind)
	assert.Equal(t, int32(6), s.batches[1].count)
	assert.Equal(t, batchGradient, s.batches[2].kind)
	assert.Equal(t, float32(30), s.batches[2].r1)
	assert.Equal(t, float32(0), s.batches[2].outer[3])
	assert.Equal(t, batchDiscs, s.batches[3].kind)
	assert.Equal(t, int32(2), s.batches[3].first)

	assert.Len(t, s.discs, 3*8)
	ring := s.discs[2*8:]
	assert.Equal(t, float32(19), ring[2])
	assert.Equal(t, float32(17), ring[7])

	s.Clear()
	assert.Empty(t, s.batches)
	assert.Empty(t, s.discs)
}

func TestLineQuadHasWidth(t *testing.T) {
	s := newSurface(100, 100)
	s.StrokeLine(0, 10, 10, 10, 2, paint.RGBA(1, 2, 3, 0.5))
	require.Len(t, s.lines, 6*6)
	assert.Equal(t, float32(11), s.lines[1])
	assert.Equal(t, float32(9), s.lines[7])
	assert.Equal(t, float32(0.5), s.lines[5])

	s.StrokeLine(5, 5, 5, 5, 2, paint.RGBA(1, 2, 3, 1))
	s.StrokeLine(0, 0, 5, 5, 2, paint.RGBA(1, 2, 3, 0))
	assert.Len(t, s.lines, 6*6)
}

func TestSurfaceResizeIgnoresEmpty(t *testing.T) {
	s := newSurface(100, 50)
	s.Resize(0, 20)
	w, h := s.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, ui.KeyArrowUp, specialKeyName(glfw.KeyUp))
	assert.Equal(t, ui.KeyArrowRight, specialKeyName(glfw.KeyRight))
	assert.Equal(t, "Enter", specialKeyName(glfw.KeyKPEnter))
	assert.Empty(t, specialKeyName(glfw.KeyB))

	b, ok := mouseButton(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, app.ButtonRight, b)
	_, ok = mouseButton(glfw.MouseButton5)
	assert.False(t, ok)
}

func TestAtlasHasGlyphs(t *testing.T) {
	atlas := buildAtlas()
	require.Equal(t, FontAtlasW, atlas.Bounds().Dx())

	// 'A' (65) sits in column 1, row 2; its cell must contain ink.
	ink := 0
	for y := 2 * FontCellH; y < 3*FontCellH; y++ {
		for x := FontCellW; x < 2*FontCellW; x++ {
			if atlas.NRGBAAt(x, y).A > 0 {
				ink++
			}
		}
	}
	assert.Positive(t, ink)

	// space stays empty
	for y := FontCellH; y < 2*FontCellH; y++ {
		for x := 0; x < FontCellW; x++ {
			assert.Zero(t, atlas.NRGBAAt(x, y).A)
		}
	}
}

func TestTextBatchQueuesQuads(t *testing.T) {
	tb := &textBatch{}
	tb.DrawString("hi\u00e9", 10, 20, 2, paint.RGBA(255, 0, 0, 1))
	// the non-ASCII rune is skipped but still advances
	require.Len(t, tb.buf, 2*6*8)
	assert.Equal(t, float32(10), tb.buf[0])
	assert.Equal(t, float32(10+FontCellW*2), tb.buf[6*8])

	tb.Reset()
	assert.Empty(t, tb.buf)
}

func TestOverlayLayout(t *testing.T) {
	tb := &textBatch{}
	tb.layoutOverlay(app.Overlay{
		Stats: []app.StatText{{Label: "CGPA", Text: "3.52"}},
		Toast: "ok",
	}, 600)
	// "3.52  CGPA" has 10 glyphs, "ok" has 2
	require.Len(t, tb.buf, 12*6*8)

	toastY := tb.buf[10*6*8+1]
	assert.Equal(t, float32(600-textMargin-FontCellH*textScale), toastY)
}

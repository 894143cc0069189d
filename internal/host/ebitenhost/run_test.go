package ebitenhost

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/internal/app"
	"backdrop/internal/paint"
	"backdrop/internal/ui"
)

func TestSpecialKeyName(t *testing.T) {
	assert.Equal(t, ui.KeyArrowUp, specialKeyName(ebiten.KeyArrowUp))
	assert.Equal(t, ui.KeyArrowRight, specialKeyName(ebiten.KeyArrowRight))
	assert.Equal(t, "Enter", specialKeyName(ebiten.KeyNumpadEnter))
	// letters come through the input chars instead
	assert.Empty(t, specialKeyName(ebiten.KeyB))
}

func TestMouseButton(t *testing.T) {
	b, ok := mouseButton(ebiten.MouseButtonMiddle)
	require.True(t, ok)
	assert.Equal(t, app.ButtonMiddle, b)

	_, ok = mouseButton(ebiten.MouseButton3)
	assert.False(t, ok)
}

func TestGradientPixels(t *testing.T) {
	g := paint.NewRadialGradient(0, 0, 0, 10)
	g.AddColorStop(0, paint.RGBA(200, 100, 50, 1))
	g.AddColorStop(1, paint.RGBA(200, 100, 50, 0))

	pix := gradientPixels(g, 20)
	require.Len(t, pix, 20*20*4)

	centre := (10*20 + 10) * 4
	assert.Greater(t, pix[centre+3], uint8(230))
	// premultiplied channels never exceed alpha
	assert.LessOrEqual(t, pix[centre+0], pix[centre+3])

	corner := 0
	assert.Equal(t, uint8(0), pix[corner+3])
	assert.Equal(t, uint8(0), pix[corner+0])
}

func TestOutside(t *testing.T) {
	r := image.Rect(0, 0, 100, 100)

	strips := outside(r, image.Rect(40, 40, 60, 60))
	require.Len(t, strips, 4)
	area := 0
	for _, s := range strips {
		area += s.Dx() * s.Dy()
	}
	assert.Equal(t, 100*100-20*20, area)

	assert.Equal(t, []image.Rectangle{r}, outside(r, image.Rect(200, 200, 220, 220)))
	assert.Empty(t, outside(r, image.Rect(-10, -10, 110, 110)))
}

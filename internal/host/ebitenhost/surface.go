package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"backdrop/internal/paint"
)

// Surface draws onto the ebiten screen image handed to Draw.
type Surface struct {
	img  *ebiten.Image
	glow *glowCache
}

func newSurface() *Surface {
	return &Surface{glow: &glowCache{}}
}

func (s *Surface) bind(img *ebiten.Image) { s.img = img }

func (s *Surface) Size() (float64, float64) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear() {
	s.img.Fill(paint.Background.NRGBA())
}

func (s *Surface) FillCircle(x, y, r float64, c paint.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	vector.StrokeCircle(s.img, float32(x), float32(y), float32(r), float32(width), c.NRGBA(), true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(), true)
}

// FillRect blits the baked gradient disc and paints the rest of the rectangle
// with the outer stop colour.
func (s *Surface) FillRect(x, y, w, h float64, g *paint.RadialGradient) {
	if g == nil || w <= 0 || h <= 0 {
		return
	}
	rect := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	dst, ok := s.img.SubImage(rect).(*ebiten.Image)
	if !ok {
		return
	}

	disc := s.glow.image(g)
	size := disc.Bounds().Dx()
	left := int(math.Round(g.X)) - size/2
	top := int(math.Round(g.Y)) - size/2

	if _, outer := g.Ends(); outer.A > 0 {
		sq := image.Rect(left, top, left+size, top+size)
		for _, strip := range outside(rect, sq) {
			vector.DrawFilledRect(dst, float32(strip.Min.X), float32(strip.Min.Y),
				float32(strip.Dx()), float32(strip.Dy()), outer.NRGBA(), false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(left), float64(top))
	dst.DrawImage(disc, op)
}

// outside splits the part of r not covered by hole into up to four strips.
func outside(r, hole image.Rectangle) []image.Rectangle {
	hole = hole.Intersect(r)
	if hole.Empty() {
		return []image.Rectangle{r}
	}
	strips := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, hole.Min.Y),
		image.Rect(r.Min.X, hole.Max.Y, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, hole.Min.Y, hole.Min.X, hole.Max.Y),
		image.Rect(hole.Max.X, hole.Min.Y, r.Max.X, hole.Max.Y),
	}
	out := strips[:0]
	for _, st := range strips {
		if !st.Empty() {
			out = append(out, st)
		}
	}
	return out
}

type glowKey struct {
	r0, r1       float64
	inner, outer paint.Color
	stops        int
}

// glowCache keeps the last baked gradient. The pointer moves the centre every
// frame but the disc itself only changes with radius or colour.
type glowCache struct {
	key glowKey
	img *ebiten.Image
}

func (c *glowCache) image(g *paint.RadialGradient) *ebiten.Image {
	in, out := g.Ends()
	k := glowKey{r0: g.R0, r1: g.R1, inner: in, outer: out, stops: len(g.Stops)}
	if c.img != nil && k == c.key {
		return c.img
	}
	size := int(math.Ceil(2 * g.R1))
	if size < 1 {
		size = 1
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(size, size)
	c.img.WritePixels(gradientPixels(g, size))
	c.key = k
	return c.img
}

// gradientPixels renders g centred in a size×size square as premultiplied
// RGBA bytes.
func gradientPixels(g *paint.RadialGradient, size int) []byte {
	pix := make([]byte, size*size*4)
	half := float64(size) / 2
	shifted := *g
	shifted.X, shifted.Y = half, half
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			c := shifted.AtPoint(float64(px)+0.5, float64(py)+0.5)
			i := (py*size + px) * 4
			pix[i+0] = premul(c.R, c.A)
			pix[i+1] = premul(c.G, c.A)
			pix[i+2] = premul(c.B, c.A)
			pix[i+3] = uint8(math.Round(c.A * 255))
		}
	}
	return pix
}

func premul(v uint8, a float64) uint8 {
	return uint8(math.Round(float64(v) * a))
}

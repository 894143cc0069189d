package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/paint"
)

// Each terminal cell is CellW×CellH viewport pixels and shows two square
// "dots" stacked with an upper half block.
const (
	CellW = 8
	CellH = 16
	dot   = CellH / 2
)

const halfBlock = '▀'

// Surface rasterises into a coarse dot grid and flushes it to a tcell screen.
type Surface struct {
	cols, rows int
	dots       []colorful.Color // cols × rows*2
}

func newSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize sets the grid in terminal cells.
func (s *Surface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows
	s.dots = make([]colorful.Color, cols*rows*2)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols * CellW), float64(s.rows * CellH)
}

func (s *Surface) Clear() {
	bg := toColorful(paint.Background)
	for i := range s.dots {
		s.dots[i] = bg
	}
}

// blend composites c over the dot at (dx, dy) with extra coverage k.
func (s *Surface) blend(dx, dy int, c paint.Color, k float64) {
	if dx < 0 || dy < 0 || dx >= s.cols || dy >= s.rows*2 {
		return
	}
	a := c.A * k
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := dy*s.cols + dx
	s.dots[i] = s.dots[i].BlendRgb(toColorful(c), a)
}

func (s *Surface) FillCircle(x, y, r float64, c paint.Color) {
	// Sub-dot circles light their dot in proportion to the area they cover.
	if r < dot/2 {
		cover := math.Pi * r * r / (dot * dot)
		s.blend(cell(x), cell(y), c, cover)
		return
	}
	x0, x1 := cell(x-r), cell(x+r)
	y0, y1 := cell(y-r), cell(y+r)
	for dy := y0; dy <= y1; dy++ {
		for dx := x0; dx <= x1; dx++ {
			cx := (float64(dx) + 0.5) * dot
			cy := (float64(dy) + 0.5) * dot
			if math.Hypot(cx-x, cy-y) <= r {
				s.blend(dx, dy, c, 1)
			}
		}
	}
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	band := math.Max(width/2, dot/2)
	k := math.Min(1, width/dot)
	x0, x1 := cell(x-r-band), cell(x+r+band)
	y0, y1 := cell(y-r-band), cell(y+r+band)
	for dy := y0; dy <= y1; dy++ {
		for dx := x0; dx <= x1; dx++ {
			cx := (float64(dx) + 0.5) * dot
			cy := (float64(dy) + 0.5) * dot
			if math.Abs(math.Hypot(cx-x, cy-y)-r) <= band {
				s.blend(dx, dy, c, k)
			}
		}
	}
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {
	k := math.Min(1, width/dot)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)) / dot))
	if steps == 0 {
		s.blend(cell(x0), cell(y0), c, k)
		return
	}
	lastX, lastY := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dx := cell(x0 + (x1-x0)*t)
		dy := cell(y0 + (y1-y0)*t)
		if dx == lastX && dy == lastY {
			continue
		}
		s.blend(dx, dy, c, k)
		lastX, lastY = dx, dy
	}
}

func (s *Surface) FillRect(x, y, w, h float64, g *paint.RadialGradient) {
	if g == nil {
		return
	}
	x0, x1 := cell(x), int(math.Ceil((x+w)/dot))
	y0, y1 := cell(y), int(math.Ceil((y+h)/dot))
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			cx := (float64(dx) + 0.5) * dot
			cy := (float64(dy) + 0.5) * dot
			s.blend(dx, dy, g.AtPoint(cx, cy), 1)
		}
	}
}

// Dot returns the colour of the dot at (dx, dy).
func (s *Surface) Dot(dx, dy int) colorful.Color {
	return s.dots[dy*s.cols+dx]
}

// Flush writes every cell to screen as a half block: the upper dot is the
// foreground and the lower dot the background.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.dots[(row*2)*s.cols+col]
			bottom := s.dots[(row*2+1)*s.cols+col]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func cell(v float64) int { return int(math.Floor(v / dot)) }

func toColorful(c paint.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

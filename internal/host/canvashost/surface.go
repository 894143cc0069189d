package canvashost

import (
	"math"

	"github.com/tfriedel6/canvas"

	"backdrop/internal/paint"
)

// Surface draws through an HTML5-style canvas, one path per shape.
type Surface struct {
	cv *canvas.Canvas
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cv.Width()), float64(s.cv.Height())
}

func (s *Surface) Clear() {
	w, h := s.Size()
	s.cv.SetFillStyle(paint.Background.CSS())
	s.cv.FillRect(0, 0, w, h)
}

func (s *Surface) FillCircle(x, y, r float64, c paint.Color) {
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, math.Pi*2, false)
	s.cv.SetFillStyle(c.CSS())
	s.cv.Fill()
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, math.Pi*2, false)
	s.cv.SetStrokeStyle(c.CSS())
	s.cv.SetLineWidth(width)
	s.cv.Stroke()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.SetStrokeStyle(c.CSS())
	s.cv.SetLineWidth(width)
	s.cv.Stroke()
}

func (s *Surface) FillRect(x, y, w, h float64, g *paint.RadialGradient) {
	if g == nil {
		return
	}
	grad := s.cv.CreateRadialGradient(g.X, g.Y, g.R0, g.X, g.Y, g.R1)
	for _, st := range g.Stops {
		grad.AddColorStop(st.Offset, st.Color.CSS())
	}
	s.cv.SetFillStyle(grad)
	s.cv.FillRect(x, y, w, h)
}

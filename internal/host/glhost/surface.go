//go:build !android

package glhost

import (
	"math"

	"backdrop/internal/paint"
)

type batchKind uint8

const (
	batchDiscs batchKind = iota
	batchLines
	batchGradient
)

// batch is a run of consecutive draws that share one program. Gradient
// batches carry their own uniforms and never merge.
type batch struct {
	kind         batchKind
	first, count int32

	cx, cy, r0, r1 float32
	inner, outer   [4]float32
}

// Surface records a frame into GPU-ready vertex buffers. Call order is kept
// by splitting the frame into batches whenever the program changes.
//
//	discs: [x, y, outer, r, g, b, a, inner] * N (8 floats per point sprite)
//	lines: [x, y, r, g, b, a] * 6 per segment (two triangles)
//	rects: [x, y] * 6 per rectangle
type Surface struct {
	w, h    float64
	discs   []float32
	lines   []float32
	rects   []float32
	batches []batch
}

func newSurface(w, h float64) *Surface {
	return &Surface{w: w, h: h}
}

func (s *Surface) Resize(w, h float64) {
	if w > 0 && h > 0 {
		s.w, s.h = w, h
	}
}

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Clear() {
	s.discs = s.discs[:0]
	s.lines = s.lines[:0]
	s.rects = s.rects[:0]
	s.batches = s.batches[:0]
}

func (s *Surface) FillCircle(x, y, r float64, c paint.Color) {
	s.disc(x, y, r, 0, c)
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	inner := math.Max(r-width/2, 1e-3)
	s.disc(x, y, r+width/2, inner, c)
}

func (s *Surface) disc(x, y, outer, inner float64, c paint.Color) {
	if outer <= 0 || c.A <= 0 {
		return
	}
	cr, cg, cb, ca := c.Floats()
	s.discs = append(s.discs, float32(x), float32(y), float32(outer), cr, cg, cb, ca, float32(inner))
	s.extend(batchDiscs, int32(len(s.discs)/8-1), 1)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 || c.A <= 0 {
		return
	}
	nx := float32(-dy / l * width / 2)
	ny := float32(dx / l * width / 2)
	ax, ay := float32(x0), float32(y0)
	bx, by := float32(x1), float32(y1)
	cr, cg, cb, ca := c.Floats()

	first := int32(len(s.lines) / 6)
	for _, v := range [6][2]float32{
		{ax + nx, ay + ny}, {ax - nx, ay - ny}, {bx + nx, by + ny},
		{bx + nx, by + ny}, {ax - nx, ay - ny}, {bx - nx, by - ny},
	} {
		s.lines = append(s.lines, v[0], v[1], cr, cg, cb, ca)
	}
	s.extend(batchLines, first, 6)
}

func (s *Surface) FillRect(x, y, w, h float64, g *paint.RadialGradient) {
	if g == nil || w <= 0 || h <= 0 {
		return
	}
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	first := int32(len(s.rects) / 2)
	s.rects = append(s.rects,
		x0, y0, x1, y0, x1, y1,
		x0, y0, x1, y1, x0, y1,
	)
	in, out := g.Ends()
	b := batch{
		kind:  batchGradient,
		first: first,
		count: 6,
		cx:    float32(g.X),
		cy:    float32(g.Y),
		r0:    float32(g.R0),
		r1:    float32(g.R1),
	}
	b.inner[0], b.inner[1], b.inner[2], b.inner[3] = in.Floats()
	b.outer[0], b.outer[1], b.outer[2], b.outer[3] = out.Floats()
	s.batches = append(s.batches, b)
}

// extend grows the last batch when it has the same kind, else opens a new one.
func (s *Surface) extend(kind batchKind, first, n int32) {
	if k := len(s.batches); k > 0 && s.batches[k-1].kind == kind && kind != batchGradient {
		s.batches[k-1].count += n
		return
	}
	s.batches = append(s.batches, batch{kind: kind, first: first, count: n})
}

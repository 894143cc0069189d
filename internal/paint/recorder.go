package paint

type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpStrokeLine
	OpFillRect
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpStrokeLine:
		return "stroke-line"
	case OpFillRect:
		return "fill-rect"
	}
	return "unknown"
}

// Op is one recorded drawing call. Unused fields stay zero.
type Op struct {
	Kind     OpKind
	X0, Y0   float64
	X1, Y1   float64 // line end, or rect width/height
	R        float64
	Width    float64
	Color    Color
	Gradient *RadialGradient
}

// Recorder is an in-memory Surface that keeps every call since the last Clear
// (the Clear itself included). It backs headless runs and tests.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Resize(w, h float64) { r.W, r.H = w, h }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillCircle(x, y, rad float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X0: x, Y0: y, R: rad, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, rad, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, X0: x, Y0: y, R: rad, Width: width, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, g *RadialGradient) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X0: x, Y0: y, X1: w, Y1: h, Gradient: g})
}

// Count returns how many recorded ops are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind k in call order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

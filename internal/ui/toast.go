package ui

// Toast timings, in seconds.
const (
	ToastSlide = 0.3
	ToastHold  = 3.0
)

type Toast struct {
	Message string
	age     float64
}

// Offset is the slide position: 1 is fully off screen, 0 fully shown.
func (t *Toast) Offset() float64 {
	switch {
	case t.age < ToastSlide:
		return 1 - t.age/ToastSlide
	case t.age < ToastSlide+ToastHold:
		return 0
	default:
		out := (t.age - ToastSlide - ToastHold) / ToastSlide
		if out > 1 {
			return 1
		}
		return out
	}
}

func (t *Toast) done() bool {
	return t.age >= 2*ToastSlide+ToastHold
}

// Toasts is a stack of transient notifications, oldest first.
type Toasts struct {
	items []*Toast
}

func (ts *Toasts) Show(msg string) *Toast {
	t := &Toast{Message: msg}
	ts.items = append(ts.items, t)
	return t
}

// Update ages every toast by dt seconds and drops the finished ones.
func (ts *Toasts) Update(dt float64) {
	kept := ts.items[:0]
	for _, t := range ts.items {
		t.age += dt
		if !t.done() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(ts.items); i++ {
		ts.items[i] = nil
	}
	ts.items = kept
}

// Active returns the live toasts, oldest first.
func (ts *Toasts) Active() []*Toast { return ts.items }

// Latest returns the newest live toast or nil.
func (ts *Toasts) Latest() *Toast {
	if len(ts.items) == 0 {
		return nil
	}
	return ts.items[len(ts.items)-1]
}

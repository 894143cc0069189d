package field

import "backdrop/internal/paint"

// Defaults observed on the portfolio page.
const (
	DefaultCount         = 80
	DefaultLinkDistance  = 120.0
	DefaultPointerRadius = 150.0
	DefaultRepelStep     = 2.0
	DefaultMaxSpeed      = 0.25 // per-axis velocity bound, units per frame
	DefaultMinRadius     = 1.0
	DefaultMaxRadius     = 3.0
)

// Line widths and opacity scales.
const (
	LinkWidth         = 1.0
	LinkAlphaScale    = 0.3
	PointerLinkWidth  = 2.0
	PointerAlphaScale = 0.5
)

// Palette is the set of colours the field draws with.
var Palette = struct {
	Particle    paint.Color
	Link        paint.Color
	PointerLink paint.Color
	GlowInner   paint.Color
	GlowOuter   paint.Color
}{
	Particle:    paint.RGBA(255, 107, 53, 0.5),
	Link:        paint.RGBA(255, 107, 53, 1),
	PointerLink: paint.RGBA(247, 147, 30, 1),
	GlowInner:   paint.RGBA(255, 107, 53, 0.15),
	GlowOuter:   paint.RGBA(255, 107, 53, 0),
}

// Config parameterises a Field. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	Count         int
	LinkDistance  float64
	PointerRadius float64
	RepelStep     float64
	MaxSpeed      float64
	MinRadius     float64
	MaxRadius     float64
	Seed          uint64
}

func DefaultConfig() Config {
	return Config{
		Count:         DefaultCount,
		LinkDistance:  DefaultLinkDistance,
		PointerRadius: DefaultPointerRadius,
		RepelStep:     DefaultRepelStep,
		MaxSpeed:      DefaultMaxSpeed,
		MinRadius:     DefaultMinRadius,
		MaxRadius:     DefaultMaxRadius,
		Seed:          1,
	}
}

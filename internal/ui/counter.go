package ui

import (
	"strconv"
	"strings"
)

// Counter animation: the value climbs to its target over CountDuration in
// CountInterval steps.
const (
	CountDuration = 2.0
	CountInterval = 0.016
)

// Stat is one label/value pair shown in the stats strip.
type Stat struct {
	Label string
	Value string
}

// Counter animates a single stat from zero up to its printed value.
type Counter struct {
	Stat

	text    string
	target  float64
	current float64
	step    float64
	numeric bool
	running bool
	acc     float64
}

func NewCounter(s Stat) *Counter {
	c := &Counter{Stat: s, text: s.Value}
	if v, ok := ParseLeadingFloat(s.Value); ok {
		c.numeric = true
		c.target = v
		c.step = v / (CountDuration / CountInterval)
	}
	return c
}

// Start begins the climb. Non-numeric values have nothing to animate.
func (c *Counter) Start() {
	if !c.numeric {
		return
	}
	c.running = true
	c.current = 0
	c.acc = 0
}

// Advance runs as many CountInterval steps as dt covers.
func (c *Counter) Advance(dt float64) {
	if !c.running {
		return
	}
	c.acc += dt
	for c.acc >= CountInterval && c.running {
		c.acc -= CountInterval
		c.current += c.step
		if c.current >= c.target || c.step <= 0 {
			c.text = c.Value
			c.running = false
			return
		}
		c.text = strconv.FormatFloat(c.current, 'f', 2, 64)
	}
}

func (c *Counter) Text() string  { return c.text }
func (c *Counter) Running() bool { return c.running }

// Counters animates a stats strip once; later Start calls are ignored.
type Counters struct {
	items   []*Counter
	started bool
}

func NewCounters(stats []Stat) *Counters {
	cs := &Counters{items: make([]*Counter, 0, len(stats))}
	for _, s := range stats {
		cs.items = append(cs.items, NewCounter(s))
	}
	return cs
}

func (cs *Counters) Start() {
	if cs.started {
		return
	}
	cs.started = true
	for _, c := range cs.items {
		c.Start()
	}
}

func (cs *Counters) Advance(dt float64) {
	for _, c := range cs.items {
		c.Advance(dt)
	}
}

func (cs *Counters) Items() []*Counter { return cs.items }

// ParseLeadingFloat reads the longest decimal number prefix of s, ignoring
// leading spaces, so "25+" gives 25, "3.52 CGPA" gives 3.52 and "1e3" gives
// 1000. An exponent marker with no digits after it is not part of the number.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n")
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		start := i
		for ; i < len(s) && isDigit(s[i]); i++ {
		}
		if i > start {
			end = i
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

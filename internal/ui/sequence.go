package ui

// Key names follow the DOM KeyboardEvent.key convention; hosts translate their
// native key codes into these.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

var Konami = []string{
	KeyArrowUp, KeyArrowUp,
	KeyArrowDown, KeyArrowDown,
	KeyArrowLeft, KeyArrowRight,
	KeyArrowLeft, KeyArrowRight,
	"b", "a",
}

// Sequence watches a key stream for a fixed combination. It remembers only
// the last len(pattern) keys and is not reset by a match.
type Sequence struct {
	pattern []string
	recent  []string
}

func NewSequence(pattern []string) *Sequence {
	return &Sequence{
		pattern: pattern,
		recent:  make([]string, 0, len(pattern)),
	}
}

// Push records a key and reports whether the recent keys now spell the pattern.
func (s *Sequence) Push(key string) bool {
	if len(s.pattern) == 0 {
		return false
	}
	if len(s.recent) == len(s.pattern) {
		copy(s.recent, s.recent[1:])
		s.recent = s.recent[:len(s.recent)-1]
	}
	s.recent = append(s.recent, key)
	if len(s.recent) != len(s.pattern) {
		return false
	}
	for i, k := range s.pattern {
		if s.recent[i] != k {
			return false
		}
	}
	return true
}

package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockCapsLongFrames(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	c := &Clock{last: base, now: func() time.Time { return now }}

	now = base.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Step(), 1e-9)

	now = now.Add(2 * time.Second)
	assert.Equal(t, MaxFrameStep, c.Step())

	now = now.Add(-time.Second)
	assert.Equal(t, 0.0, c.Step())
}

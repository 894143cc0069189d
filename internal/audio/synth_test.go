package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedCuesStayInRange(t *testing.T) {
	for _, k := range []SoundKind{SoundClick, SoundCopy, SoundEasterEgg} {
		s := Generate(k)
		require.NotEmpty(t, s, k.String())
		peak := 0.0
		for _, v := range s {
			assert.False(t, math.IsNaN(v))
			peak = math.Max(peak, math.Abs(v))
		}
		assert.LessOrEqual(t, peak, 1.0, k.String())
		assert.Greater(t, peak, 0.01, k.String())
	}
	assert.Nil(t, Generate(SoundKind(99)))
}

func TestEasterEggOutlastsClick(t *testing.T) {
	assert.Greater(t, len(Generate(SoundEasterEgg)), len(Generate(SoundCopy)))
	assert.Greater(t, len(Generate(SoundCopy)), len(Generate(SoundClick)))
}

func TestAdsrShape(t *testing.T) {
	assert.Equal(t, 0.0, adsr(0, 0.1, 0.2, 0.5, 0.2))
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.0, adsr(1, 0.1, 0.2, 0.5, 0.2), 1e-9)
}

func TestSoftSatIsBounded(t *testing.T) {
	for _, x := range []float64{-50, -2, -1, 0, 0.5, 1, 2, 50} {
		y := softSat(x)
		assert.LessOrEqual(t, math.Abs(y), 1.0)
		assert.Equal(t, math.Signbit(x), math.Signbit(y), x)
	}
}

func TestNopAndClamp(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Play(SoundEasterEgg) })
	assert.Equal(t, 0.0, ClampVolume(-1))
	assert.Equal(t, 1.0, ClampVolume(3))
	assert.Equal(t, 0.4, ClampVolume(0.4))
	assert.Len(t, Kinds, 3)
}

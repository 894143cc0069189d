package beepaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backdrop/internal/audio"
)

func TestStreamEndsAfterSamples(t *testing.T) {
	s := Stream([]float64{0.1, 0.2, 0.3})
	buf := make([][2]float64, 2)

	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, [2]float64{0.2, 0.2}, buf[1])

	n, ok = s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = s.Stream(buf)
	assert.False(t, ok)
}

func TestVolumeScalesStream(t *testing.T) {
	buf := make([][2]float64, 1)
	withVolume(Stream([]float64{0.8}), 0.5).Stream(buf)
	assert.InDelta(t, 0.4, buf[0][0], 1e-9)

	withVolume(Stream([]float64{0.8}), 0).Stream(buf)
	assert.Equal(t, 0.0, buf[0][1])
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() { p.Play(audio.SoundCopy) })
}

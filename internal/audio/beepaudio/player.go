// Package beepaudio plays interface cues through the beep speaker.
package beepaudio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"backdrop/internal/audio"
)

// Player mixes every cue into one speaker stream so overlapping sounds sum
// instead of queueing.
type Player struct {
	mixer  *beep.Mixer
	volume float64
	cache  map[audio.SoundKind][]float64
}

func New(volume float64) (*Player, error) {
	sr := beep.SampleRate(audio.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: audio.ClampVolume(volume),
		cache:  make(map[audio.SoundKind][]float64),
	}
	for _, k := range audio.Kinds {
		p.cache[k] = audio.Generate(k)
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *Player) Play(kind audio.SoundKind) {
	if p == nil || p.volume <= 0 {
		return
	}
	samples := p.cache[kind]
	if len(samples) == 0 {
		return
	}
	s := withVolume(Stream(samples), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}

// Stream wraps mono samples as a finite beep streamer.
func Stream(mono []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(mono) {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < len(mono) {
			samples[n][0] = mono[pos]
			samples[n][1] = mono[pos]
			n++
			pos++
		}
		return n, true
	})
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

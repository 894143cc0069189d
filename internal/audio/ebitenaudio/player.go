// Package ebitenaudio plays interface cues through ebiten's audio context, so
// the ebiten host shares one device with the engine.
package ebitenaudio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "backdrop/internal/audio"
)

type Player struct {
	ctx    *audio.Context
	volume float64
	cache  map[sfx.SoundKind][]byte
}

// New creates the ebiten audio context. It must be called at most once per
// process.
func New(volume float64) *Player {
	p := &Player{
		ctx:    audio.NewContext(sfx.SampleRate),
		volume: sfx.ClampVolume(volume),
		cache:  make(map[sfx.SoundKind][]byte),
	}
	for _, k := range sfx.Kinds {
		p.cache[k] = encodeStereoS16(sfx.Generate(k))
	}
	return p
}

func (p *Player) Play(kind sfx.SoundKind) {
	if p == nil || p.volume <= 0 {
		return
	}
	data := p.cache[kind]
	if len(data) == 0 {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(data)
	pl.SetVolume(p.volume)
	pl.Play()
}

// encodeStereoS16 lays mono samples out as 16-bit LE stereo, the format
// ebiten audio players read.
func encodeStereoS16(mono []float64) []byte {
	buf := make([]byte, len(mono)*4)
	for i, s := range mono {
		v := int16(math.Round(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

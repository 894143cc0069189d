// Package otoaudio plays interface cues through an oto/v2 device context.
package otoaudio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"backdrop/internal/audio"
)

const (
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Player gives each cue its own short-lived oto player on a goroutine.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cache  map[audio.SoundKind][]byte
}

// New opens the audio device. Cues are rendered up front so Play only
// copies bytes.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: audio.ClampVolume(volume),
		cache:  make(map[audio.SoundKind][]byte),
	}
	for _, k := range audio.Kinds {
		p.cache[k] = encodeStereoF32(audio.Generate(k))
	}
	return p, nil
}

// Play is a no-op until the device reports ready.
func (p *Player) Play(kind audio.SoundKind) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	data := p.cache[kind]
	if len(data) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// encodeStereoF32 lays mono samples out as interleaved float32 LE stereo frames.
func encodeStereoF32(mono []float64) []byte {
	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		putStereoF32(buf, i, s)
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

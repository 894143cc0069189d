package main

import (
	"go.uber.org/zap"

	"backdrop/internal/audio"
	"backdrop/internal/audio/beepaudio"
	"backdrop/internal/audio/ebitenaudio"
	"backdrop/internal/audio/otoaudio"
	"backdrop/internal/config"
	"backdrop/internal/host"
	"backdrop/internal/host/canvashost"
	"backdrop/internal/host/ebitenhost"
	"backdrop/internal/host/glhost"
	"backdrop/internal/host/termhost"
)

var backends = map[string]host.RunFunc{
	config.BackendGL:     glhost.Run,
	config.BackendCanvas: canvashost.Run,
	config.BackendEbiten: ebitenhost.Run,
	config.BackendTerm:   termhost.Run,
}

// newPlayer opens the audio device that suits the backend. Sound is optional:
// any failure is logged and the session runs silent.
func newPlayer(backend string, cfg config.AudioConfig, log *zap.Logger) (audio.Player, func()) {
	noop := func() {}
	if !cfg.Enabled {
		return audio.Nop{}, noop
	}
	vol := audio.ClampVolume(cfg.Volume)

	switch backend {
	case config.BackendEbiten:
		// ebiten owns the audio device once its context exists
		return ebitenaudio.New(vol), noop
	case config.BackendTerm:
		p, err := beepaudio.New(vol)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", zap.Error(err))
			return audio.Nop{}, noop
		}
		return p, p.Close
	default:
		p, err := otoaudio.New(vol)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", zap.Error(err))
			return audio.Nop{}, noop
		}
		return p, noop
	}
}

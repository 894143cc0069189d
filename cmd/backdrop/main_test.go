package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backdrop/internal/audio"
	"backdrop/internal/config"
	"backdrop/internal/ui"
)

func TestStatsConversion(t *testing.T) {
	got := stats([]config.StatConfig{{Label: "CGPA", Value: "3.52"}})
	assert.Equal(t, []ui.Stat{{Label: "CGPA", Value: "3.52"}}, got)
	assert.Empty(t, stats(nil))
}

func TestDisabledAudioIsSilent(t *testing.T) {
	p, closeFn := newPlayer(config.BackendTerm, config.AudioConfig{Enabled: false}, zap.NewNop())
	assert.Equal(t, audio.Nop{}, p)
	closeFn()
}

func TestEveryBackendIsRegistered(t *testing.T) {
	for _, b := range []string{config.BackendGL, config.BackendCanvas, config.BackendEbiten, config.BackendTerm} {
		assert.Contains(t, backends, b)
	}
}

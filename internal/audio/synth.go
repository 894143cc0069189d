package audio

import "math"

const SampleRate = 44100

// SoundKind identifies one of the interface cues.
type SoundKind int

const (
	SoundClick SoundKind = iota
	SoundCopy
	SoundEasterEgg
)

// Kinds lists every cue, for players that render them up front.
var Kinds = []SoundKind{SoundClick, SoundCopy, SoundEasterEgg}

func (k SoundKind) String() string {
	switch k {
	case SoundClick:
		return "click"
	case SoundCopy:
		return "copy"
	case SoundEasterEgg:
		return "easter-egg"
	}
	return "unknown"
}

// Generate renders a cue as mono samples in [-1,1] at SampleRate.
func Generate(kind SoundKind) []float64 {
	switch kind {
	case SoundClick:
		return genClick()
	case SoundCopy:
		return genCopy()
	case SoundEasterEgg:
		return genEasterEgg()
	}
	return nil
}

// softSat is a cubic soft clipper with gentle limiting above unity.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope level at progress in [0,1]. Segment lengths are
// fractions of the whole sound.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns a two-operator FM sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// genClick: short falling blip.
func genClick() []float64 {
	n := SampleRate * 45 / 1000
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.5, 0.0, 0.1)
		freq := 1200 - 500*p
		out[i] = softSat(fm(t, freq, 1.0, 0.5) * env * 0.3)
	}
	return out
}

// genCopy: two rising notes.
func genCopy() []float64 {
	return arpeggio([]float64{659.25, 987.77}, 0.07, 0.15, 2.0, 3.0, 0.32)
}

// genEasterEgg: bell arpeggio up an octave and a half.
func genEasterEgg() []float64 {
	notes := []float64{523.25, 659.25, 783.99, 1046.5, 1318.51} // C5 E5 G5 C6 E6
	return arpeggio(notes, 0.09, 0.45, 3.5, 5.5, 0.26)
}

// arpeggio overlaps FM bell notes started step seconds apart; each note rings
// until the shared tail ends.
func arpeggio(freqs []float64, step, tail, ratio, index, gain float64) []float64 {
	noteStep := int(step * SampleRate)
	total := len(freqs)*noteStep + int(tail*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, ratio, index*env) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// Player plays interface cues without blocking the caller.
type Player interface {
	Play(kind SoundKind)
}

// Nop is the silent Player used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) Play(SoundKind) {}

// ClampVolume limits a configured volume to [0,1].
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

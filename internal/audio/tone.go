package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a decaying sine sweep from Start to End Hz with optional noise,
// the building block of every cue.
type Tone struct {
	sr       beep.SampleRate
	start    float64
	end      float64
	length   int
	decay    float64 // envelope falloff per second
	noise    float64 // 0..1 share of pseudo-random noise
	gain     float64
	pos      int
	phase    float64
	noiseReg uint32
}

// NewTone builds a tone of duration d.
func NewTone(sr beep.SampleRate, start, end float64, d time.Duration, decay, noise, gain float64) *Tone {
	return &Tone{
		sr:       sr,
		start:    start,
		end:      end,
		length:   sr.N(d),
		decay:    decay,
		noise:    noise,
		gain:     gain,
		noiseReg: 0x1234567,
	}
}

// Len is the tone's length in samples.
func (t *Tone) Len() int { return t.length }

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.start + (t.end-t.start)*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)
		sec := float64(t.pos) / float64(t.sr)
		env := math.Exp(-sec * t.decay)
		// Short fade-in keeps the attack click-free.
		env *= math.Min(sec/0.005, 1)

		s := (1-t.noise)*math.Sin(t.phase) + t.noise*t.nextNoise()
		v := t.gain * env * s
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// nextNoise is a xorshift generator mapped to [-1,1].
func (t *Tone) nextNoise() float64 {
	x := t.noiseReg
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	t.noiseReg = x
	return float64(x)/float64(math.MaxUint32)*2 - 1
}

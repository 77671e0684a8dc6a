// Package audio plays procedural sound cues for gameplay events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the speaker. Every method is safe to call before
// Init or after it failed; audio is optional.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
	lastPlayed  map[Cue]float64
	log         *logrus.Entry
}

// New returns a player at volume 0..1.
func New(volume float64, log *logrus.Entry) *Player {
	return &Player{
		mixer:      &beep.Mixer{},
		gain:       volume,
		lastPlayed: map[Cue]float64{},
		log:        log,
	}
}

// Init opens the speaker. Repeated calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Consume plays the cues for events, throttling repeats by simulated time.
func (p *Player) Consume(events []sim.Event) {
	for _, e := range events {
		c, ok := CueFor(e)
		if !ok {
			continue
		}
		if !p.allow(c, e.Time) {
			continue
		}
		p.Play(c)
	}
}

// allow records and reports whether c may play at time now.
func (p *Player) allow(c Cue, now float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if last, ok := p.lastPlayed[c]; ok && now-last < minGap[c] && now >= last {
		return false
	}
	p.lastPlayed[c] = now
	return true
}

// Play mixes c in immediately.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.gain <= 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer(sampleRate, c, p.gain))
	speaker.Unlock()
	if p.log != nil {
		p.log.WithField("cue", c).Trace("audio cue")
	}
}

package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// Cue is one sound effect.
type Cue int

const (
	CueCast Cue = iota
	CueBurst
	CueExplosion
	CueHit
	CueHurt
	CueLevelUp
	CueBossSpawn
	CueDefeat
	CueVictory
)

// minGap is the minimum simulated time between two plays of the same cue.
var minGap = map[Cue]float64{
	CueCast:      0.05,
	CueBurst:     0.05,
	CueHit:       0.08,
	CueHurt:      0.15,
	CueExplosion: 0.1,
}

// CueFor maps a gameplay event to its sound, if it has one.
func CueFor(e sim.Event) (Cue, bool) {
	switch e.Category {
	case "cast":
		switch e.Key {
		case sim.AbilityElectricBurst.String():
			return CueBurst, true
		case sim.AbilityExplosion.String():
			return CueExplosion, true
		default:
			return CueCast, true
		}
	case "kill":
		return CueHit, true
	case "player":
		return CueHurt, true
	case "level":
		return CueLevelUp, true
	case "boss":
		if e.Key == "spawn" {
			return CueBossSpawn, true
		}
		return CueHit, true
	case "game":
		switch e.Key {
		case "defeat":
			return CueDefeat, true
		case "victory":
			return CueVictory, true
		}
	}
	return 0, false
}

// streamer builds the sound for c.
func streamer(sr beep.SampleRate, c Cue, gain float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CueCast:
		return NewTone(sr, 900, 1400, ms(90), 25, 0.05, 0.25*gain)
	case CueBurst:
		return NewTone(sr, 300, 1800, ms(160), 12, 0.35, 0.25*gain)
	case CueExplosion:
		return NewTone(sr, 140, 40, ms(450), 6, 0.7, 0.5*gain)
	case CueHit:
		return NewTone(sr, 320, 120, ms(110), 20, 0.4, 0.3*gain)
	case CueHurt:
		return NewTone(sr, 200, 90, ms(180), 10, 0.2, 0.4*gain)
	case CueLevelUp:
		return beep.Seq(
			NewTone(sr, 523, 523, ms(90), 4, 0, 0.3*gain),
			NewTone(sr, 659, 659, ms(90), 4, 0, 0.3*gain),
			NewTone(sr, 784, 784, ms(180), 4, 0, 0.3*gain),
		)
	case CueBossSpawn:
		return NewTone(sr, 70, 55, ms(900), 2, 0.3, 0.5*gain)
	case CueDefeat:
		return NewTone(sr, 400, 80, ms(1200), 2, 0.1, 0.4*gain)
	case CueVictory:
		return beep.Seq(
			NewTone(sr, 523, 523, ms(150), 3, 0, 0.3*gain),
			NewTone(sr, 784, 784, ms(150), 3, 0, 0.3*gain),
			NewTone(sr, 1046, 1046, ms(400), 3, 0, 0.3*gain),
		)
	}
	return beep.Silence(0)
}

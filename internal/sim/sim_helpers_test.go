package sim

import (
	"math"

	"github.com/pmx-16/arcane-conquest/internal/stats"
)

const tick = 1.0 / 60

type recordingSink struct {
	got []stats.Summary
}

func (r *recordingSink) LogStats(s stats.Summary) error {
	r.got = append(r.got, s)
	return nil
}

// pacifist stops the player from casting so hostile behaviour can be
// observed without interference.
func pacifist(w *World) {
	p := w.player
	p.BoltCooldown = math.Inf(1)
	p.BurstCooldown = math.Inf(1)
	p.ExplosionCooldown = math.Inf(1)
}

func countProjectiles(w *World, kind EntityKind) int {
	n := 0
	for _, pr := range w.projectiles {
		if pr.View().Kind == kind {
			n++
		}
	}
	return n
}

func fixedSessionIDs() func() string {
	n := 0
	return func() string {
		n++
		return "session-" + string(rune('a'+n-1))
	}
}

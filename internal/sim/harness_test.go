package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadless_AutopilotIsDeterministic(t *testing.T) {
	run := func() *Headless {
		h := NewHeadless(
			WithWorld(WithSeed(11), WithSessionIDs(fixedSessionIDs())),
			WithAutopilot(),
			WithStart(),
		)
		h.RunFor(40)
		return h
	}
	a, b := run(), run()

	require.Equal(t, a.World.Summary(), b.World.Summary())
	assert.Equal(t, a.World.Events().Len(), b.World.Events().Len())
}

func TestHeadless_AutopilotFightsAndLevels(t *testing.T) {
	h := NewHeadless(WithWorld(WithSeed(5)), WithAutopilot(), WithStart())
	h.RunFor(60)
	w := h.World

	t.Logf("summary after 60s: %+v", w.Summary())
	assert.Positive(t, w.EnemiesDefeated(), "autopilot never killed anything")
	assert.Positive(t, w.DamageDealt())
	assert.Positive(t, w.Events().Count("cast", AbilityExplosion.String()))
	for _, ab := range []Ability{AbilityMagicBolt, AbilityElectricBurst, AbilityExplosion} {
		assert.Positive(t, w.Player().Damage[ab], "%s never landed", ab)
	}
	assert.Greater(t, w.Player().Level, 1, "dropped orbs were never collected")
	assert.Equal(t, w.Player().Level-1-w.PendingLevelUps(), w.Events().Count("upgrade", ""),
		"every resolved level-up applies exactly one upgrade")
}

func TestHeadless_KitesAwayFromThreat(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(50.5, 45.5, false), WithAutopilot())
	w := h.World
	pacifist(w)
	start := w.Player().Pos

	h.RunTicks(10)

	if w.Player().Pos.X <= start.X {
		t.Fatalf("player should move away from a threat on the left, went %v -> %v", start, w.Player().Pos)
	}
}

func TestHeadless_WalksToDroppedItems(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(115.5, 85.5, false), WithAutopilot())
	w := h.World
	pacifist(w)
	p := w.Player()
	start := p.Pos
	w.items = append(w.items, &Item{ID: 1, Kind: ItemExpOrb, Pos: start.Add(Vec2{Y: -25}), Value: 20, HomingSpeed: 20})

	at := h.RunUntil(func(h *Headless) bool { return len(h.World.Items()) == 0 }, 300)

	require.NotEqual(t, -1, at, "orb outside the pickup radius was never reached")
	assert.Equal(t, 20.0, p.Exp)
	assert.Less(t, p.Pos.Y, start.Y)
}

func TestAxisDirs_DominantAxisFirst(t *testing.T) {
	p, s := axisDirs(Vec2{X: -3, Y: 1})
	if p != DirLeft || s != DirDown {
		t.Fatalf("got %s,%s", p, s)
	}
	p, s = axisDirs(Vec2{X: 1, Y: -5})
	if p != DirUp || s != DirRight {
		t.Fatalf("got %s,%s", p, s)
	}
}

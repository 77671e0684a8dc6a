package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor_TakeDamage_StrictlySubtractiveDiesOnce(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(10.5, 10.5, false))
	g := h.World.Enemies()[0].Body()
	require.Equal(t, 50.0, g.Health)

	if !g.TakeDamage(60) {
		t.Fatal("lethal hit should report the death")
	}
	if g.Health != -10 {
		t.Fatalf("expected health -10, got %.2f", g.Health)
	}
	if g.TakeDamage(5) {
		t.Fatal("death must not fire a second time")
	}
	if g.Health != -15 || !g.IsDead() {
		t.Fatalf("expected dead at -15, got %.2f dead=%v", g.Health, g.IsDead())
	}
}

func TestActor_HurtInterruptsPendingShot(t *testing.T) {
	h := NewHeadless(WithWave(3), WithGruntAt(10.5, 10.5, true))
	g := h.World.Enemies()[0].Body()
	g.Anim.BeginAttack()
	g.PendingShot = true

	g.TakeDamage(1)

	assert.False(t, g.PendingShot)
	assert.Equal(t, AnimAttacked, g.Anim.State())
}

func TestGrunt_DeathAnimationPlaysBeforeRemoval(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(10.5, 10.5, false))
	w := h.World
	grunt := w.Enemies()[0]

	w.damageHostile(grunt, 60, AbilityMagicBolt)
	require.True(t, grunt.Body().IsDead())

	h.RunFor(0.5)
	if len(w.Enemies()) != 1 || w.Enemies()[0] != grunt {
		t.Fatal("dead grunt was removed before its death animation finished")
	}
	if w.EnemiesDefeated() != 0 {
		t.Fatal("reward paid before removal")
	}

	at := h.RunUntil(func(h *Headless) bool { return h.World.EnemiesDefeated() == 1 }, 120)
	require.NotEqual(t, -1, at, "grunt never removed")
	assert.True(t, grunt.Body().Anim.DeathFinished())
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 10, w.Score())
	assert.Equal(t, 1, w.WaveKills())

	orbs := 0
	for _, it := range w.Items() {
		if it.Kind == ItemExpOrb {
			orbs++
			assert.Equal(t, 20.0, it.Value)
		}
	}
	assert.Equal(t, 1, orbs, "exactly one experience orb should drop")
}

func TestGrunt_MeleeLockSkipsPathfinding(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(55.5, 45.5, false))
	w := h.World
	pacifist(w)
	before := w.Enemies()[0].Body().Pos

	h.RunTicks(30)

	if q := w.Paths().Queries(); q != 0 {
		t.Fatalf("grunt inside the melee lock queried the pathfinder %d times", q)
	}
	if got := w.Enemies()[0].Body().Pos; got != before {
		t.Fatalf("grunt inside the melee lock moved from %v to %v", before, got)
	}
}

func TestGrunt_ReplansEveryTick(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(20.5, 45.5, false))
	w := h.World
	pacifist(w)

	h.RunTicks(3)

	if q := w.Paths().Queries(); q != 3 {
		t.Fatalf("expected one path query per tick, got %d", q)
	}
	pos := w.Enemies()[0].Body().Pos
	if pos.X <= 20.5 {
		t.Fatalf("grunt should have advanced toward the player, at %v", pos)
	}
	if w.Enemies()[0].Body().FacingLeft {
		t.Fatal("grunt moving right should face right")
	}
}

func TestGrunt_WaitsForActivation(t *testing.T) {
	h := NewHeadless(WithWave(1))
	w := h.World
	pacifist(w)
	w.addHostile(NewGrunt(w, w.newID(), Vec2{X: 5.5, Y: 45.5}, false))

	h.RunFor(1)
	assert.Zero(t, w.Paths().Queries(), "far grunt should idle before activation")

	h.RunFor(2.5)
	assert.True(t, w.Enemies()[0].Body().Active)
	assert.Positive(t, w.Paths().Queries())
}

func TestGrunt_MeleeHitsPlayerAfterWindup(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(55.5, 45.5, false))
	w := h.World
	pacifist(w)

	at := h.RunUntil(func(h *Headless) bool { return h.World.Player().Health < 100 }, 300)
	require.NotEqual(t, -1, at, "grunt never landed a hit")
	assert.Equal(t, 95.0, w.Player().Health)
	assert.GreaterOrEqual(t, w.Time(), 2.0, "hit must wait for cooldown and wind-up")
	assert.Equal(t, 1, w.Events().Count("player", "hit"))
}

func TestCaster_FiresOneEnemyBoltPerAttack(t *testing.T) {
	h := NewHeadless(WithWave(3), WithGruntAt(53.5, 45.5, true))
	w := h.World
	pacifist(w)

	at := h.RunUntil(func(h *Headless) bool { return countProjectiles(h.World, KindEnemyBolt) > 0 }, 300)
	require.NotEqual(t, -1, at)
	assert.Equal(t, 1, countProjectiles(w, KindEnemyBolt))

	h.RunFor(1)
	assert.Equal(t, 94.0, w.Player().Health)
}

func TestBoss_ExposesMaxHealthAndFiresSpread(t *testing.T) {
	h := NewHeadless(WithWave(1), WithBossAt(75.5, 45.5))
	w := h.World
	pacifist(w)

	b, ok := w.Boss()
	require.True(t, ok)
	assert.Equal(t, 750.0, b.MaxHealth)

	at := h.RunUntil(func(h *Headless) bool { return countProjectiles(h.World, KindBossBolt) == 3 }, 400)
	require.NotEqual(t, -1, at, "boss never fired")
	assert.LessOrEqual(t, b.Pos.Dist(w.Player().Pos), w.Tuning().MeleeLockRadius+0.5,
		"boss should have closed to the melee lock by chasing directly")
	assert.Zero(t, w.Paths().Queries(), "boss never uses the pathfinder")

	h.RunFor(1)
	assert.Equal(t, 88.0, w.Player().Health, "only the centre bolt of the spread should connect")
}

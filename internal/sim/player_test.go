package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_GainExp_CrossesOneThreshold(t *testing.T) {
	p := NewPlayer(Vec2{}, DefaultTuning(), nil)
	p.Exp = 95

	if n := p.GainExp(10); n != 1 {
		t.Fatalf("expected one level-up, got %d", n)
	}
	if p.Level != 2 || p.Exp != 5 || p.ExpToNext != 110 {
		t.Fatalf("expected level 2, exp 5, threshold 110; got %d, %.1f, %.1f", p.Level, p.Exp, p.ExpToNext)
	}
}

func TestPlayer_GainExp_MultipleLevelsInOneCall(t *testing.T) {
	p := NewPlayer(Vec2{}, DefaultTuning(), nil)

	if n := p.GainExp(220); n != 2 {
		t.Fatalf("expected two level-ups, got %d", n)
	}
	// 220 - 100 (level 1) - 110 (level 2) = 10
	if p.Level != 3 || p.Exp != 10 || p.ExpToNext != 120 {
		t.Fatalf("expected level 3, exp 10, threshold 120; got %d, %.1f, %.1f", p.Level, p.Exp, p.ExpToNext)
	}
}

func TestPlayer_Move_RejectsBlockedAndOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10, WithBlocked(Cell{2, 0}))
	p := NewPlayer(Vec2{X: 0.5, Y: 0.5}, DefaultTuning(), nil)

	if p.Move(g, DirLeft, 0.1) {
		t.Fatal("move off the map should be rejected")
	}
	if p.Pos != (Vec2{X: 0.5, Y: 0.5}) {
		t.Fatalf("rejected move changed position to %v", p.Pos)
	}

	p.Pos = Vec2{X: 1.5, Y: 0.5}
	if p.Move(g, DirRight, 0.1) {
		t.Fatal("move into a blocked cell should be rejected")
	}
	if p.Pos != (Vec2{X: 1.5, Y: 0.5}) {
		t.Fatalf("rejected move changed position to %v", p.Pos)
	}

	if !p.Move(g, DirDown, 0.1) {
		t.Fatal("open move should succeed")
	}
	if math.Abs(p.Pos.Y-1.7) > 1e-9 || p.Walked() <= 0 {
		t.Fatalf("expected to move 1.2 down, at %v", p.Pos)
	}
	p.Move(g, DirLeft, 0.01)
	if !p.FacingLeft {
		t.Fatal("moving left should face left")
	}
}

func TestMoveActor_RejectsBlockedCell(t *testing.T) {
	g := NewGrid(10, 10, WithBlocked(Cell{3, 3}))
	a := &Actor{Pos: Vec2{X: 2.9, Y: 3.5}, Speed: 6}

	if d := moveActor(g, a, Vec2{X: 1}, 0.1); d != 0 {
		t.Fatalf("expected no movement, moved %.2f", d)
	}
	if a.Pos != (Vec2{X: 2.9, Y: 3.5}) {
		t.Fatalf("position changed to %v", a.Pos)
	}
	moveActor(g, a, Vec2{Y: 1}, 0.1)
	if a.FacingLeft {
		t.Fatal("vertical movement must not flip facing")
	}
}

func TestPlayer_VolleyQueuesStaggeredCasts(t *testing.T) {
	w := NewWorld(WithSeed(7))
	p := w.Player()
	p.MagicBoltCount = 3
	origin := p.Pos
	target := origin.Add(Vec2{X: 10})

	p.castVolley(w, AbilityMagicBolt, p.MagicBoltCount, target, 17)

	require.Len(t, w.Projectiles(), 1, "shot 0 fires immediately")
	pending := p.Pending()
	require.Len(t, pending, 2)
	assert.InDelta(t, 0.35, pending[0].FireTime, 1e-9)
	assert.InDelta(t, 0.70, pending[1].FireTime, 1e-9)

	p.Pos = origin.Add(Vec2{Y: 5})
	w.timeElapsed = 0.4
	p.fireDueCasts(w)

	require.Len(t, w.Projectiles(), 2)
	assert.Len(t, p.Pending(), 1)
	fired := w.Projectiles()[1].(*Bolt)
	assert.Equal(t, origin, fired.Pos, "delayed shot must start where the volley was cast")

	w.timeElapsed = 0.7
	p.fireDueCasts(w)
	assert.Len(t, w.Projectiles(), 3)
	assert.Empty(t, p.Pending())

	maxDev := degToRad(w.Tuning().SpreadDeg) + 1e-9
	for _, pr := range w.Projectiles() {
		b := pr.(*Bolt)
		if dev := math.Abs(angleOf(b.Dir)); dev > maxDev {
			t.Fatalf("bolt deviates %.2f rad, more than the spread", dev)
		}
	}
}

func TestPlayer_AutoTargetRespectsCooldowns(t *testing.T) {
	h := NewHeadless(WithWave(1), WithGruntAt(80.5, 45.5, false))
	w := h.World

	h.RunFor(0.5)
	assert.Zero(t, w.Events().Count("cast", AbilityMagicBolt.String()), "bolt is still on cooldown")

	h.RunFor(0.6)
	assert.Equal(t, 1, w.Events().Count("cast", AbilityMagicBolt.String()))
	assert.Zero(t, w.Events().Count("cast", AbilityElectricBurst.String()))

	h.RunFor(1.5)
	assert.Equal(t, 1, w.Events().Count("cast", AbilityElectricBurst.String()))
}

func TestChooseUpgrades_DistinctAndDeterministic(t *testing.T) {
	a := ChooseUpgrades(rand.New(rand.NewSource(42)), UpgradeChoices)
	b := ChooseUpgrades(rand.New(rand.NewSource(42)), UpgradeChoices)
	require.Equal(t, a, b, "same seed must give the same offer")
	require.Len(t, a, 3)

	seen := map[UpgradeID]int{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		offer := ChooseUpgrades(rng, UpgradeChoices)
		set := map[UpgradeID]bool{}
		for _, id := range offer {
			if set[id] {
				t.Fatalf("duplicate upgrade in offer %v", offer)
			}
			set[id] = true
			seen[id]++
		}
	}
	for _, id := range AllUpgrades {
		if seen[id] == 0 {
			t.Fatalf("upgrade %s never offered", id)
		}
	}
	assert.Len(t, ChooseUpgrades(rng, 10), len(AllUpgrades))
}

func TestApplyUpgrade_ModifiesStats(t *testing.T) {
	tn := DefaultTuning()
	p := NewPlayer(Vec2{}, tn, nil)
	p.Health = 50

	ApplyUpgrade(p, UpgradeHealth, tn)
	assert.InDelta(t, 55, p.Health, 1e-9)
	assert.InDelta(t, 110, p.MaxHealth, 1e-9)

	ApplyUpgrade(p, UpgradeAttack, tn)
	assert.InDelta(t, 1.1, p.AttackPower, 1e-9)

	ApplyUpgrade(p, UpgradeMagicBoltCount, tn)
	ApplyUpgrade(p, UpgradeBurstCount, tn)
	assert.Equal(t, 2, p.MagicBoltCount)
	assert.Equal(t, 2, p.BurstCount)

	ApplyUpgrade(p, UpgradeExplosionSize, tn)
	assert.InDelta(t, 1.2, p.ExplosionScale, 1e-9)

	assert.False(t, ApplyUpgrade(p, UpgradeID("nope"), tn))
}

func TestApplyUpgrade_CooldownFloor(t *testing.T) {
	tn := DefaultTuning()
	p := NewPlayer(Vec2{}, tn, nil)

	ApplyUpgrade(p, UpgradeCooldown, tn)
	assert.InDelta(t, 0.9, p.BoltCooldown, 1e-9)
	assert.InDelta(t, 2.25, p.BurstCooldown, 1e-9)
	assert.InDelta(t, 5.4, p.ExplosionCooldown, 1e-9)

	for i := 0; i < 20; i++ {
		ApplyUpgrade(p, UpgradeCooldown, tn)
	}
	assert.InDelta(t, 0.6, p.BaseCooldown, 1e-9)
	assert.InDelta(t, 1.5, p.BurstCooldown, 1e-9)
	assert.InDelta(t, 3.6, p.ExplosionCooldown, 1e-9)
}

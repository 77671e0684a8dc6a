package sim

import "math"

// Ability identifies one of the player's three spells.
type Ability int

const (
	AbilityMagicBolt Ability = iota
	AbilityElectricBurst
	AbilityExplosion

	abilityCount
)

func (a Ability) String() string {
	switch a {
	case AbilityMagicBolt:
		return "magic_bolt"
	case AbilityElectricBurst:
		return "electric_burst"
	case AbilityExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// PendingCast is a scheduled projectile spawn. Origin is captured when the
// volley is cast, not when the shot fires.
type PendingCast struct {
	FireTime  float64
	Origin    Vec2
	Direction Vec2
	Damage    float64
	Ability   Ability
}

// ExpThreshold is the experience needed to leave level.
func ExpThreshold(level int) float64 {
	return 100 + float64(level-1)*10
}

// Player is the mage. It is created once per session and never removed.
type Player struct {
	Pos        Vec2
	Health     float64
	MaxHealth  float64
	Mana       float64
	Speed      float64
	FacingLeft bool
	Anim       Animator

	Level     int
	Exp       float64
	ExpToNext float64

	AttackPower float64
	MagicAmp    float64

	BaseCooldown      float64
	BoltCooldown      float64
	BurstCooldown     float64
	ExplosionCooldown float64
	MagicBoltCount    int
	BurstCount        int
	ExplosionScale    float64
	PickupRadius      float64

	// Damage is the running per-ability total, for statistics.
	Damage [abilityCount]float64

	lastCast [abilityCount]float64
	pending  []PendingCast
	moved    float64 // displacement accumulated this tick, feeds the animator
	walked   float64
}

// NewPlayer places a fresh level-1 player at pos.
func NewPlayer(pos Vec2, t Tuning, frames FrameSource) *Player {
	p := &Player{
		Pos:       pos,
		Health:    t.PlayerHealth,
		MaxHealth: t.PlayerHealth,
		Mana:      t.PlayerMana,
		Speed:     t.PlayerSpeed,
		Anim: NewAnimator(countsFor(frames, "player"), AnimTiming{
			IdleInterval:     t.IdleFrameInterval,
			RunInterval:      t.RunFrameInterval,
			AttackedDuration: t.AttackedDuration,
			DeathDuration:    t.DeathDuration,
		}),
		Level:          1,
		ExpToNext:      ExpThreshold(1),
		AttackPower:    1,
		MagicAmp:       1,
		BaseCooldown:   t.BaseCooldown,
		MagicBoltCount: 1,
		BurstCount:     1,
		ExplosionScale: 1,
		PickupRadius:   t.PickupRadius,
	}
	p.deriveCooldowns(t)
	return p
}

// deriveCooldowns recomputes every ability cooldown from BaseCooldown.
func (p *Player) deriveCooldowns(t Tuning) {
	p.BoltCooldown = p.BaseCooldown
	p.BurstCooldown = p.BaseCooldown * t.BurstCooldownMul
	p.ExplosionCooldown = p.BaseCooldown * t.ExplosionCooldownMul
}

// Pending returns a copy of the delayed-cast queue.
func (p *Player) Pending() []PendingCast {
	return append([]PendingCast(nil), p.pending...)
}

// Walked is the total distance the player has moved this session.
func (p *Player) Walked() float64 { return p.walked }

// Move steps the player one tick in dir. A move that would leave the map or
// enter an unwalkable cell is dropped and the position is unchanged.
func (p *Player) Move(g *Grid, dir Direction, dt float64) bool {
	v := dir.Vec()
	if v == (Vec2{}) || dt <= 0 {
		return false
	}
	next := p.Pos.Add(v.Scale(p.Speed * dt))
	if !g.CanOccupy(next) {
		return false
	}
	if v.X < 0 {
		p.FacingLeft = true
	} else if v.X > 0 {
		p.FacingLeft = false
	}
	step := next.Dist(p.Pos)
	p.Pos = next
	p.moved += step
	p.walked += step
	return true
}

// GainExp adds experience and levels up as many times as the total allows.
// Each level-up spends the threshold active at that level. It returns the
// number of levels gained.
func (p *Player) GainExp(amount float64) int {
	p.Exp += amount
	gained := 0
	for p.Exp >= p.ExpToNext {
		p.Exp -= p.ExpToNext
		p.Level++
		p.ExpToNext = ExpThreshold(p.Level)
		gained++
	}
	return gained
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount float64) {
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
}

// update advances the animation, fires due delayed casts and, off cooldown,
// detonates an explosion around the player.
func (p *Player) update(w *World, dt float64) {
	p.Anim.Update(dt)
	p.Anim.Moved(p.moved)
	p.moved = 0

	p.fireDueCasts(w)

	if w.timeElapsed-p.lastCast[AbilityExplosion] >= p.ExplosionCooldown && w.anyLivingHostile() {
		p.lastCast[AbilityExplosion] = w.timeElapsed
		t := w.tuning
		w.spawnExplosion(NewExplosion(p.Pos, t.ExplosionRadius*p.ExplosionScale,
			t.ExplosionDamage*p.AttackPower*p.MagicAmp, w.frames.FrameCount("explosion"),
			t.ExplosionFrameInterval, t.ExplosionDamageFrame))
		w.events.Add(w.timeElapsed, "cast", AbilityExplosion.String(), "", t.ExplosionRadius*p.ExplosionScale)
	}
}

// fireDueCasts spawns every pending cast whose time has come, keeping the rest
// in order.
func (p *Player) fireDueCasts(w *World) {
	due, waiting := sweep(p.pending, func(c PendingCast) bool { return w.timeElapsed >= c.FireTime })
	p.pending = waiting
	for _, c := range due {
		w.spawnProjectile(p.newSpell(w, c.Ability, c.Origin, c.Direction, c.Damage))
	}
}

// autoTarget casts the bolt and burst volleys at the nearest living hostile
// once their cooldowns have elapsed.
func (p *Player) autoTarget(w *World) {
	target, ok := w.nearestLivingHostile(p.Pos)
	if !ok {
		return
	}
	t := w.tuning
	if w.timeElapsed-p.lastCast[AbilityMagicBolt] >= p.BoltCooldown {
		p.lastCast[AbilityMagicBolt] = w.timeElapsed
		p.castVolley(w, AbilityMagicBolt, p.MagicBoltCount, target, t.BoltDamage*p.AttackPower*p.MagicAmp)
	}
	if w.timeElapsed-p.lastCast[AbilityElectricBurst] >= p.BurstCooldown {
		p.lastCast[AbilityElectricBurst] = w.timeElapsed
		p.castVolley(w, AbilityElectricBurst, p.BurstCount, target, t.BurstDamage*p.AttackPower*p.MagicAmp)
	}
}

// castVolley fires shot 0 now and queues shots 1..n-1 at i*stagger seconds.
// Every shot gets its own random deviation within the spread.
func (p *Player) castVolley(w *World, ab Ability, n int, target Vec2, damage float64) {
	aim := target.Sub(p.Pos).Normalize()
	if aim == (Vec2{}) {
		aim = Vec2{X: 1}
		if p.FacingLeft {
			aim.X = -1
		}
	}
	origin := p.Pos
	spread := degToRad(w.tuning.SpreadDeg)
	for i := 0; i < n; i++ {
		dir := aim.Rotate((w.rng.Float64()*2 - 1) * spread)
		if i == 0 {
			w.spawnProjectile(p.newSpell(w, ab, origin, dir, damage))
			continue
		}
		p.pending = append(p.pending, PendingCast{
			FireTime:  w.timeElapsed + float64(i)*w.tuning.CastStagger,
			Origin:    origin,
			Direction: dir,
			Damage:    damage,
			Ability:   ab,
		})
	}
	w.events.Add(w.timeElapsed, "cast", ab.String(), "", float64(n))
}

func (p *Player) newSpell(w *World, ab Ability, origin, dir Vec2, damage float64) Projectile {
	t := w.tuning
	if ab == AbilityElectricBurst {
		frames := w.frames.FrameCount("electric_burst")
		return NewBurst(origin, dir, t.BurstSpeed, damage, t.BurstRadius, t.BurstPulseInterval,
			math.Max(t.BurstMinLifetime, float64(frames)*t.RunFrameInterval), frames)
	}
	return NewBolt(origin, dir, t.BoltSpeed, damage, t.BoltLifetime, t.HitRadius)
}

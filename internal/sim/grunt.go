package sim

// Grunt is the ground enemy. It paths toward the player every tick and
// either strikes in melee or, with the ranged profile, lobs an enemy bolt.
type Grunt struct {
	Actor
}

// NewGrunt builds a grunt for the given wave. Health scales with the wave number.
func NewGrunt(w *World, id int, pos Vec2, ranged bool) *Grunt {
	t := w.tuning
	hp := t.GruntHealth * (1 + t.GruntHealthPerWave*float64(max(w.wave-1, 0)))
	prefix := "grunt"
	damage := t.GruntMeleeDamage
	if ranged {
		prefix = "caster"
		damage = t.GruntBoltDamage
	}
	return &Grunt{Actor: Actor{
		ID:             id,
		Pos:            pos,
		Health:         hp,
		MaxHealth:      hp,
		Speed:          t.GruntSpeed,
		Anim:           NewAnimator(countsFor(w.frames, prefix), gruntTiming(t)),
		AttackRange:    t.GruntAttackRange,
		AttackInterval: t.GruntAttackInterval,
		AttackDamage:   damage,
		Ranged:         ranged,
		SpawnedAt:      w.timeElapsed,
	}}
}

func gruntTiming(t Tuning) AnimTiming {
	return AnimTiming{
		IdleInterval:      t.IdleFrameInterval,
		RunInterval:       t.RunFrameInterval,
		AttackedDuration:  t.AttackedDuration,
		AttackingDuration: t.AttackingDuration,
		DeathDuration:     t.DeathDuration,
	}
}

func (g *Grunt) Body() *Actor { return &g.Actor }

func (g *Grunt) Kind() EntityKind {
	if g.Ranged {
		return KindCaster
	}
	return KindGrunt
}

// Update runs one tick of movement, attack and animation.
func (g *Grunt) Update(w *World, dt float64) {
	stepActor(w, &g.Actor, dt, func() float64 { return g.move(w, dt) }, func() { g.release(w) })
}

// move paths toward the player's current cell and takes the first step.
// Inside the melee lock radius it holds still without querying the pathfinder.
func (g *Grunt) move(w *World, dt float64) float64 {
	p := w.player
	if !g.Active {
		if g.Pos.Dist(p.Pos) <= w.activationRadius() || w.timeElapsed-g.SpawnedAt >= w.tuning.ActivationDelay {
			g.Active = true
		} else {
			return 0
		}
	}
	if g.Pos.Dist(p.Pos) <= w.tuning.MeleeLockRadius {
		return 0
	}
	path := w.paths.FindPath(g.Pos.Cell(), p.Pos.Cell())
	if len(path) < 2 {
		return 0
	}
	dir := path[1].Center().Sub(g.Pos).Normalize()
	return moveActor(w.grid, &g.Actor, dir, dt)
}

// release lands the wound-up attack: a melee hit if the player is still in
// reach, or one enemy bolt for the ranged profile.
func (g *Grunt) release(w *World) {
	p := w.player
	if g.Ranged {
		if !g.PendingShot {
			return
		}
		dir := p.Pos.Sub(g.Pos).Normalize()
		w.spawnProjectile(NewHostileBolt(KindEnemyBolt, g.Pos, dir, w.tuning.GruntBoltSpeed, g.AttackDamage))
		return
	}
	if g.Pos.Dist(p.Pos) <= g.AttackRange {
		w.hurtPlayer(g.AttackDamage, g.Kind())
	}
}

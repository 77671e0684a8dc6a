package sim

// Boss is the periodic heavy enemy. It ignores the pathfinder and chases the
// player in a straight line, then fires a three-way spread of boss bolts.
type Boss struct {
	Actor
	SpreadDeg float64
	BoltSpeed float64
}

// NewBoss builds the boss. Its MaxHealth is the single source for health bars.
func NewBoss(w *World, id int, pos Vec2) *Boss {
	t := w.tuning
	return &Boss{
		Actor: Actor{
			ID:        id,
			Pos:       pos,
			Health:    t.BossHealth,
			MaxHealth: t.BossHealth,
			Speed:     t.BossSpeed,
			Anim: NewAnimator(countsFor(w.frames, "boss"), AnimTiming{
				IdleInterval:      t.IdleFrameInterval,
				RunInterval:       t.RunFrameInterval,
				AttackedDuration:  t.AttackedDuration,
				AttackingDuration: t.BossAttackingDuration,
				DeathDuration:     t.BossDeathDuration,
			}),
			AttackRange:    t.BossAttackRange,
			AttackInterval: t.BossAttackInterval,
			AttackDamage:   t.BossBoltDamage,
			Ranged:         true,
			SpawnedAt:      w.timeElapsed,
			Active:         true,
		},
		SpreadDeg: t.BossBoltSpreadDeg,
		BoltSpeed: t.BossBoltSpeed,
	}
}

func (b *Boss) Body() *Actor     { return &b.Actor }
func (b *Boss) Kind() EntityKind { return KindBoss }

func (b *Boss) Update(w *World, dt float64) {
	stepActor(w, &b.Actor, dt, func() float64 { return b.move(w, dt) }, func() { b.release(w) })
}

func (b *Boss) move(w *World, dt float64) float64 {
	delta := w.player.Pos.Sub(b.Pos)
	if delta.Len() <= w.tuning.MeleeLockRadius {
		return 0
	}
	return moveActor(w.grid, &b.Actor, delta.Normalize(), dt)
}

func (b *Boss) release(w *World) {
	if !b.PendingShot {
		return
	}
	aim := w.player.Pos.Sub(b.Pos).Normalize()
	if aim == (Vec2{}) {
		aim = Vec2{X: 1}
	}
	for _, deg := range []float64{-b.SpreadDeg, 0, b.SpreadDeg} {
		w.spawnProjectile(NewHostileBolt(KindBossBolt, b.Pos, aim.Rotate(degToRad(deg)), b.BoltSpeed, b.AttackDamage))
	}
}

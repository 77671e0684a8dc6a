package sim

// Hostile is the capability set shared by every enemy variant. Grunt and Boss
// implement it; the world drives both through this contract and never
// inspects the concrete type except for rewards and rendering.
type Hostile interface {
	Body() *Actor
	Update(w *World, dt float64)
	Kind() EntityKind
}

// Actor is the state every hostile carries. Variants embed behaviour around
// it instead of inheriting from it.
type Actor struct {
	ID         int
	Pos        Vec2
	Health     float64
	MaxHealth  float64
	Speed      float64
	Anim       Animator
	FacingLeft bool

	AttackRange    float64
	AttackInterval float64
	AttackDamage   float64
	LastAttack     float64
	Ranged         bool
	PendingShot    bool // a ranged attack is wound up and fires on release

	SpawnedAt float64
	Active    bool // has noticed the player
	dead      bool
}

// IsDead reports whether the actor has died. It flips exactly once.
func (a *Actor) IsDead() bool { return a.dead }

// Alive is the targeting predicate: dead actors are never targeted or hit.
func (a *Actor) Alive() bool { return !a.dead }

// TakeDamage subtracts amount without clamping and returns true only on the
// call that kills the actor. Further damage keeps subtracting but never
// re-triggers death.
func (a *Actor) TakeDamage(amount float64) bool {
	a.Health -= amount
	if a.Health <= 0 {
		if a.Anim.Die() {
			a.dead = true
			a.PendingShot = false
			return true
		}
		return false
	}
	a.Anim.Hurt()
	a.PendingShot = false
	return false
}

// Removable reports whether the death animation has finished.
func (a *Actor) Removable() bool { return a.dead && a.Anim.DeathFinished() }

// HealthFraction is health/max clamped to [0,1], for health bars.
func (a *Actor) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	f := a.Health / a.MaxHealth
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// moveActor steps a along dir at its speed. Moves that leave the map or land
// on an unwalkable cell are rejected and the actor stays put. It returns the
// distance actually moved.
func moveActor(g *Grid, a *Actor, dir Vec2, dt float64) float64 {
	if dir == (Vec2{}) || dt <= 0 {
		return 0
	}
	step := dir.Scale(a.Speed * dt)
	next := a.Pos.Add(step)
	if !g.CanOccupy(next) {
		return 0
	}
	a.Pos = next
	// Facing follows the horizontal delta only.
	if step.X < 0 {
		a.FacingLeft = true
	} else if step.X > 0 {
		a.FacingLeft = false
	}
	return step.Len()
}

// stepActor is the per-tick routine every hostile variant shares: advance the
// animation, release a wound-up attack, then move and start new attacks while
// unlocked. move and release carry the per-variant behaviour.
func stepActor(w *World, a *Actor, dt float64, move func() float64, release func()) {
	if a.dead {
		a.Anim.Update(dt)
		return
	}
	if a.Anim.Update(dt) == AnimEventAttackRelease {
		release()
		a.PendingShot = false
	}
	if a.Anim.Locked() {
		return
	}

	a.Anim.Moved(move())

	p := w.player
	if a.Pos.Dist(p.Pos) <= a.AttackRange && w.timeElapsed-a.LastAttack >= a.AttackInterval {
		if a.Anim.BeginAttack() {
			a.LastAttack = w.timeElapsed
			a.PendingShot = a.Ranged
		}
	}
}

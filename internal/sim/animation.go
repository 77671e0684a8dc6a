package sim

// AnimState is the behaviour/animation state shared by every animated actor.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
	AnimAttacked
	AnimAttacking
	AnimDead

	animStateCount
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRunning:
		return "running"
	case AnimAttacked:
		return "attacked"
	case AnimAttacking:
		return "attacking"
	case AnimDead:
		return "dead"
	default:
		return "unknown"
	}
}

// AllAnimStates lists the states in declaration order.
var AllAnimStates = [animStateCount]AnimState{AnimIdle, AnimRunning, AnimAttacked, AnimAttacking, AnimDead}

// moveEpsilon is the per-tick displacement below which an actor counts as standing still.
const moveEpsilon = 1e-3

// AnimEvent is what an Animator reports after a frame advance.
type AnimEvent int

const (
	AnimEventNone          AnimEvent = iota
	AnimEventHurtOver                // attacked lock elapsed, back to idle
	AnimEventAttackRelease           // attacking lock elapsed; fire the attack now
	AnimEventDeathOver               // death animation has played to completion
)

// AnimTiming holds the per-state frame intervals and lock durations.
// Timed states advance frames from their duration, not from a frame interval,
// so the on-screen animation and the gameplay lock stay independent of the
// frame count.
type AnimTiming struct {
	IdleInterval      float64
	RunInterval       float64
	AttackedDuration  float64
	AttackingDuration float64
	DeathDuration     float64
}

// FrameSource reports how many frames a logical animation has. The simulation
// only needs counts and ordering, never pixel data.
type FrameSource interface {
	FrameCount(name string) int
}

// FrameCounts is a static FrameSource, handy for tests and headless runs.
type FrameCounts map[string]int

// FrameCount returns the registered count, or zero when unknown.
func (fc FrameCounts) FrameCount(name string) int { return fc[name] }

// AnimName is the logical asset name of one actor's state animation, e.g. "grunt_running".
func AnimName(prefix string, s AnimState) string {
	return prefix + "_" + s.String()
}

// countsFor collects the per-state frame counts for an actor prefix.
// Unknown or empty animations count as a single frame.
func countsFor(src FrameSource, prefix string) [animStateCount]int {
	var out [animStateCount]int
	for _, s := range AllAnimStates {
		n := 0
		if src != nil {
			n = src.FrameCount(AnimName(prefix, s))
		}
		if n < 1 {
			n = 1
		}
		out[s] = n
	}
	return out
}

// Animator is the per-actor state machine.
type Animator struct {
	state      AnimState
	frame      int
	frameTimer float64
	stateTime  float64
	counts     [animStateCount]int
	timing     AnimTiming
	deathDone  bool
}

// NewAnimator starts in AnimIdle.
func NewAnimator(counts [animStateCount]int, timing AnimTiming) Animator {
	return Animator{state: AnimIdle, counts: counts, timing: timing}
}

func (a *Animator) State() AnimState { return a.state }
func (a *Animator) Frame() int       { return a.frame }

// StateTime is the time spent in the current state.
func (a *Animator) StateTime() float64 { return a.stateTime }

// FrameCount returns the frame count of state s.
func (a *Animator) FrameCount(s AnimState) int { return a.counts[s] }

// Locked reports whether movement and new attacks are suppressed.
func (a *Animator) Locked() bool {
	return a.state == AnimAttacked || a.state == AnimAttacking || a.state == AnimDead
}

// Dead reports whether the terminal state has been entered.
func (a *Animator) Dead() bool { return a.state == AnimDead }

// DeathFinished reports whether the death animation has played to completion.
func (a *Animator) DeathFinished() bool { return a.deathDone }

func (a *Animator) enter(s AnimState) {
	a.state = s
	a.frame = 0
	a.frameTimer = 0
	a.stateTime = 0
}

// Hurt switches to AnimAttacked unless dead. Re-hurting restarts the lock.
func (a *Animator) Hurt() {
	if a.state == AnimDead {
		return
	}
	a.enter(AnimAttacked)
}

// BeginAttack switches idle/running to AnimAttacking. It returns false when
// the actor is locked or dead.
func (a *Animator) BeginAttack() bool {
	if a.state != AnimIdle && a.state != AnimRunning {
		return false
	}
	a.enter(AnimAttacking)
	return true
}

// Die enters AnimDead. Only the first call returns true.
func (a *Animator) Die() bool {
	if a.state == AnimDead {
		return false
	}
	a.enter(AnimDead)
	if a.timing.DeathDuration <= 0 {
		a.deathDone = true
	}
	return true
}

// Moved records this tick's displacement for the idle/running transition.
func (a *Animator) Moved(dist float64) {
	switch a.state {
	case AnimIdle:
		if dist > moveEpsilon {
			a.enter(AnimRunning)
		}
	case AnimRunning:
		if dist <= moveEpsilon {
			a.enter(AnimIdle)
		}
	}
}

// Update advances frames and timers by dt and reports any lock expiry.
func (a *Animator) Update(dt float64) AnimEvent {
	a.stateTime += dt
	switch a.state {
	case AnimIdle, AnimRunning:
		interval := a.timing.IdleInterval
		if a.state == AnimRunning {
			interval = a.timing.RunInterval
		}
		if interval <= 0 {
			return AnimEventNone
		}
		a.frameTimer += dt
		for a.frameTimer >= interval {
			a.frameTimer -= interval
			a.frame = (a.frame + 1) % a.counts[a.state]
		}
		return AnimEventNone

	case AnimAttacked:
		if a.timedFrame(a.timing.AttackedDuration) {
			a.enter(AnimIdle)
			return AnimEventHurtOver
		}
	case AnimAttacking:
		if a.timedFrame(a.timing.AttackingDuration) {
			a.enter(AnimIdle)
			return AnimEventAttackRelease
		}
	case AnimDead:
		if a.deathDone {
			return AnimEventNone
		}
		if a.timedFrame(a.timing.DeathDuration) {
			a.deathDone = true
			return AnimEventDeathOver
		}
	}
	return AnimEventNone
}

// timedFrame sets the frame from elapsed/duration and reports whether the
// duration has run out. The last frame holds once reached.
func (a *Animator) timedFrame(duration float64) bool {
	n := a.counts[a.state]
	if duration <= 0 {
		a.frame = n - 1
		return true
	}
	f := int(a.stateTime / duration * float64(n))
	if f > n-1 {
		f = n - 1
	}
	a.frame = f
	return a.stateTime >= duration
}

package sim

import "math"

// Headless drives a World without a window: fixed timestep, deterministic
// seed and an optional autopilot standing in for the keyboard. Tests and
// cmd/headless-report use it.
type Headless struct {
	World     *World
	DT        float64
	Autopilot bool

	worldOpts []Option
	tick      int
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra  harnessOptionKind = iota // world options, timestep: applied before the world exists
	harnessOptEntity                          // player and hostile placement: applied to the built world
)

// HarnessOption is a builder function applied to a Headless during construction.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*Headless)
}

// WithWorld forwards world options (seed, tuning, walls, sinks).
func WithWorld(opts ...Option) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Headless) {
		h.worldOpts = append(h.worldOpts, opts...)
	}}
}

// WithTimestep sets the fixed dt of every tick.
func WithTimestep(dt float64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Headless) { h.DT = dt }}
}

// WithAutopilot makes the harness steer the player and pick upgrades.
func WithAutopilot() HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Headless) { h.Autopilot = true }}
}

// WithStart spawns the opening wave as a real session would.
func WithStart() HarnessOption {
	return HarnessOption{harnessOptEntity, func(h *Headless) { h.World.Start() }}
}

// WithWave sets the wave counter without spawning anything.
func WithWave(n int) HarnessOption {
	return HarnessOption{harnessOptEntity, func(h *Headless) { h.World.wave = n }}
}

// WithPlayerAt moves the player to (x,y).
func WithPlayerAt(x, y float64) HarnessOption {
	return HarnessOption{harnessOptEntity, func(h *Headless) { h.World.player.Pos = Vec2{X: x, Y: y} }}
}

// WithGruntAt adds a grunt at (x,y), already activated.
func WithGruntAt(x, y float64, ranged bool) HarnessOption {
	return HarnessOption{harnessOptEntity, func(h *Headless) {
		w := h.World
		g := NewGrunt(w, w.newID(), Vec2{X: x, Y: y}, ranged)
		g.Active = true
		w.addHostile(g)
	}}
}

// WithBossAt adds the boss at (x,y) and suppresses the timed boss spawn.
func WithBossAt(x, y float64) HarnessOption {
	return HarnessOption{harnessOptEntity, func(h *Headless) {
		w := h.World
		w.addHostile(NewBoss(w, w.newID(), Vec2{X: x, Y: y}))
		w.bossSpawned = true
	}}
}

// NewHeadless builds the harness in two ordered passes:
//  1. Infrastructure (world options, timestep, autopilot), then the world is built
//  2. Entities (start, wave, placements)
func NewHeadless(opts ...HarnessOption) *Headless {
	h := &Headless{DT: 1.0 / 60}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(h)
		}
	}
	h.World = NewWorld(h.worldOpts...)
	for _, o := range opts {
		if o.kind == harnessOptEntity {
			o.fn(h)
		}
	}
	return h
}

// CurrentTick returns how many ticks have been run.
func (h *Headless) CurrentTick() int { return h.tick }

// RunTicks advances the world n ticks.
func (h *Headless) RunTicks(n int) {
	for i := 0; i < n; i++ {
		h.step()
	}
}

// RunFor advances the world by roughly seconds of simulated time.
func (h *Headless) RunFor(seconds float64) {
	h.RunTicks(int(math.Ceil(seconds / h.DT)))
}

// RunUntil advances up to maxTicks, stopping early once predicate holds.
// Returns the tick at which the predicate was satisfied, or -1.
func (h *Headless) RunUntil(predicate func(*Headless) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		h.step()
		if predicate(h) {
			return h.tick
		}
	}
	return -1
}

// Finished reports whether the session has ended either way.
func (h *Headless) Finished() bool { return h.World.gameOver || h.World.gameWon }

func (h *Headless) step() {
	h.tick++
	var intents []Intent
	if h.Autopilot {
		intents = h.pilot()
	}
	h.World.Step(h.DT, intents...)
}

// pilot picks the first upgrade on offer. Otherwise it keeps hostiles just
// outside melee reach: inside that ring it kites away from the nearest one,
// outside it walks to the nearest dropped item or waits for them to close in.
// Blocked moves slide along the minor axis.
func (h *Headless) pilot() []Intent {
	w := h.World
	if len(w.choices) > 0 {
		return []Intent{SelectIntent(0)}
	}
	if w.Halted() {
		return nil
	}
	p := w.player
	var want Vec2
	threat, ok := w.nearestLivingHostile(p.Pos)
	switch {
	case ok && threat.Dist(p.Pos) < w.tuning.MeleeLockRadius+pilotMargin:
		want = p.Pos.Sub(threat)
	default:
		item, found := w.nearestItem(p.Pos)
		if !found {
			return nil
		}
		want = item.Sub(p.Pos)
	}
	primary, secondary := axisDirs(want)
	step := p.Speed * h.DT
	if w.grid.CanOccupy(p.Pos.Add(primary.Vec().Scale(step))) {
		return []Intent{MoveIntent(primary)}
	}
	if w.grid.CanOccupy(p.Pos.Add(secondary.Vec().Scale(step))) {
		return []Intent{MoveIntent(secondary)}
	}
	return nil
}

// pilotMargin is how far outside the melee lock the autopilot keeps hostiles.
const pilotMargin = 1.5

// axisDirs splits v into its dominant and minor axis directions.
func axisDirs(v Vec2) (Direction, Direction) {
	horiz := DirRight
	if v.X < 0 {
		horiz = DirLeft
	}
	vert := DirDown
	if v.Y < 0 {
		vert = DirUp
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		return horiz, vert
	}
	return vert, horiz
}

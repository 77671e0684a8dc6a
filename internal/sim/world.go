package sim

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pmx-16/arcane-conquest/internal/stats"
)

// StatsSink receives the one summary record emitted when a session ends.
type StatsSink interface {
	LogStats(stats.Summary) error
}

// World is the whole simulation: the map, every live entity and the
// wave/level progression. It is single-threaded; callers drive it with Step
// or Update from one goroutine.
type World struct {
	tuning  Tuning
	grid    *Grid
	paths   *Pathfinder
	rng     *rand.Rand
	log     *logrus.Entry
	frames  FrameSource
	events  *EventLog
	sink    StatsSink
	camera  *Camera
	session func() string

	gridOpts []GridOption
	camCfg   *cameraConfig

	player      *Player
	enemies     []Hostile
	bosses      []Hostile
	projectiles []Projectile
	explosions  []*Explosion
	items       []*Item

	timeElapsed     float64
	score           int
	wave            int
	waveKills       int
	enemiesDefeated int
	bossesDefeated  int
	itemsCollected  int
	damageDealt     float64
	bossSpawned     bool
	spawnStalled    bool // the last spawn found no free cell
	nextID          int

	paused          bool
	pendingLevelUps int
	choices         []UpgradeID
	gameOver        bool
	gameWon         bool
	sessionID       string
	summary         *stats.Summary
}

type cameraConfig struct {
	viewW, viewH int
	tileSize     float64
	fovRadius    int
}

// Option configures a World before its grid is built.
type Option func(*World)

// WithSeed makes every random decision reproducible.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithLogger routes world logging to e.
func WithLogger(e *logrus.Entry) Option {
	return func(w *World) {
		if e != nil {
			w.log = e
		}
	}
}

// WithFrames sets the animation frame counts, normally the asset loader.
func WithFrames(src FrameSource) Option {
	return func(w *World) {
		if src != nil {
			w.frames = src
		}
	}
}

// WithStatsSink receives the end-of-session summary.
func WithStatsSink(s StatsSink) Option {
	return func(w *World) { w.sink = s }
}

// WithGridOptions adds obstacles to the map.
func WithGridOptions(opts ...GridOption) Option {
	return func(w *World) { w.gridOpts = append(w.gridOpts, opts...) }
}

// WithTuning replaces the default balance.
func WithTuning(t Tuning) Option {
	return func(w *World) { w.tuning = t }
}

// WithSessionIDs overrides how session ids are generated.
func WithSessionIDs(next func() string) Option {
	return func(w *World) {
		if next != nil {
			w.session = next
		}
	}
}

// WithCamera attaches a camera of viewW x viewH cells with the given FOV radius.
func WithCamera(viewW, viewH int, tileSize float64, fovRadius int) Option {
	return func(w *World) {
		w.camCfg = &cameraConfig{viewW: viewW, viewH: viewH, tileSize: tileSize, fovRadius: fovRadius}
	}
}

// NewWorld builds the map and a fresh player at its centre. Call Start to
// spawn the first wave.
func NewWorld(opts ...Option) *World {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	w := &World{
		tuning:  DefaultTuning(),
		rng:     rand.New(rand.NewSource(1)), // #nosec G404 -- deterministic default
		log:     logrus.NewEntry(quiet),
		frames:  DefaultFrameCounts(),
		events:  NewEventLog(),
		session: uuid.NewString,
	}
	for _, o := range opts {
		o(w)
	}
	w.grid = NewGrid(w.tuning.MapWidth, w.tuning.MapHeight, w.gridOpts...)
	w.paths = NewPathfinder(w.grid)
	if w.camCfg != nil {
		w.camera = NewCamera(w.grid, w.camCfg.viewW, w.camCfg.viewH, w.camCfg.tileSize, w.camCfg.fovRadius)
	}
	w.resetState()
	return w
}

// resetState clears every entity set and counter and places a new player.
func (w *World) resetState() {
	w.events.Reset()
	w.player = NewPlayer(w.playerStart(), w.tuning, w.frames)
	w.enemies = nil
	w.bosses = nil
	w.projectiles = nil
	w.explosions = nil
	w.items = nil
	w.timeElapsed = 0
	w.score = 0
	w.wave = 0
	w.waveKills = 0
	w.enemiesDefeated = 0
	w.bossesDefeated = 0
	w.itemsCollected = 0
	w.damageDealt = 0
	w.bossSpawned = false
	w.spawnStalled = false
	w.paused = false
	w.pendingLevelUps = 0
	w.choices = nil
	w.gameOver = false
	w.gameWon = false
	w.summary = nil
	w.sessionID = w.session()
	if w.camera != nil {
		w.camera.Follow(w.player.Pos, w.grid)
	}
}

// playerStart is the walkable cell centre closest to the middle of the map.
func (w *World) playerStart() Vec2 {
	mid := Cell{X: w.grid.Width() / 2, Y: w.grid.Height() / 2}
	best, bestD := mid.Center(), math.Inf(1)
	for y := 0; y < w.grid.Height(); y++ {
		for x := 0; x < w.grid.Width(); x++ {
			if !w.grid.IsWalkable(x, y) {
				continue
			}
			dx, dy := float64(x-mid.X), float64(y-mid.Y)
			if d := dx*dx + dy*dy; d < bestD {
				best, bestD = Cell{X: x, Y: y}.Center(), d
				if d == 0 {
					return best
				}
			}
		}
	}
	return best
}

// Start begins a session: wave 1 with the initial wave size.
func (w *World) Start() {
	w.wave = 1
	w.spawnEnemies(w.tuning.InitialWave)
	w.log.WithField("session", w.sessionID).Info("session started")
	w.events.Add(w.timeElapsed, "game", "start", w.sessionID, 0)
}

// Reset discards the current session and starts a new one.
func (w *World) Reset() {
	w.resetState()
	w.Start()
}

// Halted reports whether ticks are currently short-circuited.
func (w *World) Halted() bool {
	return w.paused || len(w.choices) > 0 || w.gameOver || w.gameWon
}

// Apply handles one non-movement intent. Movement intents go through Step.
func (w *World) Apply(in Intent) {
	switch in.Kind {
	case IntentPauseToggle:
		if w.gameOver || w.gameWon || len(w.choices) > 0 {
			return
		}
		w.paused = !w.paused
	case IntentSelectUpgrade:
		w.SelectUpgrade(in.Index)
	case IntentRetry:
		if w.gameOver || w.gameWon {
			w.Reset()
		}
	}
}

// Step applies one tick of input and then advances the simulation by dt.
// Nothing moves while the world is halted.
func (w *World) Step(dt float64, intents ...Intent) {
	var moves []Direction
	for _, in := range intents {
		if in.Kind == IntentMove {
			moves = append(moves, in.Dir)
			continue
		}
		w.Apply(in)
	}
	if w.Halted() {
		return
	}
	for _, d := range moves {
		w.player.Move(w.grid, d, dt)
	}
	w.Update(dt)
}

// Update advances the simulation by dt in a fixed order. Pause, upgrade
// choice, game over and victory skip the whole tick.
func (w *World) Update(dt float64) {
	if w.Halted() {
		return
	}
	w.timeElapsed += dt

	if w.player.Health <= 0 {
		w.endGame(false)
		return
	}

	if w.camera != nil {
		w.camera.Follow(w.player.Pos, w.grid)
	}

	w.player.update(w, dt)
	w.updateItems(dt)

	if len(w.enemies) == 0 && len(w.bosses) == 0 {
		// A wave only counts once something spawned into it.
		w.wave++
		if w.spawnEnemies(w.wave+w.tuning.WaveBonus) > 0 {
			w.waveKills = 0
		} else {
			w.wave--
		}
	}
	if !w.bossSpawned && len(w.bosses) == 0 && w.timeElapsed >= w.tuning.BossSpawnTime {
		w.spawnBoss()
	}

	w.player.autoTarget(w)

	w.updateEnemies(dt)
	w.updateProjectiles(dt)
	w.updateExplosions(dt)
	w.updateBosses(dt)

	if w.timeElapsed >= w.tuning.WinTime {
		w.endGame(true)
	}
}

func (w *World) updateItems(dt float64) {
	p := w.player
	collected, kept := sweep(w.items, func(it *Item) bool {
		return it.Pos.Dist(p.Pos) < w.tuning.CollectRadius
	})
	w.items = kept
	for _, it := range collected {
		w.collect(it)
	}
	for _, it := range w.items {
		if it.Pos.Dist(p.Pos) <= p.PickupRadius {
			it.step(p.Pos, dt)
		}
	}
}

func (w *World) collect(it *Item) {
	switch it.Kind {
	case ItemExpOrb:
		w.grantExp(it.Value)
	case ItemHeal:
		w.player.Heal(it.Value)
		w.itemsCollected++
	case ItemScore:
		w.score += int(it.Value)
		w.itemsCollected++
	}
	w.events.Add(w.timeElapsed, "item", it.Kind.String(), "", it.Value)
}

// grantExp adds experience and queues one upgrade choice per level gained.
func (w *World) grantExp(amount float64) {
	gained := w.player.GainExp(amount)
	if gained == 0 {
		return
	}
	w.pendingLevelUps += gained
	w.log.WithFields(logrus.Fields{"level": w.player.Level, "gained": gained}).Info("level up")
	w.events.Add(w.timeElapsed, "level", "up", "", float64(w.player.Level))
	if len(w.choices) == 0 {
		w.choices = ChooseUpgrades(w.rng, UpgradeChoices)
	}
}

// SelectUpgrade applies choice i of the current offer. Out-of-range indices
// are ignored and the world stays paused. It reports whether a choice was applied.
func (w *World) SelectUpgrade(i int) bool {
	if i < 0 || i >= len(w.choices) {
		return false
	}
	id := w.choices[i]
	ApplyUpgrade(w.player, id, w.tuning)
	w.pendingLevelUps--
	w.events.Add(w.timeElapsed, "upgrade", string(id), "", float64(w.player.Level))
	w.log.WithField("upgrade", id).Debug("upgrade applied")
	if w.pendingLevelUps > 0 {
		w.choices = ChooseUpgrades(w.rng, UpgradeChoices)
		return true
	}
	w.pendingLevelUps = 0
	w.choices = nil
	return true
}

func (w *World) updateEnemies(dt float64) {
	for _, h := range w.enemies {
		h.Update(w, dt)
	}
	removed, kept := sweep(w.enemies, func(h Hostile) bool { return h.Body().Removable() })
	w.enemies = kept
	t := w.tuning
	for _, h := range removed {
		a := h.Body()
		w.score += t.GruntScore
		w.waveKills++
		w.enemiesDefeated++
		w.dropLoot(a.Pos, t.GruntExp, t.GruntDropChance)
	}
}

func (w *World) updateBosses(dt float64) {
	for _, h := range w.bosses {
		h.Update(w, dt)
	}
	removed, kept := sweep(w.bosses, func(h Hostile) bool { return h.Body().Removable() })
	w.bosses = kept
	t := w.tuning
	for _, h := range removed {
		a := h.Body()
		w.score += t.BossScore
		w.bossesDefeated++
		w.dropLoot(a.Pos, t.BossExp, t.BossDropChance)
		w.log.WithFields(logrus.Fields{"id": a.ID, "t": w.timeElapsed}).Info("boss defeated")
		w.events.Add(w.timeElapsed, "boss", "defeated", "", float64(t.BossScore))
	}
}

// updateProjectiles walks a snapshot of the live set; projectiles spawned
// meanwhile join the set and first move next tick.
func (w *World) updateProjectiles(dt float64) {
	snapshot := w.projectiles[:len(w.projectiles):len(w.projectiles)]
	for _, pr := range snapshot {
		pr.Update(w, dt)
	}
	_, w.projectiles = sweep(w.projectiles, func(pr Projectile) bool { return !pr.Active() })
}

func (w *World) updateExplosions(dt float64) {
	for _, e := range w.explosions {
		e.Update(w, dt)
	}
	_, w.explosions = sweep(w.explosions, func(e *Explosion) bool { return !e.Active() })
}

func (w *World) spawnProjectile(p Projectile) { w.projectiles = append(w.projectiles, p) }
func (w *World) spawnExplosion(e *Explosion)  { w.explosions = append(w.explosions, e) }

// damageHostile applies one hit and records it. Dead hostiles are skipped.
func (w *World) damageHostile(h Hostile, amount float64, ab Ability) {
	a := h.Body()
	if a.IsDead() {
		return
	}
	a.Active = true
	killed := a.TakeDamage(amount)
	w.recordDamage(ab, amount)
	w.events.Add(w.timeElapsed, "damage", ab.String(), h.Kind().String(), amount)
	if killed {
		w.events.Add(w.timeElapsed, "kill", h.Kind().String(), fmt.Sprintf("id=%d", a.ID), float64(a.ID))
	}
}

func (w *World) recordDamage(ab Ability, amount float64) {
	w.player.Damage[ab] += amount
	w.damageDealt += amount
}

// hurtPlayer applies damage from a hostile source. Death is noticed at the
// start of the next tick.
func (w *World) hurtPlayer(amount float64, src EntityKind) {
	p := w.player
	if p.Health <= 0 {
		return
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Anim.Die()
	} else {
		p.Anim.Hurt()
	}
	w.events.Add(w.timeElapsed, "player", "hit", src.String(), amount)
}

// livingHostiles returns every targetable enemy and boss.
func (w *World) livingHostiles() []Hostile {
	out := make([]Hostile, 0, len(w.enemies)+len(w.bosses))
	for _, h := range w.enemies {
		if h.Body().Alive() {
			out = append(out, h)
		}
	}
	for _, h := range w.bosses {
		if h.Body().Alive() {
			out = append(out, h)
		}
	}
	return out
}

func (w *World) anyLivingHostile() bool {
	for _, h := range w.enemies {
		if h.Body().Alive() {
			return true
		}
	}
	for _, h := range w.bosses {
		if h.Body().Alive() {
			return true
		}
	}
	return false
}

// nearestLivingHostile returns the position of the closest living enemy or boss.
func (w *World) nearestLivingHostile(from Vec2) (Vec2, bool) {
	var best Vec2
	bestD := math.Inf(1)
	found := false
	for _, h := range w.livingHostiles() {
		if d := h.Body().Pos.DistSq(from); d < bestD {
			best, bestD, found = h.Body().Pos, d, true
		}
	}
	return best, found
}

// nearestItem is the position of the closest dropped item.
func (w *World) nearestItem(from Vec2) (Vec2, bool) {
	best, bestD := Vec2{}, math.Inf(1)
	for _, it := range w.items {
		if d := it.Pos.DistSq(from); d < bestD {
			best, bestD = it.Pos, d
		}
	}
	return best, len(w.items) > 0
}

func (w *World) activationRadius() float64 {
	if w.camera != nil {
		if r := w.camera.ActivationRadius(); r > 0 {
			return r
		}
	}
	return w.tuning.ActivationRadius
}

// endGame freezes the world and emits the summary once.
func (w *World) endGame(won bool) {
	if won {
		w.gameWon = true
	} else {
		w.gameOver = true
	}
	if w.summary != nil {
		return
	}
	s := w.Summary()
	w.summary = &s
	outcome := "defeat"
	if won {
		outcome = "victory"
	}
	w.events.Add(w.timeElapsed, "game", outcome, w.sessionID, float64(w.score))
	w.log.WithFields(logrus.Fields{
		"session": w.sessionID,
		"outcome": outcome,
		"time":    w.timeElapsed,
		"score":   w.score,
		"wave":    w.wave,
		"level":   w.player.Level,
	}).Info("session ended")
	if w.sink == nil {
		return
	}
	if err := w.sink.LogStats(s); err != nil {
		w.log.WithError(err).Error("failed to record session statistics")
	}
}

// Summary snapshots the session's statistics record.
func (w *World) Summary() stats.Summary {
	p := w.player
	return stats.Summary{
		SessionID:           w.sessionID,
		DistanceTraveled:    p.Pos.X,
		SurvivalTime:        w.timeElapsed,
		EnemiesDefeated:     w.enemiesDefeated,
		Score:               w.score,
		MagicBoltDamage:     p.Damage[AbilityMagicBolt],
		ElectricBurstDamage: p.Damage[AbilityElectricBurst],
		ExplosionDamage:     p.Damage[AbilityExplosion],
		ItemCollectionCount: w.itemsCollected,
		WaveNumber:          w.wave,
		BossesDefeated:      w.bossesDefeated,
		PlayerLevel:         p.Level,
	}
}

func (w *World) Player() *Player           { return w.player }
func (w *World) Enemies() []Hostile        { return w.enemies }
func (w *World) Bosses() []Hostile         { return w.bosses }
func (w *World) Projectiles() []Projectile { return w.projectiles }
func (w *World) Explosions() []*Explosion  { return w.explosions }
func (w *World) Items() []*Item            { return w.items }
func (w *World) Grid() *Grid               { return w.grid }
func (w *World) Paths() *Pathfinder        { return w.paths }
func (w *World) Camera() *Camera           { return w.camera }
func (w *World) Events() *EventLog         { return w.events }
func (w *World) Tuning() Tuning            { return w.tuning }
func (w *World) Time() float64             { return w.timeElapsed }
func (w *World) Score() int                { return w.score }
func (w *World) Wave() int                 { return w.wave }
func (w *World) WaveKills() int            { return w.waveKills }
func (w *World) EnemiesDefeated() int      { return w.enemiesDefeated }
func (w *World) BossesDefeated() int       { return w.bossesDefeated }
func (w *World) ItemsCollected() int       { return w.itemsCollected }
func (w *World) DamageDealt() float64      { return w.damageDealt }
func (w *World) Paused() bool              { return w.paused }
func (w *World) Choices() []UpgradeID      { return w.choices }
func (w *World) PendingLevelUps() int      { return w.pendingLevelUps }
func (w *World) GameOver() bool            { return w.gameOver }
func (w *World) GameWon() bool             { return w.gameWon }
func (w *World) SessionID() string         { return w.sessionID }

// Boss returns the live boss, if one exists.
func (w *World) Boss() (*Boss, bool) {
	for _, h := range w.bosses {
		if b, ok := h.(*Boss); ok {
			return b, true
		}
	}
	return nil, false
}

// DefaultFrameCounts mirrors the shipped sprite sheets, for headless runs.
func DefaultFrameCounts() FrameCounts {
	fc := FrameCounts{
		"magic_bolt":     4,
		"electric_burst": 12,
		"explosion":      8,
		"enemy_bolt":     4,
		"boss_bolt":      4,
		"exp_orb":        1,
		"heal_item":      1,
		"score_item":     1,
	}
	perState := map[AnimState]int{AnimIdle: 4, AnimRunning: 6, AnimAttacked: 3, AnimAttacking: 6, AnimDead: 6}
	for _, prefix := range []string{"player", "grunt", "caster", "boss"} {
		for s, n := range perState {
			fc[AnimName(prefix, s)] = n
		}
	}
	return fc
}

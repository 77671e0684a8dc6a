package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pmx-16/arcane-conquest/internal/config"
	"github.com/pmx-16/arcane-conquest/internal/logging"
	"github.com/pmx-16/arcane-conquest/internal/sim"
	"github.com/pmx-16/arcane-conquest/internal/stats"
)

type runStats struct {
	runIndex int
	seed     int64
	finished bool
	won      bool

	firstKill    float64
	firstLevelUp float64
	firstHit     float64
	bossSpawn    float64

	casts    [3]int
	hits     int
	upgrades int
	items    int

	summary stats.Summary
}

type options struct {
	runs     int
	seconds  float64
	seedBase int64
	seedStep int64
	csvPath  string
	cfgPath  string
}

func main() {
	var o options
	flag.IntVar(&o.runs, "runs", 5, "number of headless sessions")
	flag.Float64Var(&o.seconds, "seconds", 600, "simulated seconds per session before it is cut off")
	flag.Int64Var(&o.seedBase, "seed-base", 42, "seed of run 1")
	flag.Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&o.csvPath, "csv", "", "also append every session to this statistics CSV")
	flag.StringVar(&o.cfgPath, "config", config.DefaultPath, "YAML configuration (only the sim section is used)")
	flag.Parse()

	if err := run(os.Stdout, o); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func validate(o options) error {
	if o.runs <= 0 {
		return fmt.Errorf("-runs must be > 0")
	}
	if o.seconds <= 0 {
		return fmt.Errorf("-seconds must be > 0")
	}
	return nil
}

func run(out io.Writer, o options) error {
	if err := validate(o); err != nil {
		return err
	}
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return err
	}
	var sink *stats.CSVSink
	if o.csvPath != "" {
		sink = stats.NewCSVSink(o.csvPath)
	}

	fmt.Fprintf(out, "=== Headless Session Report ===\n")
	fmt.Fprintf(out, "runs=%d seconds=%.0f seed_base=%d seed_step=%d\n\n", o.runs, o.seconds, o.seedBase, o.seedStep)

	sums := make([]stats.Summary, 0, o.runs)
	for i := 0; i < o.runs; i++ {
		seed := o.seedBase + int64(i)*o.seedStep
		rs := runSession(i+1, seed, o.seconds, cfg.Sim)
		printRun(out, rs)
		sums = append(sums, rs.summary)
		if sink != nil {
			if err := sink.LogStats(rs.summary); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(out, "=== Aggregate ===")
	stats.Summarize(sums).Print(out)
	return nil
}

// runSession plays one autopiloted session for at most seconds.
func runSession(runIndex int, seed int64, seconds float64, tuning sim.Tuning) runStats {
	h := sim.NewHeadless(
		sim.WithWorld(
			sim.WithSeed(seed),
			sim.WithTuning(tuning),
			sim.WithLogger(logging.Discard().WithField("run", runIndex)),
		),
		sim.WithAutopilot(),
		sim.WithStart(),
	)
	maxTicks := int(math.Ceil(seconds / h.DT))
	h.RunUntil(func(h *sim.Headless) bool { return h.Finished() }, maxTicks)

	w := h.World
	ev := w.Events()
	rs := runStats{
		runIndex:     runIndex,
		seed:         seed,
		finished:     h.Finished(),
		won:          w.GameWon(),
		firstKill:    firstTime(ev.Entries(), "kill", ""),
		firstLevelUp: firstTime(ev.Entries(), "level", "up"),
		firstHit:     firstTime(ev.Entries(), "player", "hit"),
		bossSpawn:    firstTime(ev.Entries(), "boss", "spawn"),
		hits:         ev.Count("player", "hit"),
		upgrades:     ev.Count("upgrade", ""),
		items:        ev.Count("item", ""),
		summary:      w.Summary(),
	}
	for i, ab := range []sim.Ability{sim.AbilityMagicBolt, sim.AbilityElectricBurst, sim.AbilityExplosion} {
		rs.casts[i] = ev.Count("cast", ab.String())
	}
	return rs
}

// firstTime is the time of the first matching event, or -1.
func firstTime(entries []sim.Event, category, key string) float64 {
	for _, e := range entries {
		if e.Category == category && (key == "" || e.Key == key) {
			return e.Time
		}
	}
	return -1
}

func outcome(rs runStats) string {
	switch {
	case rs.won:
		return "victory"
	case rs.finished:
		return "defeat"
	default:
		return "cut_off"
	}
}

func printRun(out io.Writer, rs runStats) {
	s := rs.summary
	fmt.Fprintf(out, "--- Run %d (seed=%d) %s ---\n", rs.runIndex, rs.seed, outcome(rs))
	fmt.Fprintf(out, "phase_markers: first_kill=%.1f first_level=%.1f first_hit=%.1f boss_spawn=%.1f\n",
		rs.firstKill, rs.firstLevelUp, rs.firstHit, rs.bossSpawn)
	fmt.Fprintf(out, "casts: magic_bolt=%d electric_burst=%d explosion=%d\n", rs.casts[0], rs.casts[1], rs.casts[2])
	fmt.Fprintf(out, "session: time=%.1f score=%d wave=%d level=%d kills=%d bosses=%d hits_taken=%d upgrades=%d items=%d\n",
		s.SurvivalTime, s.Score, s.WaveNumber, s.PlayerLevel, s.EnemiesDefeated, s.BossesDefeated, rs.hits, rs.upgrades, rs.items)
	fmt.Fprintf(out, "damage: magic_bolt=%.0f electric_burst=%.0f explosion=%.0f\n\n",
		s.MagicBoltDamage, s.ElectricBurstDamage, s.ExplosionDamage)
}

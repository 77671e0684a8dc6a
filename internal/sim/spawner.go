package sim

import "github.com/sirupsen/logrus"

// spawnAttempts bounds the random search for a spawn cell.
const spawnAttempts = 64

// spawnPoint picks a random walkable cell centre away from the player. When no
// sampled cell is far enough it falls back to the first walkable one found
// that is not the player's own cell.
func (w *World) spawnPoint() (Vec2, bool) {
	pc := w.player.Pos.Cell()
	var fallback Vec2
	haveFallback := false
	for i := 0; i < spawnAttempts; i++ {
		c := Cell{X: w.rng.Intn(w.grid.Width()), Y: w.rng.Intn(w.grid.Height())}
		if c == pc || !w.grid.IsWalkable(c.X, c.Y) {
			continue
		}
		pos := c.Center()
		if pos.Dist(w.player.Pos) >= w.tuning.SpawnMinDistance {
			return pos, true
		}
		if !haveFallback {
			fallback, haveFallback = pos, true
		}
	}
	return fallback, haveFallback
}

// spawnEnemies adds n grunts for the current wave. From RangedFromWave on,
// a share of them use the ranged profile.
func (w *World) spawnEnemies(n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		pos, ok := w.spawnPoint()
		if !ok {
			if !w.spawnStalled {
				w.log.WithField("wave", w.wave).Warn("no walkable spawn cell found")
			}
			w.spawnStalled = true
			break
		}
		ranged := w.wave >= w.tuning.RangedFromWave && w.rng.Float64() < w.tuning.RangedChance
		w.addHostile(NewGrunt(w, w.newID(), pos, ranged))
		spawned++
	}
	if spawned == 0 {
		return 0
	}
	w.spawnStalled = false
	w.log.WithFields(logrus.Fields{"wave": w.wave, "count": spawned}).Info("wave spawned")
	w.events.Add(w.timeElapsed, "wave", "spawn", "", float64(spawned))
	return spawned
}

// spawnBoss places the boss. It happens at most once per session.
func (w *World) spawnBoss() {
	pos, ok := w.spawnPoint()
	if !ok {
		w.log.Warn("no walkable cell for the boss")
		return
	}
	w.bossSpawned = true
	b := NewBoss(w, w.newID(), pos)
	w.addHostile(b)
	w.log.WithFields(logrus.Fields{"id": b.ID, "x": pos.X, "y": pos.Y, "t": w.timeElapsed}).Info("boss spawned")
	w.events.Add(w.timeElapsed, "boss", "spawn", "", b.MaxHealth)
}

// addHostile files h in the enemy or boss set by its kind.
func (w *World) addHostile(h Hostile) {
	if h.Kind() == KindBoss {
		w.bosses = append(w.bosses, h)
		return
	}
	w.enemies = append(w.enemies, h)
}

// dropLoot leaves an experience orb at pos and, with the given chance, a
// bonus heal or score item.
func (w *World) dropLoot(pos Vec2, exp, chance float64) {
	t := w.tuning
	w.items = append(w.items, &Item{ID: w.newID(), Kind: ItemExpOrb, Pos: pos, Value: exp, HomingSpeed: t.ItemHomingSpeed})
	if w.rng.Float64() >= chance {
		return
	}
	bonus := &Item{ID: w.newID(), Kind: ItemHeal, Pos: pos, Value: t.HealAmount, HomingSpeed: t.ItemHomingSpeed}
	if w.rng.Intn(2) == 1 {
		bonus.Kind = ItemScore
		bonus.Value = t.ScoreItemAmount
	}
	w.items = append(w.items, bonus)
}

func (w *World) newID() int {
	w.nextID++
	return w.nextID
}

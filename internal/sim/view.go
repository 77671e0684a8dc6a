package sim

import "math"

// EntityKind tags what a View shows so the renderer can pick sprites.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindGrunt
	KindCaster
	KindBoss
	KindBolt
	KindBurst
	KindEnemyBolt
	KindBossBolt
	KindExplosion
	KindExpOrb
	KindHealItem
	KindScoreItem
)

var kindNames = map[EntityKind]string{
	KindPlayer:    "player",
	KindGrunt:     "grunt",
	KindCaster:    "caster",
	KindBoss:      "boss",
	KindBolt:      "magic_bolt",
	KindBurst:     "electric_burst",
	KindEnemyBolt: "enemy_bolt",
	KindBossBolt:  "boss_bolt",
	KindExplosion: "explosion",
	KindExpOrb:    "exp_orb",
	KindHealItem:  "heal_item",
	KindScoreItem: "score_item",
}

func (k EntityKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Animated reports whether the kind uses per-state animations.
func (k EntityKind) Animated() bool {
	return k == KindPlayer || k == KindGrunt || k == KindCaster || k == KindBoss
}

// View is what the core hands the render sink for one visible entity.
// Renderers look sprites up by Kind (and State for animated kinds) and
// never feed anything back into the simulation.
type View struct {
	ID         int
	Kind       EntityKind
	Pos        Vec2
	State      AnimState
	Frame      int
	FacingLeft bool
	Scale      float64
	Angle      float64 // flight direction in radians, projectiles only
	Health     float64 // 0..1, actors only
}

func angleOf(v Vec2) float64 { return math.Atan2(v.Y, v.X) }

func actorView(kind EntityKind, a *Actor, scale float64) View {
	return View{
		ID:         a.ID,
		Kind:       kind,
		Pos:        a.Pos,
		State:      a.Anim.State(),
		Frame:      a.Anim.Frame(),
		FacingLeft: a.FacingLeft,
		Scale:      scale,
		Health:     a.HealthFraction(),
	}
}

// Views lists every entity the camera can see, player first. With a nil
// camera nothing is culled except entities outside the map.
func (w *World) Views(cam *Camera) []View {
	p := w.player
	out := []View{{
		Kind:       KindPlayer,
		Pos:        p.Pos,
		State:      p.Anim.State(),
		Frame:      p.Anim.Frame(),
		FacingLeft: p.FacingLeft,
		Scale:      1,
		Health:     math.Max(0, math.Min(1, p.Health/p.MaxHealth)),
	}}
	visible := func(pos Vec2) bool {
		if !w.grid.Contains(pos) {
			return false
		}
		return cam == nil || cam.Visible(pos)
	}
	for _, it := range w.items {
		if visible(it.Pos) {
			out = append(out, it.View())
		}
	}
	for _, h := range w.enemies {
		if a := h.Body(); visible(a.Pos) {
			out = append(out, actorView(h.Kind(), a, 1))
		}
	}
	for _, h := range w.bosses {
		if a := h.Body(); visible(a.Pos) {
			out = append(out, actorView(h.Kind(), a, 2.5))
		}
	}
	for _, e := range w.explosions {
		if visible(e.Pos) {
			out = append(out, e.View())
		}
	}
	for _, pr := range w.projectiles {
		if v := pr.View(); visible(v.Pos) {
			out = append(out, v)
		}
	}
	return out
}

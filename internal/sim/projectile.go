package sim

// Projectile is the shared contract of every moving attack. Update moves it,
// applies its damage and clears Active once it expires.
type Projectile interface {
	Update(w *World, dt float64)
	Active() bool
	View() View
}

// Bolt is the player's magic bolt: straight flight, damages every living
// hostile within its hit radius once per update, then expires.
type Bolt struct {
	Pos       Vec2
	Dir       Vec2
	Speed     float64
	Damage    float64
	Lifetime  float64
	HitRadius float64
	age       float64
	active    bool
}

// NewBolt builds an active bolt. dir is normalized.
func NewBolt(pos, dir Vec2, speed, damage, lifetime, hitRadius float64) *Bolt {
	return &Bolt{Pos: pos, Dir: dir.Normalize(), Speed: speed, Damage: damage,
		Lifetime: lifetime, HitRadius: hitRadius, active: true}
}

func (b *Bolt) Active() bool { return b.active }

func (b *Bolt) Update(w *World, dt float64) {
	if !b.active {
		return
	}
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	b.age += dt
	if !w.grid.Contains(b.Pos) || b.age >= b.Lifetime {
		b.active = false
		return
	}
	hit := false
	for _, h := range w.livingHostiles() {
		if h.Body().Pos.Dist(b.Pos) <= b.HitRadius {
			w.damageHostile(h, b.Damage, AbilityMagicBolt)
			hit = true
		}
	}
	if hit {
		b.active = false
	}
}

func (b *Bolt) View() View {
	return View{Kind: KindBolt, Pos: b.Pos, FacingLeft: b.Dir.X < 0, Scale: 1, Angle: angleOf(b.Dir)}
}

// Burst is the electric burst: it flies like a bolt but pulses area damage
// along its path and expires after one animation cycle or off the map.
type Burst struct {
	Pos           Vec2
	Dir           Vec2
	Speed         float64
	Damage        float64
	Radius        float64
	PulseInterval float64
	Lifetime      float64
	frames        int
	pulseTimer    float64
	age           float64
	active        bool
}

// NewBurst builds an active burst that pulses on its first update.
func NewBurst(pos, dir Vec2, speed, damage, radius, pulse, lifetime float64, frames int) *Burst {
	if frames < 1 {
		frames = 1
	}
	return &Burst{Pos: pos, Dir: dir.Normalize(), Speed: speed, Damage: damage, Radius: radius,
		PulseInterval: pulse, Lifetime: lifetime, frames: frames, pulseTimer: pulse, active: true}
}

func (b *Burst) Active() bool { return b.active }

func (b *Burst) Update(w *World, dt float64) {
	if !b.active {
		return
	}
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	b.age += dt
	if !w.grid.Contains(b.Pos) {
		b.active = false
		return
	}
	b.pulseTimer += dt
	if b.PulseInterval > 0 && b.pulseTimer >= b.PulseInterval {
		b.pulseTimer -= b.PulseInterval
		for _, h := range w.livingHostiles() {
			if h.Body().Pos.Dist(b.Pos) <= b.Radius {
				w.damageHostile(h, b.Damage, AbilityElectricBurst)
			}
		}
	}
	if b.age >= b.Lifetime {
		b.active = false
	}
}

func (b *Burst) View() View {
	frame := 0
	if b.Lifetime > 0 {
		frame = min(int(b.age/b.Lifetime*float64(b.frames)), b.frames-1)
	}
	return View{Kind: KindBurst, Pos: b.Pos, Frame: frame, FacingLeft: b.Dir.X < 0, Scale: 1, Angle: angleOf(b.Dir)}
}

// hostileBoltLifetime bounds how long an enemy or boss bolt may fly.
const hostileBoltLifetime = 4.0

// HostileBolt is an enemy or boss bolt aimed at the player.
type HostileBolt struct {
	kind   EntityKind
	Pos    Vec2
	Dir    Vec2
	Speed  float64
	Damage float64
	age    float64
	active bool
}

// NewHostileBolt builds an active bolt of kind KindEnemyBolt or KindBossBolt.
func NewHostileBolt(kind EntityKind, pos, dir Vec2, speed, damage float64) *HostileBolt {
	return &HostileBolt{kind: kind, Pos: pos, Dir: dir.Normalize(), Speed: speed, Damage: damage, active: true}
}

func (hb *HostileBolt) Active() bool { return hb.active }

func (hb *HostileBolt) Update(w *World, dt float64) {
	if !hb.active {
		return
	}
	hb.Pos = hb.Pos.Add(hb.Dir.Scale(hb.Speed * dt))
	hb.age += dt
	if !w.grid.Contains(hb.Pos) || hb.age >= hostileBoltLifetime {
		hb.active = false
		return
	}
	if hb.Pos.Dist(w.player.Pos) <= w.tuning.HitRadius {
		w.hurtPlayer(hb.Damage, hb.kind)
		hb.active = false
	}
}

func (hb *HostileBolt) View() View {
	scale := 1.0
	if hb.kind == KindBossBolt {
		scale = 1.5
	}
	return View{Kind: hb.kind, Pos: hb.Pos, FacingLeft: hb.Dir.X < 0, Scale: scale, Angle: angleOf(hb.Dir)}
}

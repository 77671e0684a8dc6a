package sim

// Explosion is the timed area blast centred where the player stood when it
// went off. Damage lands once, on its damage frame; the explosion is removed
// after its last frame.
type Explosion struct {
	Pos           Vec2
	Radius        float64
	Damage        float64
	frames        int
	frameInterval float64
	damageFrame   int
	age           float64
	applied       bool
	active        bool
}

// NewExplosion clamps damageFrame into the animation so damage always lands.
func NewExplosion(pos Vec2, radius, damage float64, frames int, frameInterval float64, damageFrame int) *Explosion {
	if frames < 1 {
		frames = 1
	}
	if damageFrame > frames-1 {
		damageFrame = frames - 1
	}
	if damageFrame < 0 {
		damageFrame = 0
	}
	return &Explosion{Pos: pos, Radius: radius, Damage: damage, frames: frames,
		frameInterval: frameInterval, damageFrame: damageFrame, active: true}
}

func (e *Explosion) Active() bool  { return e.active }
func (e *Explosion) Applied() bool { return e.applied }

// Frame is the current animation frame.
func (e *Explosion) Frame() int {
	if e.frameInterval <= 0 {
		return e.frames - 1
	}
	return min(int(e.age/e.frameInterval), e.frames-1)
}

func (e *Explosion) Update(w *World, dt float64) {
	if !e.active {
		return
	}
	e.age += dt
	if !e.applied && e.Frame() >= e.damageFrame {
		e.applied = true
		for _, h := range w.livingHostiles() {
			if h.Body().Pos.Dist(e.Pos) <= e.Radius {
				w.damageHostile(h, e.Damage, AbilityExplosion)
			}
		}
	}
	if e.frameInterval <= 0 || e.age >= float64(e.frames)*e.frameInterval {
		e.active = false
	}
}

func (e *Explosion) View() View {
	return View{Kind: KindExplosion, Pos: e.Pos, Frame: e.Frame(), Scale: e.Radius / 4}
}

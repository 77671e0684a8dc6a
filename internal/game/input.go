package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// keyState is the slice of ebiten's keyboard API the frontend reads.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// moveBindings lists the held keys for each direction.
var moveBindings = []struct {
	dir  sim.Direction
	keys []ebiten.Key
}{
	{sim.DirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{sim.DirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{sim.DirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{sim.DirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

var upgradeKeys = [sim.UpgradeChoices]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// readIntents turns this frame's keyboard into simulation intents.
// Movement is level-triggered; every other action fires once per press.
func readIntents(ks keyState) []sim.Intent {
	var out []sim.Intent
	for _, b := range moveBindings {
		for _, k := range b.keys {
			if ks.Pressed(k) {
				out = append(out, sim.MoveIntent(b.dir))
				break
			}
		}
	}
	if ks.JustPressed(ebiten.KeyP) || ks.JustPressed(ebiten.KeyEscape) {
		out = append(out, sim.PauseIntent())
	}
	for i, k := range upgradeKeys {
		if ks.JustPressed(k) {
			out = append(out, sim.SelectIntent(i))
		}
	}
	if ks.JustPressed(ebiten.KeyR) {
		out = append(out, sim.RetryIntent())
	}
	return out
}

package sim

// ItemKind is what a pickup does when collected.
type ItemKind int

const (
	ItemExpOrb ItemKind = iota
	ItemHeal
	ItemScore
)

func (k ItemKind) String() string {
	switch k {
	case ItemExpOrb:
		return "exp_orb"
	case ItemHeal:
		return "heal"
	case ItemScore:
		return "score"
	default:
		return "unknown"
	}
}

// Item is a dropped pickup. Inside the player's pickup radius it homes in;
// within the collect radius it is consumed.
type Item struct {
	ID          int
	Kind        ItemKind
	Pos         Vec2
	Value       float64
	HomingSpeed float64
}

// step moves the item toward target without overshooting.
func (it *Item) step(target Vec2, dt float64) {
	delta := target.Sub(it.Pos)
	d := delta.Len()
	move := it.HomingSpeed * dt
	if move >= d {
		it.Pos = target
		return
	}
	it.Pos = it.Pos.Add(delta.Scale(move / d))
}

func (it *Item) View() View {
	kind := KindExpOrb
	switch it.Kind {
	case ItemHeal:
		kind = KindHealItem
	case ItemScore:
		kind = KindScoreItem
	}
	return View{ID: it.ID, Kind: kind, Pos: it.Pos, Scale: 1}
}

package sim

// Direction is one of the four movement intents.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Vec is the unit step for d. Screen convention: up is -Y.
func (d Direction) Vec() Vec2 {
	switch d {
	case DirLeft:
		return Vec2{X: -1}
	case DirRight:
		return Vec2{X: 1}
	case DirUp:
		return Vec2{Y: -1}
	case DirDown:
		return Vec2{Y: 1}
	default:
		return Vec2{}
	}
}

// IntentKind enumerates what the input source may ask for.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentPauseToggle
	IntentSelectUpgrade
	IntentRetry
)

// Intent is one discrete input for a tick, decoupled from key codes.
type Intent struct {
	Kind  IntentKind
	Dir   Direction // IntentMove
	Index int       // IntentSelectUpgrade
}

func MoveIntent(d Direction) Intent { return Intent{Kind: IntentMove, Dir: d} }
func PauseIntent() Intent           { return Intent{Kind: IntentPauseToggle} }
func SelectIntent(i int) Intent     { return Intent{Kind: IntentSelectUpgrade, Index: i} }
func RetryIntent() Intent           { return Intent{Kind: IntentRetry} }

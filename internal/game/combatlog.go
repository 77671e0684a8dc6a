package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

const (
	LogPanelWidth = 300 // pixels right of the map
	logMaxEntries = 60
	logLineHeight = 14
)

// logLine is one row of the combat log.
type logLine struct {
	Time     float64
	Category string
	Message  string
}

// CombatLog is a ring buffer of recent gameplay events shown beside the map.
// It reads the world's event log incrementally and skips raw damage events.
type CombatLog struct {
	entries []logLine
	head    int
	count   int
	cursor  int    // next unread index in the world's event log
	session string // session the cursor belongs to
}

func NewCombatLog() *CombatLog {
	return &CombatLog{entries: make([]logLine, logMaxEntries)}
}

// Sync pulls events of the given session recorded since the last call and
// returns them. A new session starts the panel over.
func (cl *CombatLog) Sync(session string, events *sim.EventLog) []sim.Event {
	if session != cl.session || events.Len() < cl.cursor {
		cl.Clear()
		cl.session = session
	}
	fresh := events.Since(cl.cursor)
	cl.cursor = events.Len()
	for _, e := range fresh {
		if msg, ok := describe(e); ok {
			cl.add(logLine{Time: e.Time, Category: e.Category, Message: msg})
		}
	}
	return fresh
}

// Clear drops every entry and rewinds the cursor.
func (cl *CombatLog) Clear() {
	cl.head, cl.count, cl.cursor = 0, 0, 0
}

func (cl *CombatLog) add(l logLine) {
	cl.entries[cl.head] = l
	cl.head = (cl.head + 1) % logMaxEntries
	if cl.count < logMaxEntries {
		cl.count++
	}
}

// Recent returns entries oldest first.
func (cl *CombatLog) Recent() []logLine {
	result := make([]logLine, cl.count)
	for i := 0; i < cl.count; i++ {
		idx := (cl.head - cl.count + i + logMaxEntries) % logMaxEntries
		result[i] = cl.entries[idx]
	}
	return result
}

func describe(e sim.Event) (string, bool) {
	switch e.Category {
	case "kill":
		return "defeated " + e.Key, true
	case "wave":
		return fmt.Sprintf("wave spawned: %d enemies", int(e.Num)), true
	case "level":
		return fmt.Sprintf("reached level %d", int(e.Num)), true
	case "upgrade":
		return "upgrade: " + sim.UpgradeID(e.Key).Label(), true
	case "item":
		return "picked up " + e.Key, true
	case "player":
		return fmt.Sprintf("hit by %s for %.0f", e.Value, e.Num), true
	case "boss":
		return "boss " + e.Key, true
	case "game":
		return e.Key, true
	}
	return "", false
}

var categoryColors = map[string]color.RGBA{
	"kill":    {R: 120, G: 200, B: 120, A: 255},
	"player":  {R: 220, G: 80, B: 80, A: 255},
	"level":   {R: 230, G: 200, B: 80, A: 255},
	"upgrade": {R: 230, G: 200, B: 80, A: 255},
	"boss":    {R: 200, G: 90, B: 220, A: 255},
	"wave":    {R: 90, G: 140, B: 220, A: 255},
}

// Draw renders the panel at panelX.
func (cl *CombatLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, LogPanelWidth, float32(panelH), color.RGBA{R: 12, G: 10, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 70, G: 50, B: 90, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, LogPanelWidth, 16, color.RGBA{R: 30, G: 20, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "COMBAT LOG", panelX+8, 0)

	entries := cl.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), LogPanelWidth-4, logLineHeight, color.RGBA{R: 36, G: 28, B: 46, A: 160}, false)
		}
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%6.1f %s", e.Time, e.Message), panelX+12, y)
		y += logLineHeight
	}
}

package sim

import (
	"fmt"
	"strings"
)

// Event is one recorded gameplay event.
type Event struct {
	Time     float64
	Category string // cast, damage, kill, wave, level, upgrade, item, player, boss, game
	Key      string
	Value    string
	Num      float64
}

// String formats the event as a fixed-width log line.
//
//	[t=012.40] kill     grunt            id=17
func (e Event) String() string {
	return fmt.Sprintf("[t=%06.2f] %-8s %-16s %s", e.Time, e.Category, e.Key, e.Value)
}

// EventLog is the unbounded, machine-readable record of a session. Tests
// query it; the HUD and the audio cues read new entries with Since.
type EventLog struct {
	entries []Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Add records a new event.
func (l *EventLog) Add(time float64, category, key, value string, num float64) {
	l.entries = append(l.entries, Event{Time: time, Category: category, Key: key, Value: value, Num: num})
}

// Len is the number of recorded events.
func (l *EventLog) Len() int { return len(l.entries) }

// Entries returns all recorded events.
func (l *EventLog) Entries() []Event { return l.entries }

// Since returns the events recorded at or after index i.
func (l *EventLog) Since(i int) []Event {
	if i < 0 {
		i = 0
	}
	if i >= len(l.entries) {
		return nil
	}
	return l.entries[i:]
}

// Filter returns events matching category and key. Empty matches anything.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many events match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent event matching category+key.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	es := l.Filter(category, key)
	if len(es) == 0 {
		return Event{}, false
	}
	return es[len(es)-1], true
}

// Sum adds up Num over the matching events.
func (l *EventLog) Sum(category, key string) float64 {
	total := 0.0
	for _, e := range l.Filter(category, key) {
		total += e.Num
	}
	return total
}

// Format returns the full log as a single string for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset drops every event.
func (l *EventLog) Reset() { l.entries = nil }

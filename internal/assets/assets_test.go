package assets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// stubLoader swaps disk and GPU access for counters.
func stubLoader(t *testing.T, present map[string]bool) (*Loader, *int, *int) {
	t.Helper()
	l := NewLoader("sprites", Manifest{"grunt_running": 3, "explosion": 2}, nil)
	opened, placeholders := 0, 0
	l.open = func(path string) (*ebiten.Image, error) {
		opened++
		if present[path] {
			return &ebiten.Image{}, nil
		}
		return nil, errors.New("not found")
	}
	l.placeholder = func(string, int) *ebiten.Image {
		placeholders++
		return &ebiten.Image{}
	}
	return l, &opened, &placeholders
}

func TestLoader_FallbackKeepsFrameCount(t *testing.T) {
	present := map[string]bool{filepath.Join("sprites", "grunt_running", "1.png"): true}
	l, opened, placeholders := stubLoader(t, present)

	frames := l.LoadFrames("grunt_running")
	require.Len(t, frames, 3)
	assert.Equal(t, 3, *opened)
	assert.Equal(t, 2, *placeholders)
	for i, f := range frames {
		assert.NotNil(t, f, "frame %d", i)
	}
}

func TestLoader_CachesFrames(t *testing.T) {
	l, opened, _ := stubLoader(t, nil)
	first := l.LoadFrames("explosion")
	second := l.LoadFrames("explosion")
	assert.Equal(t, 2, *opened, "second load must come from the cache")
	assert.Same(t, first[0], second[0])
}

func TestLoader_UnknownNameGetsOneFrame(t *testing.T) {
	l, _, placeholders := stubLoader(t, nil)
	assert.Len(t, l.LoadFrames("nope"), 1)
	assert.Equal(t, 1, *placeholders)
	assert.Equal(t, 0, l.FrameCount("nope"))
}

func TestLoader_FrameWraps(t *testing.T) {
	l, _, _ := stubLoader(t, nil)
	frames := l.LoadFrames("grunt_running")
	assert.Same(t, frames[1], l.Frame("grunt_running", 4))
	assert.Same(t, frames[0], l.Frame("grunt_running", -2))
}

func TestDefaultManifest_MatchesSimulationCounts(t *testing.T) {
	l := NewLoader("assets", nil, nil)
	for name, n := range sim.DefaultFrameCounts() {
		assert.Equal(t, n, l.FrameCount(name), name)
	}
	var src sim.FrameSource = l
	assert.Equal(t, 12, src.FrameCount("electric_burst"))
}

func TestPlaceholderColor_StablePerName(t *testing.T) {
	assert.Equal(t, PlaceholderColor("boss_idle", 0), PlaceholderColor("boss_idle", 2))
	assert.NotEqual(t, PlaceholderColor("boss_idle", 0), PlaceholderColor("boss_idle", 1))
	assert.Equal(t, uint8(255), PlaceholderColor("x", 0).A)
}

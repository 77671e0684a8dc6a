// Package assets loads sprite frames from disk. Frames live at
// <dir>/<name>/<index>.png; a missing or broken file is replaced by a
// coloured placeholder so the frame count, and with it gameplay timing,
// never depends on what is installed.
package assets

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// placeholderSize is the edge of a generated frame in pixels.
const placeholderSize = 16

// Manifest maps a logical animation name to its frame count.
type Manifest map[string]int

// DefaultManifest lists the shipped animations.
func DefaultManifest() Manifest {
	m := Manifest{}
	for name, n := range sim.DefaultFrameCounts() {
		m[name] = n
	}
	return m
}

// Loader loads and caches frames. It satisfies sim.FrameSource, so the
// simulation can be built from the same manifest the renderer draws.
type Loader struct {
	dir      string
	manifest Manifest
	log      *logrus.Entry

	mu    sync.Mutex
	cache map[string][]*ebiten.Image

	open        func(path string) (*ebiten.Image, error)
	placeholder func(name string, i int) *ebiten.Image
}

// NewLoader reads frames from dir.
func NewLoader(dir string, manifest Manifest, log *logrus.Entry) *Loader {
	if manifest == nil {
		manifest = DefaultManifest()
	}
	return &Loader{
		dir:         dir,
		manifest:    manifest,
		log:         log,
		cache:       map[string][]*ebiten.Image{},
		open:        openImage,
		placeholder: placeholderFrame,
	}
}

var _ sim.FrameSource = (*Loader)(nil)

// FrameCount is the manifest count for name, or zero when unknown.
func (l *Loader) FrameCount(name string) int { return l.manifest[name] }

// FramePath is where frame i of name is expected on disk.
func (l *Loader) FramePath(name string, i int) string {
	return filepath.Join(l.dir, name, fmt.Sprintf("%d.png", i))
}

// LoadFrames returns every frame of name. Unknown names yield a single
// placeholder frame.
func (l *Loader) LoadFrames(name string) []*ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	if frames, ok := l.cache[name]; ok {
		return frames
	}
	n := max(l.manifest[name], 1)
	frames := make([]*ebiten.Image, n)
	missing := 0
	var firstErr error
	for i := range frames {
		img, err := l.open(l.FramePath(name, i))
		if err != nil {
			missing++
			if firstErr == nil {
				firstErr = err
			}
			img = l.placeholder(name, i)
		}
		frames[i] = img
	}
	if missing > 0 && l.log != nil {
		l.log.WithFields(logrus.Fields{
			"animation": name,
			"missing":   missing,
			"frames":    n,
		}).WithError(firstErr).Warn("using placeholder frames")
	}
	l.cache[name] = frames
	return frames
}

// Frame returns frame i of name, wrapping out-of-range indices.
func (l *Loader) Frame(name string, i int) *ebiten.Image {
	frames := l.LoadFrames(name)
	if i < 0 {
		i = 0
	}
	return frames[i%len(frames)]
}

// Preload loads every animation in the manifest.
func (l *Loader) Preload() {
	for name := range l.manifest {
		l.LoadFrames(name)
	}
}

func openImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

func placeholderFrame(name string, i int) *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(PlaceholderColor(name, i))
	return img
}

// PlaceholderColor is a stable colour per animation, slightly brighter on
// odd frames so a running placeholder still flickers.
func PlaceholderColor(name string, i int) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	c := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}
	if i%2 == 1 {
		c.R = c.R/2 + 128
		c.G = c.G/2 + 128
		c.B = c.B/2 + 128
	}
	return c
}

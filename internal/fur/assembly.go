package fur

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/fur/fin"
	"github.com/Faultbox/midgard-fur/internal/fur/shell"
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// Assembly owns a source mesh and the shells and fins generated from it.
// It is not safe for concurrent use; drive it from the render loop.
type Assembly struct {
	log      *zap.Logger
	pool     *shell.Pool
	ownsPool bool
	workers  int
	windSeed uint64

	settings Settings
	wind     wind.State

	sourceID uint64
	source   *mesh.Mesh // prepared

	shells []ShellItem
	fins   *FinItem

	regenerations int
}

// New creates an assembly with no mesh.
func New(opts ...Option) *Assembly {
	a := &Assembly{
		log:      zap.NewNop(),
		pool:     shell.NewPool(shell.DefaultPoolSize, 0),
		ownsPool: true,
		windSeed: wind.DefaultSeed,
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.wind = wind.NewState(a.settings.Wind, a.windSeed)
	return a
}

// SetMesh replaces the source mesh and regenerates. Missing normals and
// UVs are computed. A mesh without positions is rejected and the current
// geometry is kept. Setting the same mesh again does nothing.
func (a *Assembly) SetMesh(m *mesh.Mesh) error {
	prepared, err := mesh.Prepare(m)
	if err != nil {
		return fmt.Errorf("fur: set mesh: %w", err)
	}
	if a.source != nil && a.sourceID == m.ID {
		return nil
	}
	a.sourceID = m.ID
	a.source = prepared
	return a.regenerate()
}

// Mesh returns the prepared source mesh, or nil.
func (a *Assembly) Mesh() *mesh.Mesh { return a.source }

// Settings returns the current settings.
func (a *Assembly) Settings() Settings { return a.settings }

// Wind returns the current wind state.
func (a *Assembly) Wind() wind.State { return a.wind }

// Regenerations counts how many times geometry was rebuilt.
func (a *Assembly) Regenerations() int { return a.regenerations }

// Configure applies s at once with at most one regeneration. It reports
// whether anything changed; a failed regeneration leaves the settings
// unchanged and reports false.
func (a *Assembly) Configure(s Settings) bool {
	return a.apply(s)
}

func (a *Assembly) update(fn func(*Settings)) bool {
	next := a.settings
	fn(&next)
	return a.apply(next)
}

// apply installs clamped settings. Geometry is rebuilt only when a
// generation parameter differs; wind and shading fields are pushed to the
// existing draw items. A failed rebuild restores the previous settings so
// they keep describing the geometry on screen.
func (a *Assembly) apply(next Settings) bool {
	next = next.Clamp()
	if next == a.settings {
		return false
	}
	prev, prevWind := a.settings, a.wind
	a.settings = next
	if next.Wind != prev.Wind {
		a.wind = a.wind.Configure(next.Wind)
	}

	if !next.geometryEqual(prev) && a.source != nil {
		if err := a.regenerate(); err != nil {
			a.log.Error("Fur regeneration failed", zap.Error(err))
			a.settings, a.wind = prev, prevWind
			return false
		}
		return true
	}
	a.refreshUniforms()
	return true
}

func (a *Assembly) regenerate() error {
	start := time.Now()
	s := a.settings

	layers, err := a.pool.Layers(a.source, s.Shell)
	if err != nil {
		return fmt.Errorf("fur: shells: %w", err)
	}

	var fins []fin.Fin
	if s.FinsEnabled {
		if a.workers == 1 {
			fins, err = fin.Build(a.source, s.Fin)
		} else {
			fins, err = fin.BuildParallel(a.source, s.Fin, a.workers)
		}
		if err != nil {
			for _, l := range layers {
				l.Dispose()
			}
			return fmt.Errorf("fur: fins: %w", err)
		}
	}

	a.disposeGeometry()

	a.shells = make([]ShellItem, len(layers))
	for i, l := range layers {
		a.shells[i] = ShellItem{Layer: l}
	}
	if s.FinsEnabled {
		a.fins = &FinItem{Fins: fins, Geometry: fin.Geometry(fins)}
	}
	a.refreshUniforms()
	a.regenerations++

	stats := a.pool.Stats()
	a.log.Debug("Regenerated fur",
		zap.Int("layers", len(layers)),
		zap.Int("fins", len(fins)),
		zap.Int("faces", a.source.TriangleCount()),
		zap.Uint64("poolHits", stats.Hits),
		zap.Uint64("poolMisses", stats.Misses),
		zap.Duration("took", time.Since(start)))
	return nil
}

func (a *Assembly) refreshUniforms() {
	s := a.settings
	w := a.wind.Uniforms()
	for i := range a.shells {
		item := &a.shells[i]
		l := item.Layer
		item.Uniforms = ShellUniforms{
			LayerIndex:      l.Index,
			TotalLayers:     l.Total,
			OffsetDistance:  l.OffsetDistance,
			NormalizedLayer: l.NormalizedLayer,
			Spacing:         l.Spacing,
			TaperScale:      l.TaperScale,
			Taper:           s.Shell.Taper,
			Opacity:         s.Opacity,
			Density:         s.Density,
		}
		item.Wind = w
	}
	if a.fins != nil {
		a.fins.Uniforms = FinUniforms{
			Length:     s.Fin.Length,
			Count:      len(a.fins.Fins),
			TaperScale: taper.Scale(1, s.Fin.Taper),
			Taper:      s.Fin.Taper,
			Opacity:    s.Opacity,
			Density:    s.Density,
		}
		a.fins.Wind = w
	}
}

func (a *Assembly) disposeGeometry() {
	for _, item := range a.shells {
		item.Layer.Dispose()
	}
	a.shells = nil
	if a.fins != nil {
		a.fins.Geometry.Dispose()
		a.fins = nil
	}
}

// Update advances the wind by dt seconds and pushes the new wind uniforms
// to every draw item.
func (a *Assembly) Update(dt float32) {
	a.wind = a.wind.Advance(dt)
	w := a.wind.Uniforms()
	for i := range a.shells {
		a.shells[i].Wind = w
	}
	if a.fins != nil {
		a.fins.Wind = w
	}
}

// DrawSet returns the current draw items.
func (a *Assembly) DrawSet() DrawSet {
	return DrawSet{
		Base:   a.source,
		Shells: a.shells,
		Fins:   a.fins,
		Wind:   a.wind.Uniforms(),
	}
}

// Close disposes all generated geometry and, unless it was shared through
// WithPool, the shell pool.
func (a *Assembly) Close() {
	a.disposeGeometry()
	if a.ownsPool {
		a.pool.Purge()
	}
	a.source = nil
	a.sourceID = 0
}

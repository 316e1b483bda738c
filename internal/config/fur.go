package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/midgard-fur/internal/assets"
	"github.com/Faultbox/midgard-fur/internal/fur"
	"github.com/Faultbox/midgard-fur/internal/fur/fin"
	"github.com/Faultbox/midgard-fur/internal/fur/shell"
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// ErrInvalidConfig is wrapped by every Validate problem.
var ErrInvalidConfig = errors.New("invalid config")

// SetSource points the mesh config at an OBJ file or a primitive name.
func (m *MeshConfig) SetSource(s string) {
	if strings.HasSuffix(strings.ToLower(s), ".obj") {
		m.Path = s
		return
	}
	m.Path = ""
	m.Primitive = s
}

// Source returns the asset source for the configured mesh.
func (m MeshConfig) Source() assets.Source {
	return assets.Source{Path: m.Path, Primitive: m.Primitive, Size: m.Size}
}

// FurSettings converts the config into assembly settings. Unknown enum and
// preset names are ignored, keeping the explicit values.
func (c *Config) FurSettings() fur.Settings {
	s := fur.Settings{
		Shell: shell.Params{
			Count:       c.Shell.Count,
			Spacing:     c.Shell.Spacing,
			MaxDistance: c.Shell.MaxDistance,
			Taper:       c.Shell.Taper.taper(),
		},
		Opacity:     c.Shell.Opacity,
		Density:     c.Shell.Density,
		FinsEnabled: c.Fin.Enabled,
		Fin: fin.Params{
			Length:   c.Fin.Length,
			MaxCount: c.Fin.MaxCount,
			Taper:    c.Fin.Taper.taper(),
		},
		Wind: c.Wind.params(),
	}
	return s.Clamp()
}

func (t TaperConfig) taper() taper.Config {
	cfg := taper.Config{Enabled: t.Enabled, Intensity: t.Intensity}
	if c, ok := taper.ParseCurve(t.Curve); ok {
		cfg.Curve = c
	}
	if m, ok := taper.ParseMethod(t.Method); ok {
		cfg.Method = m
	}
	if p, ok := taper.LookupPreset(t.Preset); ok {
		cfg = p.Apply(cfg)
	}
	return cfg
}

func (w WindConfig) params() wind.Params {
	if p, ok := wind.ParsePreset(w.Preset); ok {
		return p
	}
	return wind.Params{
		Enabled:             w.Enabled,
		Direction:           math.V3(w.Direction[0], w.Direction[1], w.Direction[2]),
		Strength:            w.Strength,
		TurbulenceIntensity: w.TurbulenceIntensity,
		TurbulenceFrequency: w.TurbulenceFrequency,
		GustStrength:        w.GustStrength,
		GustFrequency:       w.GustFrequency,
		GustDuration:        w.GustDuration,
		Dampening:           w.Dampening,
		Responsiveness:      w.Responsiveness,
		Randomness:          w.Randomness,
		AnimationSpeed:      w.AnimationSpeed,
	}
}

// Validate reports settings that FurSettings or the viewer would silently
// ignore or clamp. The config stays usable when Validate fails.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Mesh.Path == "" {
		if _, ok := mesh.Primitive(c.Mesh.Primitive, 1); !ok {
			bad("unknown primitive %q", c.Mesh.Primitive)
		}
	}
	if c.Shell.Count < shell.MinCount || c.Shell.Count > shell.MaxCount {
		bad("shell count %d outside [%d, %d]", c.Shell.Count, shell.MinCount, shell.MaxCount)
	}
	if c.Fin.MaxCount < fin.MinCount || c.Fin.MaxCount > fin.MaxCountLimit {
		bad("fin max_count %d outside [%d, %d]", c.Fin.MaxCount, fin.MinCount, fin.MaxCountLimit)
	}
	for name, t := range map[string]TaperConfig{"shell": c.Shell.Taper, "fin": c.Fin.Taper} {
		if _, ok := taper.ParseCurve(t.Curve); !ok {
			bad("%s taper curve %q", name, t.Curve)
		}
		if _, ok := taper.ParseMethod(t.Method); !ok {
			bad("%s taper method %q", name, t.Method)
		}
		if _, ok := taper.LookupPreset(t.Preset); t.Preset != "" && !ok {
			bad("%s taper preset %q", name, t.Preset)
		}
	}
	if _, ok := wind.ParsePreset(c.Wind.Preset); c.Wind.Preset != "" && !ok {
		bad("wind preset %q", c.Wind.Preset)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		bad("log level %q", c.Logging.Level)
	}
	return errors.Join(errs...)
}

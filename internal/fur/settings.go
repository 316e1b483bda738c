// Package fur assembles shell layers, fins and wind into the draw set the
// renderer consumes, regenerating geometry only when a generation
// parameter actually changes.
package fur

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/internal/fur/fin"
	"github.com/Faultbox/midgard-fur/internal/fur/shell"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Settings is the full fur control surface.
type Settings struct {
	Shell shell.Params

	// Opacity and Density only affect shading.
	Opacity float32 // [0, 1]
	Density float32 // [0, 1]

	FinsEnabled bool
	Fin         fin.Params

	Wind wind.Params
}

// DefaultSettings returns the viewer defaults.
func DefaultSettings() Settings {
	return Settings{
		Shell:       shell.DefaultParams(),
		Opacity:     0.8,
		Density:     0.7,
		FinsEnabled: true,
		Fin:         fin.DefaultParams(),
		Wind:        wind.DefaultParams(),
	}
}

// Clamp returns s with every field in range.
func (s Settings) Clamp() Settings {
	d := DefaultSettings()
	s.Shell = s.Shell.Clamp()
	s.Fin = s.Fin.Clamp()
	s.Wind = s.Wind.Clamp()
	s.Opacity = unit(s.Opacity, d.Opacity)
	s.Density = unit(s.Density, d.Density)
	return s
}

// geometryEqual reports whether s and other generate the same geometry.
func (s Settings) geometryEqual(other Settings) bool {
	return s.Shell == other.Shell && s.FinsEnabled == other.FinsEnabled && s.Fin == other.Fin
}

func unit(v, fallback float32) float32 {
	if math32.IsNaN(v) {
		return fallback
	}
	return math.Clamp(v, 0, 1)
}

package fur

import (
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Every setter clamps its input and does nothing when the clamped value
// equals the current one.

// SetShellCount sets the number of shell layers.
func (a *Assembly) SetShellCount(n int) {
	a.update(func(s *Settings) { s.Shell.Count = n })
}

// ShellCount returns the number of shell layers.
func (a *Assembly) ShellCount() int { return a.settings.Shell.Count }

// SetShellSpacing sets the layer spacing passed to shading.
func (a *Assembly) SetShellSpacing(v float32) {
	a.update(func(s *Settings) { s.Shell.Spacing = v })
}

// ShellSpacing returns the layer spacing.
func (a *Assembly) ShellSpacing() float32 { return a.settings.Shell.Spacing }

// SetMaxDistance sets how far the outermost shell sits from the surface.
func (a *Assembly) SetMaxDistance(v float32) {
	a.update(func(s *Settings) { s.Shell.MaxDistance = v })
}

// MaxDistance returns the outermost shell offset.
func (a *Assembly) MaxDistance() float32 { return a.settings.Shell.MaxDistance }

// SetOpacity sets the shell opacity. Geometry is not rebuilt.
func (a *Assembly) SetOpacity(v float32) {
	a.update(func(s *Settings) { s.Opacity = v })
}

// Opacity returns the shell opacity.
func (a *Assembly) Opacity() float32 { return a.settings.Opacity }

// SetDensity sets the strand density. Geometry is not rebuilt.
func (a *Assembly) SetDensity(v float32) {
	a.update(func(s *Settings) { s.Density = v })
}

// Density returns the strand density.
func (a *Assembly) Density() float32 { return a.settings.Density }

// Shell tapering.

// SetTaperingEnabled turns shell tapering on or off.
func (a *Assembly) SetTaperingEnabled(v bool) {
	a.update(func(s *Settings) { s.Shell.Taper.Enabled = v })
}

// SetTaperingIntensity sets the shell tapering intensity.
func (a *Assembly) SetTaperingIntensity(v float32) {
	a.update(func(s *Settings) { s.Shell.Taper.Intensity = v })
}

// SetTaperingCurve sets the shell curve by name. Unknown names are ignored
// and reported as false.
func (a *Assembly) SetTaperingCurve(name string) bool {
	c, ok := taper.ParseCurve(name)
	if ok {
		a.update(func(s *Settings) { s.Shell.Taper.Curve = c })
	}
	return ok
}

// SetTaperingMethod sets the shell method by name. Unknown names are
// ignored and reported as false.
func (a *Assembly) SetTaperingMethod(name string) bool {
	m, ok := taper.ParseMethod(name)
	if ok {
		a.update(func(s *Settings) { s.Shell.Taper.Method = m })
	}
	return ok
}

// Tapering returns the shell tapering settings.
func (a *Assembly) Tapering() taper.Config { return a.settings.Shell.Taper }

// ApplyTaperingPreset applies a named shell tapering preset with a single
// regeneration.
func (a *Assembly) ApplyTaperingPreset(name string) bool {
	p, ok := taper.LookupPreset(name)
	if ok {
		a.update(func(s *Settings) { s.Shell.Taper = p.Apply(s.Shell.Taper) })
	}
	return ok
}

// Fins.

// SetFinsEnabled turns fin generation on or off.
func (a *Assembly) SetFinsEnabled(v bool) {
	a.update(func(s *Settings) { s.FinsEnabled = v })
}

// FinsEnabled reports whether fins are generated.
func (a *Assembly) FinsEnabled() bool { return a.settings.FinsEnabled }

// SetFinLength sets how far fins extrude from their edge.
func (a *Assembly) SetFinLength(v float32) {
	a.update(func(s *Settings) { s.Fin.Length = v })
}

// FinLength returns the fin length.
func (a *Assembly) FinLength() float32 { return a.settings.Fin.Length }

// SetFinCount sets the maximum number of fins.
func (a *Assembly) SetFinCount(n int) {
	a.update(func(s *Settings) { s.Fin.MaxCount = n })
}

// FinCount returns the maximum number of fins.
func (a *Assembly) FinCount() int { return a.settings.Fin.MaxCount }

// SetFinTaperingEnabled turns fin tapering on or off.
func (a *Assembly) SetFinTaperingEnabled(v bool) {
	a.update(func(s *Settings) { s.Fin.Taper.Enabled = v })
}

// SetFinTaperingIntensity sets the fin tapering intensity.
func (a *Assembly) SetFinTaperingIntensity(v float32) {
	a.update(func(s *Settings) { s.Fin.Taper.Intensity = v })
}

// SetFinTaperingCurve sets the fin curve by name. Unknown names are
// ignored and reported as false.
func (a *Assembly) SetFinTaperingCurve(name string) bool {
	c, ok := taper.ParseCurve(name)
	if ok {
		a.update(func(s *Settings) { s.Fin.Taper.Curve = c })
	}
	return ok
}

// SetFinTaperingMethod sets the fin method by name. Unknown names are
// ignored and reported as false.
func (a *Assembly) SetFinTaperingMethod(name string) bool {
	m, ok := taper.ParseMethod(name)
	if ok {
		a.update(func(s *Settings) { s.Fin.Taper.Method = m })
	}
	return ok
}

// FinTapering returns the fin tapering settings.
func (a *Assembly) FinTapering() taper.Config { return a.settings.Fin.Taper }

// ApplyFinTaperingPreset applies a named fin tapering preset with a single
// regeneration.
func (a *Assembly) ApplyFinTaperingPreset(name string) bool {
	p, ok := taper.LookupPreset(name)
	if ok {
		a.update(func(s *Settings) { s.Fin.Taper = p.Apply(s.Fin.Taper) })
	}
	return ok
}

// Wind. None of these regenerate geometry.

func (a *Assembly) setWind(fn func(*wind.Params)) {
	a.update(func(s *Settings) { fn(&s.Wind) })
}

// SetWindEnabled turns the wind on or off.
func (a *Assembly) SetWindEnabled(v bool) {
	a.setWind(func(p *wind.Params) { p.Enabled = v })
}

// SetWindDirection sets the wind direction.
func (a *Assembly) SetWindDirection(v math.Vec3) {
	a.setWind(func(p *wind.Params) { p.Direction = v })
}

// SetWindStrength sets the base wind strength.
func (a *Assembly) SetWindStrength(v float32) {
	a.setWind(func(p *wind.Params) { p.Strength = v })
}

// SetTurbulenceIntensity sets how strongly turbulence adds to the wind.
func (a *Assembly) SetTurbulenceIntensity(v float32) {
	a.setWind(func(p *wind.Params) { p.TurbulenceIntensity = v })
}

// SetTurbulenceFrequency sets the base turbulence frequency.
func (a *Assembly) SetTurbulenceFrequency(v float32) {
	a.setWind(func(p *wind.Params) { p.TurbulenceFrequency = v })
}

// SetGustStrength sets the gust strength.
func (a *Assembly) SetGustStrength(v float32) {
	a.setWind(func(p *wind.Params) { p.GustStrength = v })
}

// SetGustFrequency sets how often gusts arrive.
func (a *Assembly) SetGustFrequency(v float32) {
	a.setWind(func(p *wind.Params) { p.GustFrequency = v })
}

// SetGustDuration sets the gust duration factor.
func (a *Assembly) SetGustDuration(v float32) {
	a.setWind(func(p *wind.Params) { p.GustDuration = v })
}

// SetWindDampening sets the factor applied to the summed force.
func (a *Assembly) SetWindDampening(v float32) {
	a.setWind(func(p *wind.Params) { p.Dampening = v })
}

// SetWindResponsiveness sets how quickly the force follows its target.
func (a *Assembly) SetWindResponsiveness(v float32) {
	a.setWind(func(p *wind.Params) { p.Responsiveness = v })
}

// SetWindRandomness sets the per-strand variation used by the shaders.
func (a *Assembly) SetWindRandomness(v float32) {
	a.setWind(func(p *wind.Params) { p.Randomness = v })
}

// SetAnimationSpeed sets how fast wind time advances.
func (a *Assembly) SetAnimationSpeed(v float32) {
	a.setWind(func(p *wind.Params) { p.AnimationSpeed = v })
}

// ApplyWindPreset replaces all wind parameters with a named preset.
func (a *Assembly) ApplyWindPreset(name string) bool {
	p, ok := wind.ParsePreset(name)
	if ok {
		a.update(func(s *Settings) { s.Wind = p })
	}
	return ok
}

package taper

// Preset is a named tapering bundle. Applying it keeps the Method of the
// target configuration.
type Preset struct {
	Enabled   bool
	Intensity float32
	Curve     Curve
}

var presets = map[string]Preset{
	"none":     {Enabled: false, Intensity: 0, Curve: CurveQuadratic},
	"subtle":   {Enabled: true, Intensity: 0.2, Curve: CurveLinear},
	"natural":  {Enabled: true, Intensity: 0.5, Curve: CurveQuadratic},
	"pointed":  {Enabled: true, Intensity: 0.75, Curve: CurveExponential},
	"dramatic": {Enabled: true, Intensity: 0.95, Curve: CurveLinear},
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the known preset names in a stable order.
func PresetNames() []string {
	return []string{"none", "subtle", "natural", "pointed", "dramatic"}
}

// Apply returns cfg with the preset's fields set.
func (p Preset) Apply(cfg Config) Config {
	cfg.Enabled = p.Enabled
	cfg.Intensity = p.Intensity
	cfg.Curve = p.Curve
	return cfg
}

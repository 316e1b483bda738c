package wind

import "github.com/Faultbox/midgard-fur/pkg/math"

var presets = map[string]Params{
	// calm has no force term at all and reacts instantly, so it never
	// produces a force.
	"calm": {
		Enabled:             true,
		Direction:           math.V3(1, 0, 0),
		Strength:            0,
		TurbulenceIntensity: 0,
		TurbulenceFrequency: 0.5,
		GustStrength:        0,
		GustFrequency:       0.2,
		GustDuration:        3,
		Dampening:           1,
		Responsiveness:      1,
		Randomness:          0.1,
		AnimationSpeed:      0.5,
	},
	"gentleBreeze": {
		Enabled:             true,
		Direction:           math.V3(1, 0, 0.3),
		Strength:            0.3,
		TurbulenceIntensity: 0.2,
		TurbulenceFrequency: 0.8,
		GustStrength:        0.2,
		GustFrequency:       0.3,
		GustDuration:        2,
		Dampening:           0.9,
		Responsiveness:      1,
		Randomness:          0.3,
		AnimationSpeed:      1,
	},
	"strongWind": {
		Enabled:             true,
		Direction:           math.V3(1, 0.1, 0.2),
		Strength:            1.2,
		TurbulenceIntensity: 0.5,
		TurbulenceFrequency: 1.5,
		GustStrength:        0.8,
		GustFrequency:       0.8,
		GustDuration:        1.5,
		Dampening:           0.8,
		Responsiveness:      1.5,
		Randomness:          0.5,
		AnimationSpeed:      1.5,
	},
	"storm": {
		Enabled:             true,
		Direction:           math.V3(1, 0.2, 0.5),
		Strength:            2,
		TurbulenceIntensity: 0.9,
		TurbulenceFrequency: 3,
		GustStrength:        1.8,
		GustFrequency:       1.5,
		GustDuration:        1,
		Dampening:           0.7,
		Responsiveness:      2.5,
		Randomness:          0.8,
		AnimationSpeed:      2.5,
	},
}

// ParsePreset returns the parameter bundle for a preset name.
func ParsePreset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the preset names from calmest to strongest.
func PresetNames() []string {
	return []string{"calm", "gentleBreeze", "strongWind", "storm"}
}

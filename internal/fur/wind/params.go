// Package wind models the time-varying force that animates shells and fins.
//
// State is a value: setters and Advance return a new State and never modify
// the receiver, so a frame's wind can be computed, inspected and discarded
// without touching the state other components observe.
package wind

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Params are the user-facing wind controls.
type Params struct {
	Enabled   bool
	Direction math.Vec3 // each axis in [-1, 1]
	Strength  float32   // [0, 2]

	TurbulenceIntensity float32 // [0, 1]
	TurbulenceFrequency float32 // [0.1, 5]

	GustStrength  float32 // [0, 2]
	GustFrequency float32 // [0.1, 3]
	GustDuration  float32 // [0.5, 5]

	Dampening      float32 // [0.1, 1]
	Responsiveness float32 // [0.1, 3]

	// Randomness scales per-strand variation in the shaders.
	Randomness     float32 // [0, 1]
	AnimationSpeed float32 // [0.1, 3]
}

// DefaultParams returns a moderate breeze along +X.
func DefaultParams() Params {
	return Params{
		Enabled:             true,
		Direction:           math.V3(1, 0, 0),
		Strength:            0.5,
		TurbulenceIntensity: 0.3,
		TurbulenceFrequency: 1,
		GustStrength:        0.3,
		GustFrequency:       0.5,
		GustDuration:        2,
		Dampening:           0.8,
		Responsiveness:      1,
		Randomness:          0.3,
		AnimationSpeed:      1,
	}
}

// Clamp returns p with every field limited to its range. NaN fields take
// the default value.
func (p Params) Clamp() Params {
	d := DefaultParams()
	p.Direction = math.Vec3{
		X: clampOr(p.Direction.X, -1, 1, d.Direction.X),
		Y: clampOr(p.Direction.Y, -1, 1, d.Direction.Y),
		Z: clampOr(p.Direction.Z, -1, 1, d.Direction.Z),
	}
	p.Strength = clampOr(p.Strength, 0, 2, d.Strength)
	p.TurbulenceIntensity = clampOr(p.TurbulenceIntensity, 0, 1, d.TurbulenceIntensity)
	p.TurbulenceFrequency = clampOr(p.TurbulenceFrequency, 0.1, 5, d.TurbulenceFrequency)
	p.GustStrength = clampOr(p.GustStrength, 0, 2, d.GustStrength)
	p.GustFrequency = clampOr(p.GustFrequency, 0.1, 3, d.GustFrequency)
	p.GustDuration = clampOr(p.GustDuration, 0.5, 5, d.GustDuration)
	p.Dampening = clampOr(p.Dampening, 0.1, 1, d.Dampening)
	p.Responsiveness = clampOr(p.Responsiveness, 0.1, 3, d.Responsiveness)
	p.Randomness = clampOr(p.Randomness, 0, 1, d.Randomness)
	p.AnimationSpeed = clampOr(p.AnimationSpeed, 0.1, 3, d.AnimationSpeed)
	return p
}

func clampOr(v, lo, hi, fallback float32) float32 {
	if math32.IsNaN(v) {
		return fallback
	}
	return math.Clamp(v, lo, hi)
}

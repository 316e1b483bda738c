package wind

import (
	"math/rand/v2"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// DefaultSeed seeds the per-axis noise phases when the caller has no
// preference.
const DefaultSeed uint64 = 0x5eed_f0e1

// seedRange bounds the per-axis noise phase offsets.
const seedRange = 100

// State is the wind simulation at one point in time.
type State struct {
	params Params
	seeds  [3]float32
	time   float32
	force  math.Vec3
}

// NewState returns a state at time zero with clamped params and noise
// phases derived from seed. Equal seeds give equal simulations.
func NewState(params Params, seed uint64) State {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var seeds [3]float32
	for i := range seeds {
		seeds[i] = r.Float32() * seedRange
	}
	return State{params: params.Clamp(), seeds: seeds}
}

// Params returns the current parameters.
func (s State) Params() Params { return s.params }

// Time returns the accumulated simulation time.
func (s State) Time() float32 { return s.time }

// Force returns the force computed by the last Advance.
func (s State) Force() math.Vec3 { return s.force }

// Seeds returns the per-axis noise phases.
func (s State) Seeds() [3]float32 { return s.seeds }

// Configure replaces all parameters at once.
func (s State) Configure(p Params) State {
	s.params = p.Clamp()
	if !s.params.Enabled {
		s.force = math.Vec3{}
	}
	return s
}

func (s State) with(fn func(*Params)) State {
	p := s.params
	fn(&p)
	return s.Configure(p)
}

// WithEnabled returns s with the wind switched on or off.
func (s State) WithEnabled(v bool) State {
	return s.with(func(p *Params) { p.Enabled = v })
}

// WithDirection returns s with a new direction.
func (s State) WithDirection(v math.Vec3) State {
	return s.with(func(p *Params) { p.Direction = v })
}

// WithStrength returns s with a new base strength.
func (s State) WithStrength(v float32) State {
	return s.with(func(p *Params) { p.Strength = v })
}

// WithTurbulence returns s with new turbulence intensity and frequency.
func (s State) WithTurbulence(intensity, frequency float32) State {
	return s.with(func(p *Params) {
		p.TurbulenceIntensity = intensity
		p.TurbulenceFrequency = frequency
	})
}

// WithGust returns s with new gust strength, frequency and duration.
func (s State) WithGust(strength, frequency, duration float32) State {
	return s.with(func(p *Params) {
		p.GustStrength = strength
		p.GustFrequency = frequency
		p.GustDuration = duration
	})
}

// WithDampening returns s with a new dampening factor.
func (s State) WithDampening(v float32) State {
	return s.with(func(p *Params) { p.Dampening = v })
}

// WithResponsiveness returns s with a new responsiveness.
func (s State) WithResponsiveness(v float32) State {
	return s.with(func(p *Params) { p.Responsiveness = v })
}

// WithRandomness returns s with a new randomness intensity.
func (s State) WithRandomness(v float32) State {
	return s.with(func(p *Params) { p.Randomness = v })
}

// WithAnimationSpeed returns s with a new animation speed.
func (s State) WithAnimationSpeed(v float32) State {
	return s.with(func(p *Params) { p.AnimationSpeed = v })
}

// Target returns the unfiltered force at time t.
func (s State) Target(t float32) math.Vec3 {
	p := s.params
	base := p.Direction.Scale(p.Strength)
	turb := Turbulence(t, p.TurbulenceFrequency, p.TurbulenceIntensity, s.seeds)
	gust := Gust(t, p.Direction, p.GustStrength, p.GustFrequency, p.GustDuration)
	return base.Add(turb).Add(gust).Scale(p.Dampening)
}

// Advance returns the state dt seconds later. A disabled state keeps its
// time and has zero force. With responsiveness other than 1 the force
// follows the target through a first-order low-pass filter; otherwise it
// jumps to the target.
func (s State) Advance(dt float32) State {
	if !s.params.Enabled {
		s.force = math.Vec3{}
		return s
	}
	dt = max(dt, 0)
	s.time += dt * s.params.AnimationSpeed

	target := s.Target(s.time)
	if s.params.Responsiveness == 1 {
		s.force = target
		return s
	}
	alpha := min(dt*s.params.Responsiveness*10, 1)
	s.force = s.force.Lerp(target, alpha)
	return s
}

// Uniforms is the per-frame wind block consumed by the fur shaders.
type Uniforms struct {
	Direction           math.Vec3
	Force               math.Vec3
	Strength            float32
	Time                float32
	Enabled             bool
	TurbulenceIntensity float32
	GustStrength        float32
	RandomnessIntensity float32
}

// Uniforms returns the shader inputs for s.
func (s State) Uniforms() Uniforms {
	return Uniforms{
		Direction:           s.params.Direction,
		Force:               s.force,
		Strength:            s.params.Strength,
		Time:                s.time,
		Enabled:             s.params.Enabled,
		TurbulenceIntensity: s.params.TurbulenceIntensity,
		GustStrength:        s.params.GustStrength,
		RandomnessIntensity: s.params.Randomness,
	}
}

package wind

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

func advanceN(s State, n int, dt float32) State {
	for range n {
		s = s.Advance(dt)
	}
	return s
}

func TestDisabledHasNoForce(t *testing.T) {
	s := NewState(DefaultParams(), DefaultSeed)
	s = advanceN(s, 30, 0.016)
	require.False(t, s.Force().IsZero())
	before := s.Time()

	s = s.WithEnabled(false)
	for _, dt := range []float32{0, 0.016, 1, 100} {
		s = s.Advance(dt)
		assert.True(t, s.Force().IsZero(), "dt=%v", dt)
		assert.Equal(t, before, s.Time(), "time must hold while disabled")
	}
}

func TestZeroStrengthStaysZero(t *testing.T) {
	p := DefaultParams()
	p.Strength = 0
	p.TurbulenceIntensity = 0
	p.GustStrength = 0
	s := NewState(p, DefaultSeed)
	for i := range 100 {
		s = s.Advance(0.016)
		assert.True(t, s.Force().IsZero(), "step %d", i)
	}
}

func TestCalmPresetNeverBlows(t *testing.T) {
	calm, ok := ParsePreset("calm")
	require.True(t, ok)

	s := NewState(DefaultParams(), 7)
	s = advanceN(s, 20, 0.05)
	s = s.Configure(calm)
	for i := range 200 {
		s = s.Advance(0.033)
		assert.True(t, s.Force().IsZero(), "step %d", i)
	}
}

func TestTimeAccumulatesWithAnimationSpeed(t *testing.T) {
	p := DefaultParams()
	p.AnimationSpeed = 2
	s := NewState(p, DefaultSeed)
	s = advanceN(s, 10, 0.1)
	assert.InDelta(t, 2.0, s.Time(), 1e-5)

	s = s.Advance(-1)
	assert.InDelta(t, 2.0, s.Time(), 1e-5, "negative dt is ignored")
}

func TestAdvanceIsPure(t *testing.T) {
	s := NewState(DefaultParams(), DefaultSeed)
	next := s.Advance(0.5)
	assert.Equal(t, float32(0), s.Time())
	assert.True(t, s.Force().IsZero())
	assert.NotEqual(t, s.Time(), next.Time())
}

func TestDeterministicSeeds(t *testing.T) {
	a := advanceN(NewState(DefaultParams(), 42), 50, 0.02)
	b := advanceN(NewState(DefaultParams(), 42), 50, 0.02)
	c := advanceN(NewState(DefaultParams(), 43), 50, 0.02)
	assert.Equal(t, a.Force(), b.Force())
	assert.Equal(t, a.Seeds(), b.Seeds())
	assert.NotEqual(t, a.Seeds(), c.Seeds())
	for _, seed := range a.Seeds() {
		assert.GreaterOrEqual(t, seed, float32(0))
		assert.Less(t, seed, float32(seedRange))
	}
}

func TestBaseForceOnly(t *testing.T) {
	p := DefaultParams()
	p.Direction = math.V3(0, 0, 1)
	p.Strength = 1.5
	p.TurbulenceIntensity = 0
	p.GustStrength = 0
	p.Dampening = 0.5
	s := NewState(p, DefaultSeed).Advance(0.1)
	assert.InDelta(t, 0.75, s.Force().Z, 1e-6)
	assert.InDelta(t, 0, s.Force().X, 1e-6)
}

func TestResponsivenessLowPass(t *testing.T) {
	p := DefaultParams()
	p.TurbulenceIntensity = 0
	p.GustStrength = 0
	p.Responsiveness = 0.5
	s := NewState(p, DefaultSeed)
	target := p.Direction.Scale(p.Strength * p.Dampening)

	s = s.Advance(0.1) // alpha = 0.5
	assert.InDelta(t, target.X*0.5, s.Force().X, 1e-6)
	s = s.Advance(0.1)
	assert.InDelta(t, target.X*0.75, s.Force().X, 1e-6)
	s = advanceN(s, 60, 0.1)
	assert.InDelta(t, target.X, s.Force().X, 1e-4)

	// alpha saturates at 1
	p.Responsiveness = 3
	s = NewState(p, DefaultSeed).Advance(1)
	assert.InDelta(t, target.X, s.Force().X, 1e-6)
}

func TestClamp(t *testing.T) {
	p := Params{
		Direction:           math.V3(-5, 5, math32.NaN()),
		Strength:            9,
		TurbulenceIntensity: -1,
		TurbulenceFrequency: 0,
		GustStrength:        3,
		GustFrequency:       10,
		GustDuration:        0,
		Dampening:           0,
		Responsiveness:      math32.NaN(),
		Randomness:          2,
		AnimationSpeed:      0,
	}.Clamp()
	assert.Equal(t, math.V3(-1, 1, 0), p.Direction)
	assert.Equal(t, float32(2), p.Strength)
	assert.Equal(t, float32(0), p.TurbulenceIntensity)
	assert.Equal(t, float32(0.1), p.TurbulenceFrequency)
	assert.Equal(t, float32(2), p.GustStrength)
	assert.Equal(t, float32(3), p.GustFrequency)
	assert.Equal(t, float32(0.5), p.GustDuration)
	assert.Equal(t, float32(0.1), p.Dampening)
	assert.Equal(t, float32(1), p.Responsiveness)
	assert.Equal(t, float32(1), p.Randomness)
	assert.Equal(t, float32(0.1), p.AnimationSpeed)

	s := NewState(DefaultParams(), DefaultSeed).WithStrength(50)
	assert.Equal(t, float32(2), s.Params().Strength)
}

func TestGustEnvelopeBounded(t *testing.T) {
	for i := range 500 {
		tm := float32(i) * 0.037
		e := GustEnvelope(tm, 0.7, 2.5)
		assert.GreaterOrEqual(t, e, float32(0))
		assert.LessOrEqual(t, e, float32(1))
	}
	assert.Equal(t, float32(0.25), GustEnvelope(0, 1, 1))
}

func TestGustValue(t *testing.T) {
	// envelope (0.5+0.5·sin 0.5)^2 · exp(-2|sin 1|) at t=1, freq 0.5, duration 2
	assert.InDelta(t, 0.1016796, GustEnvelope(1, 0.5, 2), 1e-6)

	// direction is normalized before the wobble is added
	g := Gust(1, math.V3(0, 0, 2), 0.5, 0.5, 2)
	assert.InDelta(t, 0.0050416, g.X, 1e-6)
	assert.InDelta(t, 0.0037912, g.Y, 1e-6)
	assert.InDelta(t, 0.0491962, g.Z, 1e-6)

	assert.True(t, Gust(1, math.V3(0, 0, 1), 0, 0.5, 2).IsZero())
}

func TestTargetSumsAllTerms(t *testing.T) {
	p := DefaultParams() // strength 0.5, turbulence 0.3, gust 0.3, dampening 0.8
	s := State{params: p.Clamp(), seeds: [3]float32{1, 2, 3}}

	// (base + turbulence + gust) · dampening at t=2
	want := math.V3(0.3827523, -0.1653748, -0.1703907)
	got := s.Target(2)
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)

	// responsiveness 1 jumps straight to the target
	s = s.Advance(2)
	assert.InDelta(t, want.X, s.Force().X, 1e-5)
	assert.InDelta(t, want.Y, s.Force().Y, 1e-5)
	assert.InDelta(t, want.Z, s.Force().Z, 1e-5)
}

func TestTurbulenceScalesWithIntensity(t *testing.T) {
	seeds := [3]float32{1, 2, 3}
	full := Turbulence(1.3, 1, 1, seeds)
	half := Turbulence(1.3, 1, 0.5, seeds)
	assert.InDelta(t, full.X*0.5, half.X, 1e-6)
	assert.InDelta(t, full.Y*0.5, half.Y, 1e-6)
	assert.InDelta(t, full.Z*0.5, half.Z, 1e-6)
	assert.True(t, Turbulence(1.3, 1, 0, seeds).IsZero())
	// amplitudes sum to 1.75
	assert.LessOrEqual(t, math32.Abs(full.X), float32(1.75))
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		p, ok := ParsePreset(name)
		require.True(t, ok, name)
		assert.Equal(t, p, p.Clamp(), "%s must already be in range", name)
	}
	_, ok := ParsePreset("hurricane")
	assert.False(t, ok)
}

func TestUniforms(t *testing.T) {
	s := NewState(DefaultParams(), DefaultSeed).Advance(0.25)
	u := s.Uniforms()
	assert.Equal(t, s.Force(), u.Force)
	assert.Equal(t, s.Time(), u.Time)
	assert.True(t, u.Enabled)
	assert.Equal(t, DefaultParams().Randomness, u.RandomnessIntensity)
	assert.Equal(t, DefaultParams().GustStrength, u.GustStrength)
}

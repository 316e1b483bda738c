package taper

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

var allCurves = []Curve{CurveLinear, CurveQuadratic, CurveExponential}

func TestScaleInactiveIsOne(t *testing.T) {
	configs := []Config{
		{Enabled: false, Intensity: 0.8, Curve: CurveLinear},
		{Enabled: true, Intensity: 0, Curve: CurveExponential},
		{},
	}
	for _, cfg := range configs {
		for p := float32(0); p <= 1; p += 0.125 {
			assert.Equal(t, float32(1), Scale(p, cfg), "cfg=%+v p=%v", cfg, p)
		}
	}
}

func TestScaleEndpoints(t *testing.T) {
	for _, curve := range allCurves {
		for _, intensity := range []float32{0.1, 0.5, 1} {
			cfg := Config{Enabled: true, Intensity: intensity, Curve: curve}
			assert.Equal(t, float32(1), Scale(0, cfg), "base must not taper (%v)", curve)
			assert.InDelta(t, 1-intensity, Scale(1, cfg), 1e-6, "tip (%v)", curve)
		}
	}
}

func TestScaleCurves(t *testing.T) {
	tests := []struct {
		curve Curve
		want  float32
	}{
		{CurveLinear, 1 - 0.5*0.5},
		{CurveQuadratic, 1 - 0.25*0.5},
		{CurveExponential, 1 - math32.Pow(0.5, 2.5)*0.5},
	}
	for _, tt := range tests {
		t.Run(tt.curve.String(), func(t *testing.T) {
			cfg := Config{Enabled: true, Intensity: 0.5, Curve: tt.curve}
			assert.InDelta(t, tt.want, Scale(0.5, cfg), 1e-6)
		})
	}
}

func TestScaleMonotonicAndBounded(t *testing.T) {
	for _, curve := range allCurves {
		cfg := Config{Enabled: true, Intensity: 1, Curve: curve}
		prev := float32(2)
		for i := 0; i <= 20; i++ {
			s := Scale(float32(i)/20, cfg)
			assert.GreaterOrEqual(t, s, float32(0))
			assert.LessOrEqual(t, s, float32(1))
			assert.LessOrEqual(t, s, prev)
			prev = s
		}
	}
}

func TestScaleClampsInputs(t *testing.T) {
	cfg := Config{Enabled: true, Intensity: 3, Curve: CurveLinear}
	assert.Equal(t, float32(0), Scale(1, cfg))
	assert.Equal(t, float32(0), Scale(4, cfg))
	assert.Equal(t, float32(1), Scale(-1, cfg))
}

func TestDefaultCurveIsQuadratic(t *testing.T) {
	var cfg Config
	assert.Equal(t, CurveQuadratic, cfg.Curve)
	cfg.Enabled, cfg.Intensity = true, 1
	assert.InDelta(t, 0.75, Scale(0.5, cfg), 1e-6)
}

func TestParseEnums(t *testing.T) {
	for _, curve := range allCurves {
		got, ok := ParseCurve(curve.String())
		assert.True(t, ok)
		assert.Equal(t, curve, got)
	}
	_, ok := ParseCurve("cubic")
	assert.False(t, ok)

	for _, m := range []Method{MethodCentroid, MethodNormal, MethodHybrid} {
		got, ok := ParseMethod(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok = ParseMethod("radial")
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	c := Config{Intensity: math32.NaN(), Curve: Curve(9), Method: Method(-1)}.Clamp()
	assert.Equal(t, float32(0), c.Intensity)
	assert.Equal(t, CurveQuadratic, c.Curve)
	assert.Equal(t, MethodCentroid, c.Method)

	assert.Equal(t, float32(1), Config{Intensity: 7}.Clamp().Intensity)
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		_, ok := LookupPreset(name)
		assert.True(t, ok, name)
	}
	_, ok := LookupPreset("fluffy")
	assert.False(t, ok)

	base := Config{Method: MethodHybrid}
	got := presets["pointed"].Apply(base)
	assert.True(t, got.Enabled)
	assert.Equal(t, float32(0.75), got.Intensity)
	assert.Equal(t, CurveExponential, got.Curve)
	assert.Equal(t, MethodHybrid, got.Method, "presets keep the method")
}

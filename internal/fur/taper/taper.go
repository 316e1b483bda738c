// Package taper implements the tapering curve shared by shell layers and
// fins: geometry narrows toward its outer extent by a scale factor that
// depends on the normalized position along that extent.
package taper

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Curve selects how tapering grows with normalized position.
// The zero value is CurveQuadratic.
type Curve int

const (
	CurveQuadratic Curve = iota
	CurveLinear
	CurveExponential
)

// exponentialPower is the exponent of CurveExponential.
const exponentialPower = 2.5

// String returns the configuration name of the curve.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	default:
		return "quadratic"
	}
}

// ParseCurve parses a curve name. ok is false for unknown names.
func ParseCurve(s string) (c Curve, ok bool) {
	switch s {
	case "linear":
		return CurveLinear, true
	case "quadratic":
		return CurveQuadratic, true
	case "exponential":
		return CurveExponential, true
	}
	return CurveQuadratic, false
}

// Method records which geometric reference tapering is computed against.
// Every method currently scales about the face centroid (shells) or the
// fin centerline (fins); the value is kept for shading and configuration.
type Method int

const (
	MethodCentroid Method = iota
	MethodNormal
	MethodHybrid
)

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case MethodNormal:
		return "normal"
	case MethodHybrid:
		return "hybrid"
	default:
		return "centroid"
	}
}

// ParseMethod parses a method name. ok is false for unknown names.
func ParseMethod(s string) (m Method, ok bool) {
	switch s {
	case "centroid":
		return MethodCentroid, true
	case "normal":
		return MethodNormal, true
	case "hybrid":
		return MethodHybrid, true
	}
	return MethodCentroid, false
}

// Config holds tapering settings.
type Config struct {
	Enabled   bool
	Intensity float32 // [0, 1]
	Curve     Curve
	Method    Method
}

// Clamp returns c with Intensity limited to [0, 1] and unknown enum values
// replaced by their defaults.
func (c Config) Clamp() Config {
	if math32.IsNaN(c.Intensity) {
		c.Intensity = 0
	}
	c.Intensity = math.Clamp(c.Intensity, 0, 1)
	if c.Curve < CurveQuadratic || c.Curve > CurveExponential {
		c.Curve = CurveQuadratic
	}
	if c.Method < MethodCentroid || c.Method > MethodHybrid {
		c.Method = MethodCentroid
	}
	return c
}

// Active reports whether c narrows geometry at all.
func (c Config) Active() bool {
	return c.Enabled && c.Intensity > 0
}

// CurveFactor evaluates the curve at pos, clamped to [0, 1].
func CurveFactor(pos float32, curve Curve) float32 {
	pos = math.Clamp(pos, 0, 1)
	switch curve {
	case CurveLinear:
		return pos
	case CurveExponential:
		return math32.Pow(pos, exponentialPower)
	default:
		return pos * pos
	}
}

// Scale returns the tapering scale at a normalized position: 1 means full
// width and 0 a point. It is 1 when tapering is disabled or has zero
// intensity, 1 at pos 0, and 1-intensity at pos 1.
func Scale(pos float32, c Config) float32 {
	if !c.Active() {
		return 1
	}
	c = c.Clamp()
	return math.Clamp(1-CurveFactor(pos, c.Curve)*c.Intensity, 0, 1)
}

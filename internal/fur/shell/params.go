// Package shell builds the concentric offset layers that approximate fur
// volume. Every layer is an independent triangle soup displaced along the
// surface normals and optionally tapered per face.
package shell

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/internal/fur/taper"
)

// Parameter limits.
const (
	MinCount       = 8
	MaxCount       = 32
	MinSpacing     = 0.001
	MinMaxDistance = 0.01

	// offsetExponent spaces outer shells further apart than inner ones.
	offsetExponent = 1.2
)

// Params controls shell generation. Params is comparable and used as part
// of the pool key, so it must only hold value fields.
type Params struct {
	Count       int
	Spacing     float32 // carried to shading, see Layer.Spacing
	MaxDistance float32
	Taper       taper.Config
}

// DefaultParams returns the shell settings used by the viewer.
func DefaultParams() Params {
	return Params{
		Count:       16,
		Spacing:     0.02,
		MaxDistance: 0.1,
		Taper: taper.Config{
			Enabled:   true,
			Intensity: 0.3,
			Curve:     taper.CurveQuadratic,
			Method:    taper.MethodCentroid,
		},
	}
}

// Clamp returns p with every field in range.
func (p Params) Clamp() Params {
	d := DefaultParams()
	p.Count = min(max(p.Count, MinCount), MaxCount)
	if math32.IsNaN(p.Spacing) {
		p.Spacing = d.Spacing
	}
	if math32.IsNaN(p.MaxDistance) {
		p.MaxDistance = d.MaxDistance
	}
	p.Spacing = max(p.Spacing, MinSpacing)
	p.MaxDistance = max(p.MaxDistance, MinMaxDistance)
	p.Taper = p.Taper.Clamp()
	return p
}

// NormalizedLayer returns index/total.
func NormalizedLayer(index, total int) float32 {
	if total <= 0 {
		return 0
	}
	return float32(index) / float32(total)
}

// OffsetDistance returns how far a layer at normalized position norm sits
// from the surface.
func OffsetDistance(norm, maxDistance float32) float32 {
	return math32.Pow(norm, offsetExponent) * maxDistance
}

package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// SphericalUVs projects positions onto a sphere around center.
// u wraps around the Y axis, v runs from the south pole (0) to the north
// pole (1). Vertices at the center map to (0.5, 0.5).
func SphericalUVs(positions []math.Vec3, center math.Vec3) []math.Vec2 {
	uvs := make([]math.Vec2, len(positions))
	for i, p := range positions {
		d := p.Sub(center)
		l := d.Length()
		if l == 0 {
			uvs[i] = math.Vec2{X: 0.5, Y: 0.5}
			continue
		}
		u := 0.5 + math32.Atan2(d.Z, d.X)/(2*math32.Pi)
		v := 0.5 + math32.Asin(math.Clamp(d.Y/l, -1, 1))/math32.Pi
		uvs[i] = math.Vec2{X: math.Clamp(u, 0, 1), Y: math.Clamp(v, 0, 1)}
	}
	return uvs
}

package renderer

import (
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// Vertex is the interleaved GPU vertex layout shared by every fur pass.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Random   math.Vec3 // per-face perturbed normal; equals Normal when absent
}

// Attribute offsets in bytes.
const (
	offsetPosition = 0
	offsetNormal   = 3 * 4
	offsetUV       = 6 * 4
	offsetRandom   = 8 * 4
)

// Interleave packs g into the GPU vertex layout. Missing normals and UVs
// come out as zero.
func Interleave(g *mesh.Geometry) []Vertex {
	if g == nil || len(g.Positions) == 0 {
		return nil
	}

	out := make([]Vertex, len(g.Positions))
	for i, p := range g.Positions {
		v := Vertex{Position: p}
		if i < len(g.Normals) {
			v.Normal = g.Normals[i]
		}
		if i < len(g.UVs) {
			v.UV = g.UVs[i]
		}
		if i < len(g.RandomNormals) {
			v.Random = g.RandomNormals[i]
		} else {
			v.Random = v.Normal
		}
		out[i] = v
	}
	return out
}

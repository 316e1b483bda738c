package mesh

import (
	"github.com/Faultbox/midgard-fur/pkg/math"
)

// positionEpsilon is the quantization step used to weld coincident
// vertices of non-indexed meshes when smoothing normals.
const positionEpsilon float32 = 0.0001

// ComputeVertexNormals computes per-vertex normals from adjacent faces.
// Face normals are accumulated unnormalized so larger faces weigh more.
// For non-indexed meshes vertices sharing a position are averaged
// together so the result is smooth rather than faceted.
// Degenerate neighborhoods fall back to +Y.
func ComputeVertexNormals(m *Mesh) []math.Vec3 {
	sums := make([]math.Vec3, len(m.Positions))

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		p0 := m.Positions[tri[0]]
		p1 := m.Positions[tri[1]]
		p2 := m.Positions[tri[2]]
		n := FaceNormalUnnormalized(p0, p1, p2)
		for _, idx := range tri {
			sums[idx] = sums[idx].Add(n)
		}
	}

	if !m.Indexed() {
		weldSums(m.Positions, sums)
	}

	up := math.Vec3{Y: 1}
	normals := make([]math.Vec3, len(sums))
	for i, s := range sums {
		normals[i] = s.NormalizeOr(up)
	}
	return normals
}

// weldSums replaces every accumulated normal with the total over all
// vertices at the same quantized position.
func weldSums(positions, sums []math.Vec3) {
	groups := make(map[[3]int32][]int)
	for i, p := range positions {
		key := [3]int32{
			int32(p.X / positionEpsilon),
			int32(p.Y / positionEpsilon),
			int32(p.Z / positionEpsilon),
		}
		groups[key] = append(groups[key], i)
	}

	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		var total math.Vec3
		for _, i := range idxs {
			total = total.Add(sums[i])
		}
		for _, i := range idxs {
			sums[i] = total
		}
	}
}

// FaceNormalUnnormalized returns (p1-p0) x (p2-p0). Its length is twice
// the triangle area.
func FaceNormalUnnormalized(p0, p1, p2 math.Vec3) math.Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// FaceNormal returns the unit normal of a counter-clockwise triangle.
func FaceNormal(p0, p1, p2 math.Vec3) math.Vec3 {
	return FaceNormalUnnormalized(p0, p1, p2).Normalize()
}

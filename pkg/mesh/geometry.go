package mesh

import (
	"slices"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Geometry is a triangle soup: every 3 consecutive vertices form one
// triangle and no vertex is shared between triangles.
type Geometry struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2

	// RandomNormals holds per-face perturbed normals used for wind
	// variation. Only shell layers carry it; it never replaces Normals.
	RandomNormals []math.Vec3

	Bounds Bounds

	disposed bool
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// FaceCount returns the number of triangles.
func (g *Geometry) FaceCount() int {
	return len(g.Positions) / 3
}

// ComputeBounds recomputes Bounds from Positions.
func (g *Geometry) ComputeBounds() {
	b := EmptyBounds()
	for _, p := range g.Positions {
		b.Extend(p)
	}
	g.Bounds = b
}

// Clone returns a deep copy that shares no buffers with g.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{
		Positions:     slices.Clone(g.Positions),
		Normals:       slices.Clone(g.Normals),
		UVs:           slices.Clone(g.UVs),
		RandomNormals: slices.Clone(g.RandomNormals),
		Bounds:        g.Bounds,
		disposed:      g.disposed,
	}
}

// Append adds all triangles of other to g.
func (g *Geometry) Append(other *Geometry) {
	if len(g.Positions) == 0 {
		g.Bounds = EmptyBounds()
	}
	g.Positions = append(g.Positions, other.Positions...)
	g.Normals = append(g.Normals, other.Normals...)
	g.UVs = append(g.UVs, other.UVs...)
	g.RandomNormals = append(g.RandomNormals, other.RandomNormals...)
	g.Bounds = g.Bounds.Union(other.Bounds)
}

// Dispose releases the vertex buffers. A disposed geometry is empty.
func (g *Geometry) Dispose() {
	g.Positions = nil
	g.Normals = nil
	g.UVs = nil
	g.RandomNormals = nil
	g.Bounds = EmptyBounds()
	g.disposed = true
}

// Disposed reports whether Dispose has been called.
func (g *Geometry) Disposed() bool {
	return g.disposed
}

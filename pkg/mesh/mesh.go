// Package mesh provides the source triangle meshes consumed by the fur
// builders and the triangle-soup geometry they produce.
package mesh

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// Mesh validation errors. All of them wrap ErrInvalidMesh.
var (
	ErrInvalidMesh        = errors.New("invalid mesh")
	ErrMissingPositions   = fmt.Errorf("%w: missing position attribute", ErrInvalidMesh)
	ErrIncompleteTriangle = fmt.Errorf("%w: vertex or index count not a multiple of 3", ErrInvalidMesh)
	ErrIndexOutOfRange    = fmt.Errorf("%w: index out of range", ErrInvalidMesh)
	ErrAttributeMismatch  = fmt.Errorf("%w: attribute length does not match positions", ErrInvalidMesh)
)

var nextID atomic.Uint64

// Mesh is an immutable triangle mesh. When Indices is nil the mesh is
// non-indexed and every 3 consecutive vertices form one triangle.
//
// Meshes must not be modified after New; builders key caches on ID.
type Mesh struct {
	// ID identifies this mesh instance for caching. Unique per process.
	ID uint64

	Positions []math.Vec3
	Normals   []math.Vec3 // optional until Prepare
	UVs       []math.Vec2 // optional until Prepare
	Indices   []uint32    // nil for non-indexed meshes
}

// New creates a mesh from copies of the given attribute slices.
// A nil positions slice produces a mesh that fails Validate.
func New(positions, normals []math.Vec3, uvs []math.Vec2, indices []uint32) *Mesh {
	return &Mesh{
		ID:        nextID.Add(1),
		Positions: slices.Clone(positions),
		Normals:   slices.Clone(normals),
		UVs:       slices.Clone(uvs),
		Indices:   slices.Clone(indices),
	}
}

// Indexed reports whether the mesh uses an index list.
func (m *Mesh) Indexed() bool {
	return m.Indices != nil
}

// VertexCount returns the number of stored vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]uint32 {
	if m.Indexed() {
		return [3]uint32{m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]}
	}
	base := uint32(3 * t)
	return [3]uint32{base, base + 1, base + 2}
}

// HasNormals reports whether a complete normal attribute is present.
func (m *Mesh) HasNormals() bool {
	return len(m.Positions) > 0 && len(m.Normals) == len(m.Positions)
}

// HasUVs reports whether a complete UV attribute is present.
func (m *Mesh) HasUVs() bool {
	return len(m.Positions) > 0 && len(m.UVs) == len(m.Positions)
}

// Validate checks the structural invariants the builders rely on.
// A mesh with a present but empty position attribute is valid and empty.
func (m *Mesh) Validate() error {
	if m == nil || m.Positions == nil {
		return ErrMissingPositions
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrAttributeMismatch, len(m.Normals), len(m.Positions))
	}
	if len(m.UVs) != 0 && len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("%w: %d uvs for %d positions", ErrAttributeMismatch, len(m.UVs), len(m.Positions))
	}

	if !m.Indexed() {
		if len(m.Positions)%3 != 0 {
			return fmt.Errorf("%w: %d vertices", ErrIncompleteTriangle, len(m.Positions))
		}
		return nil
	}

	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(m.Indices))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d (vertex count %d)", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range m.Positions {
		b.Extend(p)
	}
	return b
}

// Soup returns an independent triangle-soup copy of the mesh: 3 fresh
// vertices per triangle with position, normal and uv copied from the
// referenced source vertices. Non-indexed meshes are copied as-is.
func (m *Mesh) Soup() *Geometry {
	if !m.Indexed() {
		g := &Geometry{
			Positions: slices.Clone(m.Positions),
			Normals:   slices.Clone(m.Normals),
			UVs:       slices.Clone(m.UVs),
		}
		g.ComputeBounds()
		return g
	}

	n := len(m.Indices)
	g := &Geometry{Positions: make([]math.Vec3, n)}
	hasNormals := m.HasNormals()
	hasUVs := m.HasUVs()
	if hasNormals {
		g.Normals = make([]math.Vec3, n)
	}
	if hasUVs {
		g.UVs = make([]math.Vec2, n)
	}

	for i, idx := range m.Indices {
		g.Positions[i] = m.Positions[idx]
		if hasNormals {
			g.Normals[i] = m.Normals[idx]
		}
		if hasUVs {
			g.UVs[i] = m.UVs[idx]
		}
	}
	g.ComputeBounds()
	return g
}

// Flatten returns a non-indexed copy of an indexed mesh.
// Non-indexed meshes are returned unchanged.
func (m *Mesh) Flatten() *Mesh {
	if !m.Indexed() {
		return m
	}
	g := m.Soup()
	return New(g.Positions, g.Normals, g.UVs, nil)
}

// unitTolerance is how far a squared normal length may stray from 1
// before Prepare renormalizes it.
const unitTolerance = 1e-4

// Prepare returns a mesh that satisfies the builder preconditions: normals
// present and unit length, UVs present. Missing normals are computed from
// adjacent faces and supplied normals are renormalized, falling back to
// the computed normal when they are zero. Missing UVs are synthesized by
// spherical projection. When nothing changes the mesh itself is returned.
func Prepare(m *Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.Positions) == 0 {
		return m, nil
	}

	normals, fixed := unitNormals(m)
	if !fixed && m.HasUVs() {
		return m, nil
	}
	uvs := m.UVs
	if !m.HasUVs() {
		uvs = SphericalUVs(m.Positions, m.Bounds().Center())
	}
	return New(m.Positions, normals, uvs, m.Indices), nil
}

// unitNormals returns unit normals for m and whether they differ from the
// stored attribute.
func unitNormals(m *Mesh) ([]math.Vec3, bool) {
	if !m.HasNormals() {
		return ComputeVertexNormals(m), true
	}
	var out, computed []math.Vec3
	for i, n := range m.Normals {
		if math.ApproxEqual(n.LengthSq(), 1, unitTolerance) {
			continue
		}
		if out == nil {
			out = slices.Clone(m.Normals)
			computed = ComputeVertexNormals(m)
		}
		out[i] = n.NormalizeOr(computed[i])
	}
	if out == nil {
		return m.Normals, false
	}
	return out, true
}

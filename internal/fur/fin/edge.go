package fin

import "github.com/Faultbox/midgard-fur/pkg/mesh"

// Edge is an unordered pair of source vertex indices stored with A <= B.
type Edge struct {
	A, B uint32
}

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b uint32) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// ExtractEdges returns every unique triangle edge of m in first-seen order:
// triangles in order, and (0,1), (1,2), (2,0) within a triangle. Edges
// shared by two triangles appear once. Non-indexed meshes resolve to their
// raw vertex indices, so their triangles never share edges.
func ExtractEdges(m *mesh.Mesh) []Edge {
	n := m.TriangleCount()
	seen := make(map[Edge]struct{}, n*3/2)
	edges := make([]Edge, 0, n*3/2)
	for t := range n {
		tri := m.Triangle(t)
		for c := range 3 {
			e := NewEdge(tri[c], tri[(c+1)%3])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Subsample caps edges at limit with a uniform stride: every
// floor(len/limit)-th edge is kept in order, truncated to limit. The
// selection depends only on the input order, never on randomness.
func Subsample(edges []Edge, limit int) []Edge {
	if limit <= 0 {
		return nil
	}
	if len(edges) <= limit {
		return edges
	}
	step := len(edges) / limit
	out := make([]Edge, 0, limit)
	for i := 0; i < len(edges) && len(out) < limit; i += step {
		out = append(out, edges[i])
	}
	return out
}

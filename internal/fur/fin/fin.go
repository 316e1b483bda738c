// Package fin extrudes thin tapered quads from mesh edges to suggest fur
// strands along silhouettes.
package fin

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// Fin count limits. Counts outside [MinCount, MaxCountLimit] are clamped.
const (
	MinCount        = 1000
	MaxCountLimit   = 50000
	DefaultMaxCount = 2000
)

// tipPosition is where along the fin the taper curve is evaluated.
const tipPosition = 1.0

// Params controls fin generation.
type Params struct {
	Length   float32
	MaxCount int
	Taper    taper.Config
}

// DefaultParams returns the fin settings used by the viewer.
func DefaultParams() Params {
	return Params{
		Length:   0.05,
		MaxCount: DefaultMaxCount,
		Taper: taper.Config{
			Enabled:   true,
			Intensity: 0.5,
			Curve:     taper.CurveLinear,
		},
	}
}

// Clamp returns p with every field in range.
func (p Params) Clamp() Params {
	if math32.IsNaN(p.Length) {
		p.Length = DefaultParams().Length
	}
	p.Length = max(p.Length, 0)
	p.MaxCount = min(max(p.MaxCount, MinCount), MaxCountLimit)
	p.Taper = p.Taper.Clamp()
	return p
}

// Fin is one extruded quad made of two triangles:
// base0, base1, tip0 and base1, tip1, tip0.
type Fin struct {
	Edge      Edge
	Positions [6]math.Vec3
	UVs       [6]math.Vec2

	// Normal is the flat face normal shared by all six vertices.
	Normal math.Vec3
	// Direction is the averaged endpoint normal the fin extrudes along.
	Direction math.Vec3
}

// Base returns the two edge endpoints.
func (f *Fin) Base() (math.Vec3, math.Vec3) {
	return f.Positions[0], f.Positions[1]
}

// Tip returns the two outer vertices.
func (f *Fin) Tip() (math.Vec3, math.Vec3) {
	return f.Positions[2], f.Positions[4]
}

var (
	baseUVs    = [2]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	fullTipUVs = [2]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}}
	taperedUVs = [2]math.Vec2{{X: 0.25, Y: 1}, {X: 0.75, Y: 1}}
)

// Build extrudes one fin per unique edge of src, capped at p.MaxCount.
// Missing normals are computed first. A mesh without edges gives no fins.
func Build(src *mesh.Mesh, p Params) ([]Fin, error) {
	prepared, edges, p, err := prepare(src, p)
	if err != nil {
		return nil, err
	}
	scale := taper.Scale(tipPosition, p.Taper)
	fins := make([]Fin, len(edges))
	for i, e := range edges {
		fins[i] = extrude(prepared, e, p.Length, scale, p.Taper.Enabled)
	}
	return fins, nil
}

func prepare(src *mesh.Mesh, p Params) (*mesh.Mesh, []Edge, Params, error) {
	prepared, err := mesh.Prepare(src)
	if err != nil {
		return nil, nil, p, fmt.Errorf("building fins: %w", err)
	}
	p = p.Clamp()
	return prepared, Subsample(ExtractEdges(prepared), p.MaxCount), p, nil
}

func extrude(m *mesh.Mesh, e Edge, length, scale float32, tapering bool) Fin {
	p0, p1 := m.Positions[e.A], m.Positions[e.B]
	n0, n1 := m.Normals[e.A], m.Normals[e.B]
	dir := n0.Add(n1).NormalizeOr(n0)
	extrusion := dir.Scale(length)

	var tip0, tip1 math.Vec3
	tipUVs := fullTipUVs
	if tapering && scale < 1 {
		tipMid := p0.Lerp(p1, 0.5).Add(extrusion)
		half := p1.Sub(p0).Scale(scale / 2)
		tip0, tip1 = tipMid.Sub(half), tipMid.Add(half)
		tipUVs = taperedUVs
	} else {
		tip0, tip1 = p0.Add(extrusion), p1.Add(extrusion)
	}

	return Fin{
		Edge:      e,
		Positions: [6]math.Vec3{p0, p1, tip0, p1, tip1, tip0},
		UVs:       [6]math.Vec2{baseUVs[0], baseUVs[1], tipUVs[0], baseUVs[1], tipUVs[1], tipUVs[0]},
		Normal:    p1.Sub(p0).Cross(dir).NormalizeOr(dir),
		Direction: dir,
	}
}

// Geometry merges fins into one triangle soup, 6 vertices per fin in fin
// order, with each fin's flat normal on all of its vertices.
func Geometry(fins []Fin) *mesh.Geometry {
	n := len(fins) * 6
	g := &mesh.Geometry{
		Positions: make([]math.Vec3, 0, n),
		Normals:   make([]math.Vec3, 0, n),
		UVs:       make([]math.Vec2, 0, n),
	}
	for i := range fins {
		f := &fins[i]
		g.Positions = append(g.Positions, f.Positions[:]...)
		g.UVs = append(g.UVs, f.UVs[:]...)
		for range 6 {
			g.Normals = append(g.Normals, f.Normal)
		}
	}
	g.ComputeBounds()
	return g
}

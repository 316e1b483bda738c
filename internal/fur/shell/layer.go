package shell

import (
	"fmt"

	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// Layer is one generated shell.
type Layer struct {
	Index           int // 1-based
	Total           int
	NormalizedLayer float32
	OffsetDistance  float32
	Spacing         float32
	TaperScale      float32

	Geometry *mesh.Geometry
}

// Clone returns a deep copy of l.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Geometry = l.Geometry.Clone()
	return &c
}

// Dispose releases the layer geometry.
func (l *Layer) Dispose() {
	if l.Geometry != nil {
		l.Geometry.Dispose()
	}
}

// randomNormalSeed projects a face centroid onto a fixed direction.
var randomNormalSeed = math.V3(12.9898, 78.233, 37.719)

// randomNormalAmount is the largest per-axis perturbation.
const randomNormalAmount = 0.3

// faceJitter returns the per-face random offset added to each corner normal.
// Equal centroids always give equal offsets.
func faceJitter(centroid math.Vec3) math.Vec3 {
	seed := centroid.Dot(randomNormalSeed)
	return math.V3(
		math.Hash(seed)*2-1,
		math.Hash(seed*1.1)*2-1,
		math.Hash(seed*1.3)*2-1,
	).Scale(randomNormalAmount)
}

// Build creates the shell at layerIndex (1-based, clamped to [1, Count]).
// The source mesh must have positions; missing normals and UVs are
// computed first.
func Build(src *mesh.Mesh, layerIndex int, p Params) (*Layer, error) {
	prepared, err := mesh.Prepare(src)
	if err != nil {
		return nil, fmt.Errorf("building shell layer: %w", err)
	}
	return build(prepared, layerIndex, p.Clamp()), nil
}

// build expects a prepared mesh and clamped params.
func build(src *mesh.Mesh, layerIndex int, p Params) *Layer {
	layerIndex = min(max(layerIndex, 1), p.Count)
	norm := NormalizedLayer(layerIndex, p.Count)
	offset := OffsetDistance(norm, p.MaxDistance)
	scale := taper.Scale(norm, p.Taper)
	tapered := p.Taper.Enabled && scale < 1

	g := src.Soup()
	g.RandomNormals = make([]math.Vec3, len(g.Positions))

	for f := 0; f+2 < len(g.Positions); f += 3 {
		pos := g.Positions[f : f+3]
		nrm := g.Normals[f : f+3]

		jitter := faceJitter(math.Centroid(pos[0], pos[1], pos[2]))
		for c := range 3 {
			g.RandomNormals[f+c] = nrm[c].Add(jitter).NormalizeOr(nrm[c])
			pos[c] = pos[c].Add(nrm[c].Scale(offset))
		}

		if tapered {
			center := math.Centroid(pos[0], pos[1], pos[2])
			for c := range 3 {
				pos[c] = center.Add(pos[c].Sub(center).Scale(scale))
			}
		}
	}
	g.ComputeBounds()

	return &Layer{
		Index:           layerIndex,
		Total:           p.Count,
		NormalizedLayer: norm,
		OffsetDistance:  offset,
		Spacing:         p.Spacing,
		TaperScale:      scale,
		Geometry:        g,
	}
}

// BuildAll creates layers 1 through p.Count.
func BuildAll(src *mesh.Mesh, p Params) ([]*Layer, error) {
	prepared, err := mesh.Prepare(src)
	if err != nil {
		return nil, fmt.Errorf("building shell layers: %w", err)
	}
	p = p.Clamp()

	layers := make([]*Layer, p.Count)
	for i := range layers {
		layers[i] = build(prepared, i+1, p)
	}
	return layers, nil
}

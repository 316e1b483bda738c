package fur

import (
	"github.com/Faultbox/midgard-fur/internal/fur/fin"
	"github.com/Faultbox/midgard-fur/internal/fur/shell"
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// ShellUniforms are the per-layer shading inputs.
type ShellUniforms struct {
	LayerIndex      int
	TotalLayers     int
	OffsetDistance  float32
	NormalizedLayer float32
	Spacing         float32
	TaperScale      float32
	Taper           taper.Config
	Opacity         float32
	Density         float32
}

// FinUniforms are the shading inputs shared by all fins.
type FinUniforms struct {
	Length     float32
	Count      int
	TaperScale float32
	Taper      taper.Config
	Opacity    float32
	Density    float32
}

// ShellItem is one drawable shell layer.
type ShellItem struct {
	Layer    *shell.Layer
	Uniforms ShellUniforms
	Wind     wind.Uniforms
}

// FinItem holds every fin merged into one geometry.
type FinItem struct {
	Fins     []fin.Fin
	Geometry *mesh.Geometry
	Uniforms FinUniforms
	Wind     wind.Uniforms
}

// DrawSet is everything the renderer needs for one frame. The geometry is
// owned by the Assembly and is disposed on the next regeneration.
type DrawSet struct {
	Base   *mesh.Mesh
	Shells []ShellItem
	Fins   *FinItem // nil when fins are disabled or there is no mesh
	Wind   wind.Uniforms
}

// Empty reports whether there is nothing to draw.
func (d DrawSet) Empty() bool {
	return d.Base == nil && len(d.Shells) == 0 && d.Fins == nil
}

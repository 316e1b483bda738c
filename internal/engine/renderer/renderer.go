// Package renderer draws a fur DrawSet with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/engine/lighting"
	"github.com/Faultbox/midgard-fur/internal/engine/renderer/shaders"
	"github.com/Faultbox/midgard-fur/internal/engine/shader"
	"github.com/Faultbox/midgard-fur/internal/fur"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/internal/logger"
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	BaseColor math.Vec3
	TipColor  math.Vec3
	LightDir  math.Vec3
}

// DefaultConfig returns a warm brown fur under a high afternoon sun.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:     width,
		Height:    height,
		BaseColor: math.V3(0.32, 0.2, 0.12),
		TipColor:  math.V3(0.78, 0.62, 0.45),
		LightDir:  lighting.LightDirection(225, 55),
	}
}

// Camera supplies the view and projection for a frame.
type Camera interface {
	ViewMatrix() math.Mat4
	Projection(aspect float32) math.Mat4
}

// Stats describes the last drawn frame.
type Stats struct {
	ShellLayers int
	Fins        int
	Vertices    int
	Uploads     int
	Released    int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	base  *shader.Program
	shell *shader.Program
	fin   *shader.Program

	buffers *bufferCache

	// the base mesh is drawn from its soup, rebuilt when the mesh changes
	baseSrc  *mesh.Mesh
	baseSoup *mesh.Geometry

	stats Stats
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{config: cfg, buffers: newBufferCache()}

	var err error
	if r.base, err = shader.NewProgram("base", shaders.BaseVertexShader, shaders.BaseFragmentShader); err != nil {
		return nil, err
	}
	if r.shell, err = shader.NewProgram("shell", shaders.ShellVertexShader, shaders.ShellFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.fin, err = shader.NewProgram("fin", shaders.FinVertexShader, shaders.FinFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.buffers != nil {
		r.buffers.clear()
	}
	for _, p := range []*shader.Program{r.base, r.shell, r.fin} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Draw renders ds: the opaque base first, then shells from the inside
// out with depth writes off, then fins.
func (r *Renderer) Draw(ds fur.DrawSet, cam Camera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if r.config.Height > 0 {
		aspect = float32(r.config.Width) / float32(r.config.Height)
	}
	view := cam.ViewMatrix()
	proj := cam.Projection(aspect)

	r.stats = Stats{}
	r.buffers.uploads = 0

	if ds.Base != nil {
		r.drawBase(ds.Base, view, proj)
	}

	if len(ds.Shells) > 0 || ds.Fins != nil {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)

		r.drawShells(ds.Shells, view, proj)
		if ds.Fins != nil {
			r.drawFins(ds.Fins, view, proj)
		}

		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	r.stats.Released = r.buffers.sweep()
	r.stats.Uploads = r.buffers.uploads
	if r.stats.Uploads > 0 || r.stats.Released > 0 {
		logger.Debug("GPU buffers updated",
			zap.Int("uploaded", r.stats.Uploads),
			zap.Int("released", r.stats.Released),
		)
	}
}

func (r *Renderer) drawBase(m *mesh.Mesh, view, proj math.Mat4) {
	if m != r.baseSrc {
		r.baseSrc = m
		r.baseSoup = m.Soup()
	}

	gl.Enable(gl.CULL_FACE)
	r.base.Use()
	r.base.SetMat4("uView", view)
	r.base.SetMat4("uProjection", proj)
	r.base.SetVec3("uLightDir", r.config.LightDir)
	r.base.SetVec3("uBaseColor", r.config.BaseColor)
	r.buffers.get(r.baseSoup).draw()
	r.stats.Vertices += r.baseSoup.VertexCount()
}

func (r *Renderer) drawShells(items []fur.ShellItem, view, proj math.Mat4) {
	if len(items) == 0 {
		return
	}

	gl.Enable(gl.CULL_FACE)
	p := r.shell
	p.Use()
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", proj)
	p.SetVec3("uLightDir", r.config.LightDir)
	p.SetVec3("uBaseColor", r.config.BaseColor)
	p.SetVec3("uTipColor", r.config.TipColor)
	setWind(p, items[0].Wind)

	for _, item := range items {
		u := item.Uniforms
		p.SetFloat("uNormalizedLayer", u.NormalizedLayer)
		p.SetFloat("uOffsetDistance", u.OffsetDistance)
		p.SetFloat("uTaperScale", u.TaperScale)
		p.SetFloat("uOpacity", u.Opacity)
		p.SetFloat("uDensity", u.Density)
		r.buffers.get(item.Layer.Geometry).draw()
		r.stats.ShellLayers++
		r.stats.Vertices += item.Layer.Geometry.VertexCount()
	}
}

func (r *Renderer) drawFins(item *fur.FinItem, view, proj math.Mat4) {
	if item.Geometry == nil || item.Geometry.VertexCount() == 0 {
		return
	}

	// fins are seen from both sides
	gl.Disable(gl.CULL_FACE)
	p := r.fin
	p.Use()
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", proj)
	p.SetVec3("uLightDir", r.config.LightDir)
	p.SetVec3("uBaseColor", r.config.BaseColor)
	p.SetVec3("uTipColor", r.config.TipColor)
	p.SetFloat("uFinLength", item.Uniforms.Length)
	p.SetFloat("uOpacity", item.Uniforms.Opacity)
	p.SetFloat("uDensity", item.Uniforms.Density)
	setWind(p, item.Wind)

	r.buffers.get(item.Geometry).draw()
	r.stats.Fins = len(item.Fins)
	r.stats.Vertices += item.Geometry.VertexCount()
	gl.Enable(gl.CULL_FACE)
}

func setWind(p *shader.Program, w wind.Uniforms) {
	p.SetBool("uWindEnabled", w.Enabled)
	p.SetVec3("uWindForce", w.Force)
	p.SetFloat("uTime", w.Time)
	p.SetFloat("uTurbulence", w.TurbulenceIntensity)
	p.SetFloat("uRandomness", w.RandomnessIntensity)
}

package main

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/engine/input"
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/internal/logger"
	"github.com/Faultbox/midgard-fur/pkg/math"
)

const buttonLeft uint8 = sdl.BUTTON_LEFT

// Key bindings:
//
//	Up/Down      shell count +-2 (Shift: +-1)
//	[ ]          opacity -+0.05 (Shift: density)
//	- =          fin length -+10%
//	F            toggle fins
//	W            toggle wind
//	1-4          wind presets
//	Left/Right   rotate wind direction
//	T            next shell taper preset (Shift: fin taper preset)
//	C            next shell taper curve
//	R            refit camera
//	F12          screenshot
func (v *viewer) handleKey(e input.Event) {
	a := v.assembly

	switch e.Key {
	case sdl.SCANCODE_UP:
		a.SetShellCount(a.ShellCount() + step(e.Shift, 1, 2))
	case sdl.SCANCODE_DOWN:
		a.SetShellCount(a.ShellCount() - step(e.Shift, 1, 2))

	case sdl.SCANCODE_LEFTBRACKET:
		if e.Shift {
			a.SetDensity(a.Density() - 0.05)
		} else {
			a.SetOpacity(a.Opacity() - 0.05)
		}
	case sdl.SCANCODE_RIGHTBRACKET:
		if e.Shift {
			a.SetDensity(a.Density() + 0.05)
		} else {
			a.SetOpacity(a.Opacity() + 0.05)
		}

	case sdl.SCANCODE_MINUS:
		a.SetFinLength(a.FinLength() * 0.9)
	case sdl.SCANCODE_EQUALS:
		a.SetFinLength(a.FinLength() * 1.1)

	case sdl.SCANCODE_F:
		a.SetFinsEnabled(!a.FinsEnabled())
	case sdl.SCANCODE_W:
		a.SetWindEnabled(!a.Settings().Wind.Enabled)

	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4:
		names := wind.PresetNames()
		if i := int(e.Key - sdl.SCANCODE_1); i < len(names) {
			a.ApplyWindPreset(names[i])
			logger.Info("wind preset", zap.String("name", names[i]))
		}

	case sdl.SCANCODE_LEFT:
		a.SetWindDirection(rotateY(a.Settings().Wind.Direction, -math32.Pi/12))
	case sdl.SCANCODE_RIGHT:
		a.SetWindDirection(rotateY(a.Settings().Wind.Direction, math32.Pi/12))

	case sdl.SCANCODE_T:
		if e.Shift {
			v.finTaper = cycle(taper.PresetNames(), v.finTaper, 1)
			a.ApplyFinTaperingPreset(v.finTaper)
			logger.Info("fin taper preset", zap.String("name", v.finTaper))
		} else {
			v.shellTaper = cycle(taper.PresetNames(), v.shellTaper, 1)
			a.ApplyTaperingPreset(v.shellTaper)
			logger.Info("shell taper preset", zap.String("name", v.shellTaper))
		}
	case sdl.SCANCODE_C:
		next := cycle(curveNames, a.Tapering().Curve.String(), 1)
		a.SetTaperingCurve(next)
		logger.Info("shell taper curve", zap.String("name", next))

	case sdl.SCANCODE_R:
		if m := a.Mesh(); m != nil {
			v.camera.FitToBounds(m.Bounds())
		}
	case sdl.SCANCODE_F12:
		v.wantShot = true
	case sdl.SCANCODE_ESCAPE:
		v.quit = true
	}
}

var curveNames = []string{
	taper.CurveLinear.String(),
	taper.CurveQuadratic.String(),
	taper.CurveExponential.String(),
}

func step(shift bool, fine, coarse int) int {
	if shift {
		return fine
	}
	return coarse
}

// cycle returns the name n steps after current, wrapping. An unknown
// current counts as the slot before the first name.
func cycle(names []string, current string, n int) string {
	if len(names) == 0 {
		return current
	}
	i := slices.Index(names, current)
	k := len(names)
	return names[((i+n)%k+k)%k]
}

// rotateY turns d about the vertical axis.
func rotateY(d math.Vec3, angle float32) math.Vec3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return math.Vec3{X: d.X*c + d.Z*s, Y: d.Y, Z: -d.X*s + d.Z*c}
}

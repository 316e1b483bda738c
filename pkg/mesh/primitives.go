package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

// NewQuad creates an indexed unit quad in the XY plane facing +Z.
// Its two triangles share the 0-2 diagonal.
func NewQuad(size float32) *Mesh {
	h := size / 2
	positions := []math.Vec3{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
	n := math.Vec3{Z: 1}
	normals := []math.Vec3{n, n, n, n}
	uvs := []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	return New(positions, normals, uvs, []uint32{0, 1, 2, 0, 2, 3})
}

// cubeFaces lists outward normal, u axis and v axis per face, with u x v = n.
var cubeFaces = [6][3]math.Vec3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// NewCube creates an indexed cube centered at the origin with 24 vertices
// (4 per face, so faces keep flat normals) and 12 triangles.
func NewCube(size float32) *Mesh {
	h := size / 2
	positions := make([]math.Vec3, 0, 24)
	normals := make([]math.Vec3, 0, 24)
	uvs := make([]math.Vec2, 0, 24)
	indices := make([]uint32, 0, 36)

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(positions))
		for _, c := range corners {
			p := n.Add(u.Scale(c[0])).Add(v.Scale(c[1])).Scale(h)
			positions = append(positions, p)
			normals = append(normals, n)
			uvs = append(uvs, math.Vec2{X: (c[0] + 1) / 2, Y: (c[1] + 1) / 2})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return New(positions, normals, uvs, indices)
}

// NewPlane creates an indexed grid in the XZ plane facing +Y with
// cols x rows cells of two triangles each.
func NewPlane(width, depth float32, cols, rows int) *Mesh {
	cols, rows = max(cols, 1), max(rows, 1)
	stride := uint32(cols + 1)

	var positions, normals []math.Vec3
	var uvs []math.Vec2
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			u := float32(i) / float32(cols)
			v := float32(j) / float32(rows)
			positions = append(positions, math.Vec3{X: (u - 0.5) * width, Z: (v - 0.5) * depth})
			normals = append(normals, math.Vec3{Y: 1})
			uvs = append(uvs, math.Vec2{X: u, Y: v})
		}
	}

	indices := make([]uint32, 0, cols*rows*6)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a := uint32(j)*stride + uint32(i)
			b := a + 1
			d := a + stride
			c := d + 1
			indices = append(indices, a, d, b, b, d, c)
		}
	}
	return New(positions, normals, uvs, indices)
}

// NewSphere creates an indexed UV sphere. The pole rows emit a single
// triangle per segment so no triangle is degenerate.
func NewSphere(radius float32, segments, rings int) *Mesh {
	segments, rings = max(segments, 3), max(rings, 2)
	stride := uint32(segments + 1)

	var positions, normals []math.Vec3
	var uvs []math.Vec2
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			n := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Cos(phi),
				Z: math32.Sin(phi) * math32.Sin(theta),
			}
			positions = append(positions, n.Scale(radius))
			normals = append(normals, n)
			uvs = append(uvs, math.Vec2{X: float32(s) / float32(segments), Y: 1 - float32(r)/float32(rings)})
		}
	}

	var indices []uint32
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			c := b + 1
			d := a + 1
			if r != 0 {
				indices = append(indices, a, d, b)
			}
			if r != rings-1 {
				indices = append(indices, d, c, b)
			}
		}
	}
	return New(positions, normals, uvs, indices)
}

// NewTorus creates an indexed torus around the Y axis.
func NewTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	majorSegments, minorSegments = max(majorSegments, 3), max(minorSegments, 3)
	stride := uint32(minorSegments + 1)

	var positions, normals []math.Vec3
	var uvs []math.Vec2
	for i := 0; i <= majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		center := math.Vec3{X: majorRadius * math32.Cos(u), Z: majorRadius * math32.Sin(u)}
		for j := 0; j <= minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			n := math.Vec3{
				X: math32.Cos(v) * math32.Cos(u),
				Y: math32.Sin(v),
				Z: math32.Cos(v) * math32.Sin(u),
			}
			positions = append(positions, center.Add(n.Scale(minorRadius)))
			normals = append(normals, n)
			uvs = append(uvs, math.Vec2{X: float32(i) / float32(majorSegments), Y: float32(j) / float32(minorSegments)})
		}
	}

	var indices []uint32
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			d := a + 1
			c := b + 1
			indices = append(indices, a, d, b, d, c, b)
		}
	}
	return New(positions, normals, uvs, indices)
}

// Primitive builds a named primitive scaled to roughly size units across.
// Known names: quad, cube, plane, sphere, torus.
func Primitive(name string, size float32) (*Mesh, bool) {
	switch name {
	case "quad":
		return NewQuad(size), true
	case "cube":
		return NewCube(size), true
	case "plane":
		return NewPlane(size, size, 16, 16), true
	case "sphere":
		return NewSphere(size/2, 48, 24), true
	case "torus":
		return NewTorus(size*0.35, size*0.15, 48, 24), true
	default:
		return nil, false
	}
}

// Package formats provides readers and writers for mesh interchange files.
// OBJ (Wavefront) format reader and writer for triangle meshes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// OBJ format errors.
var (
	ErrInvalidOBJ         = errors.New("invalid OBJ data")
	ErrMalformedOBJLine   = fmt.Errorf("%w: malformed line", ErrInvalidOBJ)
	ErrOBJIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidOBJ)
	ErrOBJNoGeometry      = fmt.Errorf("%w: no vertices", ErrInvalidOBJ)
)

// objCorner is one face corner: indices into the v, vt and vn lists.
// -1 marks an absent vt or vn.
type objCorner struct {
	v, vt, vn int
}

// ParseOBJ parses OBJ data into an indexed mesh. Polygons are fan
// triangulated. Every distinct v/vt/vn combination becomes one mesh
// vertex. Normals or UVs are dropped entirely when any face corner lacks
// them; mesh.Prepare recomputes what is missing.
func ParseOBJ(data []byte) (*mesh.Mesh, error) {
	var (
		positions []math.Vec3
		texcoords []math.Vec2
		normals   []math.Vec3
		corners   []objCorner
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			texcoords = append(texcoords, math.Vec2{X: v[0], Y: v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs 3 corners", lineNo, ErrMalformedOBJLine)
			}
			face := make([]objCorner, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c, err := parseCorner(f, len(positions), len(texcoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, c)
			}
			for i := 1; i+1 < len(face); i++ {
				corners = append(corners, face[0], face[i], face[i+1])
			}
		default:
			// o, g, s, usemtl, mtllib and friends carry no geometry
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	if len(positions) == 0 {
		return nil, ErrOBJNoGeometry
	}

	haveUV, haveNormal := len(corners) > 0, len(corners) > 0
	for _, c := range corners {
		haveUV = haveUV && c.vt >= 0
		haveNormal = haveNormal && c.vn >= 0
	}

	var (
		outPos     []math.Vec3
		outNormals []math.Vec3
		outUVs     []math.Vec2
		indices    = make([]uint32, 0, len(corners))
		seen       = make(map[objCorner]uint32)
	)
	for _, c := range corners {
		if !haveUV {
			c.vt = -1
		}
		if !haveNormal {
			c.vn = -1
		}
		idx, ok := seen[c]
		if !ok {
			idx = uint32(len(outPos))
			seen[c] = idx
			outPos = append(outPos, positions[c.v])
			if haveUV {
				outUVs = append(outUVs, texcoords[c.vt])
			}
			if haveNormal {
				outNormals = append(outNormals, normals[c.vn].Normalize())
			}
		}
		indices = append(indices, idx)
	}
	if outPos == nil {
		outPos = []math.Vec3{}
	}

	return mesh.New(outPos, outNormals, outUVs, indices), nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedOBJLine, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOBJLine, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// indices. Negative OBJ indices are relative to the end of each list.
func parseCorner(s string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return objCorner{}, fmt.Errorf("%w: corner %q", ErrMalformedOBJLine, s)
	}

	c := objCorner{v: -1, vt: -1, vn: -1}
	targets := []*int{&c.v, &c.vt, &c.vn}
	limits := []int{nv, nvt, nvn}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return objCorner{}, fmt.Errorf("%w: corner %q", ErrMalformedOBJLine, s)
			}
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return objCorner{}, fmt.Errorf("%w: corner %q", ErrMalformedOBJLine, s)
		}
		idx, err := resolveIndex(n, limits[i])
		if err != nil {
			return objCorner{}, err
		}
		*targets[i] = idx
	}
	return c, nil
}

func resolveIndex(n, count int) (int, error) {
	var idx int
	switch {
	case n > 0:
		idx = n - 1
	case n < 0:
		idx = count + n
	default:
		return 0, fmt.Errorf("%w: index 0", ErrOBJIndexOutOfRange)
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d of %d", ErrOBJIndexOutOfRange, n, count)
	}
	return idx, nil
}

// OBJWriter writes triangle-soup geometries as OBJ objects. Indices are
// global across objects written to the same writer.
type OBJWriter struct {
	w *bufio.Writer

	// running counts of written v, vt and vn records
	nv, nvt, nvn int
}

// NewOBJWriter creates a writer on w. Call Flush when done.
func NewOBJWriter(w io.Writer) *OBJWriter {
	return &OBJWriter{w: bufio.NewWriter(w)}
}

// WriteComment writes a "#" comment line.
func (ow *OBJWriter) WriteComment(text string) error {
	_, err := fmt.Fprintf(ow.w, "# %s\n", text)
	return err
}

// WriteObject writes g as a named object.
func (ow *OBJWriter) WriteObject(name string, g *mesh.Geometry) error {
	if _, err := fmt.Fprintf(ow.w, "o %s\n", name); err != nil {
		return err
	}
	for _, p := range g.Positions {
		fmt.Fprintf(ow.w, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	hasUV := len(g.UVs) == len(g.Positions)
	hasNormal := len(g.Normals) == len(g.Positions)
	if hasUV {
		for _, uv := range g.UVs {
			fmt.Fprintf(ow.w, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	if hasNormal {
		for _, n := range g.Normals {
			fmt.Fprintf(ow.w, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	for i := 0; i+2 < len(g.Positions); i += 3 {
		ow.w.WriteString("f")
		for k := 0; k < 3; k++ {
			v, vt, vn := ow.nv+i+k+1, ow.nvt+i+k+1, ow.nvn+i+k+1
			switch {
			case hasUV && hasNormal:
				fmt.Fprintf(ow.w, " %d/%d/%d", v, vt, vn)
			case hasUV:
				fmt.Fprintf(ow.w, " %d/%d", v, vt)
			case hasNormal:
				fmt.Fprintf(ow.w, " %d//%d", v, vn)
			default:
				fmt.Fprintf(ow.w, " %d", v)
			}
		}
		if _, err := ow.w.WriteString("\n"); err != nil {
			return err
		}
	}
	ow.nv += len(g.Positions)
	if hasUV {
		ow.nvt += len(g.UVs)
	}
	if hasNormal {
		ow.nvn += len(g.Normals)
	}
	return nil
}

// Flush writes any buffered data.
func (ow *OBJWriter) Flush() error {
	return ow.w.Flush()
}

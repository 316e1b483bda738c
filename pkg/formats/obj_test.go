package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

const quadOBJ = `# unit quad
o quad
v -0.5 -0.5 0
v 0.5 -0.5 0
v 0.5 0.5 0
v -0.5 0.5 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJ_Quad(t *testing.T) {
	m, err := ParseOBJ([]byte(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	if !m.HasNormals() || !m.HasUVs() {
		t.Error("expected normals and uvs")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParseOBJ_CornerForms(t *testing.T) {
	tests := []struct {
		name       string
		face       string
		wantNormal bool
		wantUV     bool
	}{
		{"position only", "f 1 2 3", false, false},
		{"position and uv", "f 1/1 2/2 3/3", false, true},
		{"position and normal", "f 1//1 2//1 3//1", true, false},
		{"full", "f 1/1/1 2/2/1 3/3/1", true, true},
		{"negative indices", "f -3/-3/-1 -2/-2/-1 -1/-1/-1", true, true},
	}

	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvt 0 1\nvn 0 0 1\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseOBJ([]byte(header + tt.face + "\n"))
			if err != nil {
				t.Fatalf("ParseOBJ() error = %v", err)
			}
			if m.TriangleCount() != 1 {
				t.Fatalf("TriangleCount() = %d, want 1", m.TriangleCount())
			}
			if m.HasNormals() != tt.wantNormal {
				t.Errorf("HasNormals() = %v, want %v", m.HasNormals(), tt.wantNormal)
			}
			if m.HasUVs() != tt.wantUV {
				t.Errorf("HasUVs() = %v, want %v", m.HasUVs(), tt.wantUV)
			}
		})
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty", "", ErrOBJNoGeometry},
		{"bad float", "v 0 zero 0\n", ErrMalformedOBJLine},
		{"short vertex", "v 0 0\n", ErrMalformedOBJLine},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrMalformedOBJLine},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrOBJIndexOutOfRange},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", ErrOBJIndexOutOfRange},
		{"bad corner", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/2/3/4 2 3\n", ErrMalformedOBJLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseOBJ() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidOBJ) {
				t.Errorf("error %v should wrap ErrInvalidOBJ", err)
			}
		})
	}
}

func TestOBJWriter_RoundTrip(t *testing.T) {
	cube := mesh.NewCube(2)

	var buf bytes.Buffer
	w := NewOBJWriter(&buf)
	if err := w.WriteComment("cube"); err != nil {
		t.Fatalf("WriteComment() error = %v", err)
	}
	if err := w.WriteObject("cube", cube.Soup()); err != nil {
		t.Fatalf("WriteObject() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	back, err := ParseOBJ(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if back.TriangleCount() != cube.TriangleCount() {
		t.Errorf("TriangleCount() = %d, want %d", back.TriangleCount(), cube.TriangleCount())
	}
	if back.Bounds() != cube.Bounds() {
		t.Errorf("Bounds() = %+v, want %+v", back.Bounds(), cube.Bounds())
	}
}

func TestOBJWriter_MultipleObjectsUseGlobalIndices(t *testing.T) {
	var buf bytes.Buffer
	w := NewOBJWriter(&buf)

	first := mesh.NewQuad(1).Soup()
	second := &mesh.Geometry{Positions: []math.Vec3{{X: 5}, {X: 6}, {X: 5, Y: 1}}}
	if err := w.WriteObject("a", first); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteObject("b", second); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "f 7 8 9\n") {
		t.Errorf("second object should reference vertices 7-9:\n%s", buf.String())
	}
	if _, err := ParseOBJ(buf.Bytes()); err != nil {
		t.Errorf("ParseOBJ() error = %v", err)
	}
}

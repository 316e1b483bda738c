package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The cube keeps 4 vertices per face, so each face contributes 4 outline
// edges and 1 diagonal.
func TestStats(t *testing.T) {
	var out bytes.Buffer
	if err := cmdStats([]string{"-mesh", "cube", "-shells", "12", "-layers"}, &out); err != nil {
		t.Fatalf("stats: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Mesh:      cube(1)",
		"Triangles: 12",
		"Edges:     30",
		"Shells:    12",
		"Fins:      30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStatsNoFins(t *testing.T) {
	var out bytes.Buffer
	if err := cmdStats([]string{"-mesh", "quad", "-no-fins"}, &out); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out.String(), "Fins:      off") {
		t.Errorf("fins should be off:\n%s", out.String())
	}
}

func TestStatsUnknownMesh(t *testing.T) {
	var out bytes.Buffer
	if err := cmdStats([]string{"-mesh", "teapot"}, &out); err == nil {
		t.Error("expected an error for an unknown primitive")
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fur.obj")
	var out bytes.Buffer
	if err := cmdExport([]string{"-mesh", "quad", "-shells", "8", "-o", path}, &out); err != nil {
		t.Fatalf("export: %v", err)
	}

	// base + 8 shells + fins
	if !strings.Contains(out.String(), "Wrote 10 objects") {
		t.Errorf("unexpected summary: %s", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	obj := string(data)
	for _, want := range []string{"o base\n", "o shell_01\n", "o shell_08\n", "o fins\n"} {
		if !strings.Contains(obj, want) {
			t.Errorf("OBJ missing %q", want)
		}
	}
}

func TestExportNoBaseToWriter(t *testing.T) {
	var out bytes.Buffer
	if err := cmdExport([]string{"-mesh", "quad", "-shells", "8", "-no-fins", "-no-base"}, &out); err != nil {
		t.Fatalf("export: %v", err)
	}
	if n := strings.Count(out.String(), "\no "); n != 8 {
		t.Errorf("got %d objects, want 8", n)
	}
}

func TestPresets(t *testing.T) {
	var out bytes.Buffer
	cmdPresets(&out)
	for _, want := range []string{"natural", "dramatic", "storm", "gentleBreeze"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("presets missing %q", want)
		}
	}
}

package main

import (
	"testing"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

func TestCycle(t *testing.T) {
	names := []string{"a", "b", "c"}
	tests := []struct {
		current string
		n       int
		want    string
	}{
		{"a", 1, "b"},
		{"c", 1, "a"},
		{"a", -1, "c"},
		{"", 1, "a"},
		{"zzz", 2, "b"},
	}
	for _, tt := range tests {
		if got := cycle(names, tt.current, tt.n); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.n, got, tt.want)
		}
	}
	if got := cycle(nil, "x", 1); got != "x" {
		t.Errorf("cycle on empty list = %q, want unchanged", got)
	}
}

func TestRotateY(t *testing.T) {
	d := rotateY(math.V3(1, 0, 0), 3.14159265/2)
	if !math.ApproxEqual(d.X, 0, 1e-5) || !math.ApproxEqual(d.Z, -1, 1e-5) {
		t.Errorf("rotateY(+X, 90deg) = %v, want -Z", d)
	}
	if l := rotateY(math.V3(0.3, 0.5, 0.8), 1).Length(); !math.ApproxEqual(l, math.V3(0.3, 0.5, 0.8).Length(), 1e-5) {
		t.Errorf("rotation changed length to %f", l)
	}
}

func TestStep(t *testing.T) {
	if step(true, 1, 2) != 1 || step(false, 1, 2) != 2 {
		t.Error("step picks the wrong increment")
	}
}

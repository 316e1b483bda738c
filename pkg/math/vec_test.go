package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	got := Vec2{0, 0}.Lerp(Vec2{1, 2}, 0.5)
	want := Vec2{0.5, 1}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float32
	}{
		{"axis", Vec3{0, 3, 0}, 1},
		{"diagonal", Vec3{1, 2, 2}, 1},
		{"zero", Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.v.Normalize().Length()
			if !ApproxEqual(l, tt.want, 1e-4) {
				t.Errorf("Vec3.Normalize().Length() = %v, want %v", l, tt.want)
			}
		})
	}
}

func TestVec3NormalizeOr(t *testing.T) {
	fallback := Vec3{0, 1, 0}
	if got := (Vec3{}).NormalizeOr(fallback); got != fallback {
		t.Errorf("NormalizeOr(zero) = %v, want %v", got, fallback)
	}
}

func TestVec3MinMaxClamp(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got := a.Min(b); got != (Vec3{-1, -2, 0}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 2, 3}) {
		t.Errorf("Max() = %v", got)
	}
	if got := (Vec3{-5, 0.5, 5}).Clamp(-1, 1); got != (Vec3{-1, 0.5, 1}) {
		t.Errorf("Clamp() = %v", got)
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid(Vec3{0, 0, 0}, Vec3{3, 0, 0}, Vec3{0, 3, 0})
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
	}
	for _, tt := range tests {
		if got := Fract(tt.in); !ApproxEqual(got, tt.want, 1e-6) {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHashRangeAndStability(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := float32(i)*0.37 - 10
		h := Hash(x)
		if h < 0 || h >= 1 {
			t.Fatalf("Hash(%v) = %v, want [0,1)", x, h)
		}
		if Hash(x) != h {
			t.Fatalf("Hash(%v) not stable", x)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned wrong value")
	}
}

package math

import "github.com/chewxy/math32"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Fract returns the fractional part of x, always in [0, 1).
func Fract(x float32) float32 {
	f := x - math32.Floor(x)
	if f >= 1 {
		// tiny negative inputs round up to exactly 1 in float32
		return 0
	}
	return f
}

// Hash is the classic shader hash fract(sin(x) * 43758.5453).
// It yields a pseudo-random value in [0, 1) that is stable for a given x.
func Hash(x float32) float32 {
	return Fract(math32.Sin(x) * 43758.5453)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

package wind

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

var (
	octaveFrequencies = [3]float32{1, 2, 4}
	octaveAmplitudes  = [3]float32{1, 0.5, 0.25}
)

// noise is a cheap smooth periodic function in [-1, 1].
func noise(x float32) float32 {
	return math32.Sin(x) * math32.Cos(1.3*x+0.7)
}

// Turbulence sums three noise octaves per axis. Each axis is phase shifted
// by its seed. The result is scaled by intensity.
func Turbulence(t, frequency, intensity float32, seeds [3]float32) math.Vec3 {
	var out [3]float32
	for axis := range out {
		var sum float32
		for o := range octaveFrequencies {
			sum += octaveAmplitudes[o] * noise(t*frequency*octaveFrequencies[o]+seeds[axis])
		}
		out[axis] = sum * intensity
	}
	return math.V3(out[0], out[1], out[2])
}

// GustEnvelope returns the gust multiplier in [0, 1] at time t.
func GustEnvelope(t, frequency, duration float32) float32 {
	base := 0.5 + 0.5*math32.Sin(t*frequency)
	decay := math32.Exp(-math32.Abs(math32.Sin(t*frequency*duration)) * 2)
	return base * base * decay
}

// Gust returns the gust force at time t: the normalized direction, slightly
// perturbed per axis, shaped by the envelope.
func Gust(t float32, direction math.Vec3, strength, frequency, duration float32) math.Vec3 {
	if strength == 0 {
		return math.Vec3{}
	}
	wobble := math.V3(
		math32.Sin(t*1.7),
		math32.Sin(t*2.3),
		math32.Cos(t*1.9),
	).Scale(0.1)
	dir := direction.Normalize().Add(wobble)
	return dir.Scale(GustEnvelope(t, frequency, duration) * strength)
}

package lighting

import (
	"testing"

	"github.com/Faultbox/midgard-fur/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"zenith", 0, 90, math.V3(0, 1, 0)},
		{"south horizon", 0, 0, math.V3(0, 0, 1)},
		{"east horizon", 90, 0, math.V3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
			if !math.ApproxEqual(got.Length(), 1, 1e-5) {
				t.Errorf("length = %f, want 1", got.Length())
			}
		})
	}
}

func TestLightDirectionPointsDown(t *testing.T) {
	if d := LightDirection(45, 60); d.Y >= 0 {
		t.Errorf("light from above should travel downwards, got %v", d)
	}
}

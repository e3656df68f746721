package lights

import (
	"testing"

	"github.com/raywerk/whitted/pkg/math"
)

func TestNewPointLight(t *testing.T) {
	position := math.NewPoint(0, 0, 0)
	intensity := math.White

	light := NewPointLight(position, intensity)
	if !light.Position.Equals(position) {
		t.Errorf("Position = %v, want %v", light.Position, position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Intensity = %v, want %v", light.Intensity, intensity)
	}
}

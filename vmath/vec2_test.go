package vmath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestDegrees(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want int
	}{
		{"zero", Vec2{0, 0}, 0},
		{"east", Vec2{100, 0}, 0},
		{"south", Vec2{0, 100}, 90},
		{"north", Vec2{0, -100}, -90},
		{"west", Vec2{-100, 0}, 180},
		{"west negative zero", Vec2{-100, math.Copysign(0, -1)}, 180},
		{"diagonal", Vec2{50, 50}, 45},
		{"truncates toward zero", Vec2{100, -1}, 0},
		{"third quadrant", Vec2{-50, -50}, -135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Degrees(tt.v); got != tt.want {
				t.Errorf("Degrees(%v): expected %d, got %d", tt.v, tt.want, got)
			}
		})
	}
}

func TestDegreesRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Vec2{
			X: rapid.Float64Range(-500, 500).Draw(t, "x"),
			Y: rapid.Float64Range(-500, 500).Draw(t, "y"),
		}
		d := Degrees(v)
		if d <= -180 || d > 180 {
			t.Fatalf("Degrees(%v) = %d outside (-180, 180]", v, d)
		}
	})
}

func TestSpeed(t *testing.T) {
	if got := Speed(Vec2{30, 40}); got != 50 {
		t.Errorf("Expected 50, got %v", got)
	}
	if got := Speed(Vec2{100, 100}); got != 141.42 {
		t.Errorf("Expected 141.42, got %v", got)
	}
	if got := Speed(Vec2{}); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 {
		t.Error("Expected upper clamp")
	}
	if Clamp(-5, 0, 3) != 0 {
		t.Error("Expected lower clamp")
	}
	if Clamp(2, 0, 3) != 2 {
		t.Error("Expected passthrough")
	}
}

package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in play-area units
// Origin is the play-area center, Y grows downward to match terminal rows
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// RoundTo rounds x half away from zero to the given number of decimal places
func RoundTo(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

// Speed returns the vector magnitude rounded to two decimals, as shown on readouts
func Speed(v Vec2) float64 {
	return RoundTo(V2Mag(v), 2)
}

// Degrees returns the heading of v in whole degrees, truncated toward zero
// Range is (-180, 180]; the zero vector reports 0
// Float noise below a micro-degree is snapped before truncation so exact axes stay exact
func Degrees(v Vec2) int {
	deg := int(RoundTo(math.Atan2(v.Y, v.X)*180/math.Pi, 6))
	if deg == -180 {
		return 180
	}
	return deg
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDBar     = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted from background
	RgbGalleryDot = tcell.NewRGBColor(50, 52, 70)    // Faint backdrop grid

	RgbTargetHealthy  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbTargetWounded  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbTargetCritical = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbTargetObserved = tcell.NewRGBColor(140, 190, 255) // Bright Blue, frozen readout

	RgbVectorArrow = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	RgbSceneDefeated = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbSceneSurvived = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbSceneHint     = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbStatusText = tcell.NewRGBColor(0, 200, 200) // Vibrant Cyan
)

// targetColor picks the target fill by remaining health fraction
func targetColor(hp, maxHP int) tcell.Color {
	if maxHP <= 0 || hp*3 > maxHP*2 {
		return RgbTargetHealthy
	}
	if hp*3 > maxHP {
		return RgbTargetWounded
	}
	return RgbTargetCritical
}

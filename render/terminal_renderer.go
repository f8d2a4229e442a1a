package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/gallery"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/status"
)

// Arrow runes clockwise from east in 45 degree steps, +Y is down
var vectorArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// TerminalRenderer draws the gallery, HUD and ending scenes to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	field  *Playfield
	hud    *HUD
	scenes *ScenePresenter
	status *status.Registry

	showStatus bool
	maxHP      int
}

// NewTerminalRenderer creates a renderer over shared HUD and scene state
func NewTerminalRenderer(screen tcell.Screen, field *Playfield, hud *HUD, scenes *ScenePresenter, reg *status.Registry, maxHP int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		field:  field,
		hud:    hud,
		scenes: scenes,
		status: reg,
		maxHP:  maxHP,
	}
}

// ToggleStatus switches the debug overlay
func (r *TerminalRenderer) ToggleStatus() {
	r.showStatus = !r.showStatus
}

// RenderFrame renders the entire frame
// Target placement comes from the HUD so an observed target stays frozen on screen
func (r *TerminalRenderer) RenderFrame(snap gallery.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	view := r.hud.View()

	r.drawGallery(defaultStyle)
	if view.Placed && snap.Target.Alive() {
		r.drawTarget(view, snap, defaultStyle)
	}
	r.drawHUD(view, defaultStyle)

	if scene, ok := r.scenes.Active(); ok {
		r.drawScene(scene, defaultStyle)
	}
	if r.showStatus && r.status != nil {
		r.drawStatus(defaultStyle)
	}

	r.screen.Show()
}

// drawGallery draws a faint dot grid behind the target
func (r *TerminalRenderer) drawGallery(defaultStyle tcell.Style) {
	width, height := r.field.Size()
	dotStyle := defaultStyle.Foreground(RgbGalleryDot)
	for y := parameter.HUDRows; y < height; y += 2 {
		for x := 0; x < width; x += 4 {
			r.screen.SetContent(x, y, '·', nil, dotStyle)
		}
	}
}

// drawHUD draws the two readout rows
func (r *TerminalRenderer) drawHUD(view HUDView, defaultStyle tcell.Style) {
	width, _ := r.field.Size()
	barStyle := defaultStyle.Background(RgbHUDBar).Foreground(RgbHUDText)
	for y := 0; y < parameter.HUDRows; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, barStyle)
		}
	}

	top := fmt.Sprintf("%s  %s  %s  %s",
		view.Texts[engine.FieldShots],
		view.Texts[engine.FieldReloads],
		view.Texts[engine.FieldTime],
		view.Texts[engine.FieldHealth],
	)
	r.drawText(1, 0, top, barStyle)

	bottom := fmt.Sprintf("%s  Vector: %c %d°", view.Texts[engine.FieldSpeed], vectorArrow(view.Vector), view.Vector)
	r.drawText(1, 1, bottom, barStyle)
}

// drawTarget fills the target footprint and marks its heading at the center
func (r *TerminalRenderer) drawTarget(view HUDView, snap gallery.Snapshot, defaultStyle tcell.Style) {
	color := targetColor(snap.Target.HitPoints, r.maxHP)
	if snap.Target.Observed {
		color = RgbTargetObserved
	}
	fill := defaultStyle.Foreground(color)

	x0, y0, x1, y1 := r.field.CellRect(view.Position, snap.Target.Extent)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, '█', nil, fill)
		}
	}

	cx, cy := r.field.ToCell(view.Position)
	if cx >= x0 && cx < x1 && cy >= y0 && cy < y1 {
		arrowStyle := defaultStyle.Foreground(RgbVectorArrow).Background(color)
		r.screen.SetContent(cx, cy, vectorArrow(view.Vector), nil, arrowStyle)
	}
}

// drawScene draws a centered ending card over the frame
func (r *TerminalRenderer) drawScene(scene Scene, defaultStyle tcell.Style) {
	width, height := r.field.Size()
	color := RgbSceneSurvived
	if scene.Defeated {
		color = RgbSceneDefeated
	}

	lines := []struct {
		text  string
		style tcell.Style
	}{
		{scene.Title, defaultStyle.Foreground(color).Bold(true)},
		{scene.Subtitle, defaultStyle.Foreground(RgbSceneHint)},
		{"", defaultStyle},
		{"n: new round   q: quit", defaultStyle.Foreground(RgbSceneHint)},
	}

	top := height/2 - len(lines)/2
	for i, l := range lines {
		x := (width - len([]rune(l.text))) / 2
		r.drawText(max(x, 0), top+i, l.text, l.style)
	}
}

// drawStatus lists registry metrics bottom-left
func (r *TerminalRenderer) drawStatus(defaultStyle tcell.Style) {
	_, height := r.field.Size()
	lines := r.status.Lines()
	style := defaultStyle.Foreground(RgbStatusText)

	start := max(height-len(lines), parameter.HUDRows)
	for i, line := range lines {
		y := start + i
		if y >= height {
			break
		}
		r.drawText(0, y, line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, height := r.field.Size()
	if y < 0 || y >= height {
		return
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// vectorArrow rounds degrees to the nearest of eight directions
func vectorArrow(degrees int) rune {
	idx := int(math.Round(float64(degrees)/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return vectorArrows[idx]
}

package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/gallery"
	"github.com/lixenwraith/quantum-shooter/status"
	"github.com/lixenwraith/quantum-shooter/vmath"
)

type rendererFixture struct {
	screen   tcell.SimulationScreen
	field    *Playfield
	hud      *HUD
	scenes   *ScenePresenter
	renderer *TerminalRenderer
}

func newRendererFixture(t *testing.T) *rendererFixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	f := &rendererFixture{
		screen: screen,
		field:  NewPlayfield(80, 24),
		hud:    NewHUD(),
		scenes: NewScenePresenter(config.Default().Scenes),
	}
	f.renderer = NewTerminalRenderer(screen, f.field, f.hud, f.scenes, status.NewRegistry(), 3)
	return f
}

// row reads one screen row as a string
func (f *rendererFixture) row(y int) string {
	var sb strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := f.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func (f *rendererFixture) cell(x, y int) rune {
	r, _, _, _ := f.screen.GetContent(x, y)
	return r
}

func liveSnapshot(hp int) gallery.Snapshot {
	var snap gallery.Snapshot
	snap.Target.HitPoints = hp
	snap.Target.Extent = vmath.Vec2{X: 30, Y: 30}
	return snap
}

func TestRenderHUD(t *testing.T) {
	f := newRendererFixture(t)

	f.hud.SetText(engine.FieldShots, "Shots: 6")
	f.hud.SetText(engine.FieldReloads, "Reloads: 2")
	f.hud.SetText(engine.FieldTime, "Time: 30")
	f.hud.SetText(engine.FieldHealth, "HEALTH: 3")
	f.hud.SetText(engine.FieldSpeed, "Speed: 123.45")
	f.hud.SetVector(90)

	f.renderer.RenderFrame(liveSnapshot(3))

	assert.Contains(t, f.row(0), "Shots: 6  Reloads: 2  Time: 30  HEALTH: 3")
	assert.Contains(t, f.row(1), "Speed: 123.45  Vector: ↓ 90°")
}

func TestRenderTargetAtDisplayedPosition(t *testing.T) {
	f := newRendererFixture(t)
	pos := vmath.Vec2{X: -200, Y: 40}
	f.hud.SetTargetPosition(pos)
	f.hud.SetVector(0)

	f.renderer.RenderFrame(liveSnapshot(3))

	cx, cy := f.field.ToCell(pos)
	assert.Equal(t, '→', f.cell(cx, cy), "heading arrow at target center")

	x0, y0, _, _ := f.field.CellRect(pos, vmath.Vec2{X: 30, Y: 30})
	assert.Equal(t, '█', f.cell(x0, y0), "footprint corner filled")
}

func TestRenderSkipsDestroyedTarget(t *testing.T) {
	f := newRendererFixture(t)
	f.hud.SetTargetPosition(vmath.Vec2{})

	f.renderer.RenderFrame(liveSnapshot(0))

	cx, cy := f.field.ToCell(vmath.Vec2{})
	assert.NotEqual(t, '█', f.cell(cx+1, cy))
}

func TestRenderScene(t *testing.T) {
	f := newRendererFixture(t)
	require.NoError(t, f.scenes.LoadScene(config.Default().Scenes.Defeated))

	f.renderer.RenderFrame(liveSnapshot(0))

	var found bool
	for y := 0; y < 24; y++ {
		if strings.Contains(f.row(y), "TARGET DESTROYED") {
			found = true
			break
		}
	}
	assert.True(t, found, "ending card title drawn")

	err := f.scenes.LoadScene("nowhere")
	assert.ErrorIs(t, err, ErrUnknownScene)

	scene, ok := f.scenes.Active()
	require.True(t, ok)
	assert.True(t, scene.Defeated, "failed load keeps the previous scene")

	f.scenes.Reset()
	_, ok = f.scenes.Active()
	assert.False(t, ok)
}

func TestRenderStatusOverlay(t *testing.T) {
	f := newRendererFixture(t)
	f.renderer.status.Ints.Get("engine.ticks").Store(42)

	f.renderer.ToggleStatus()
	f.renderer.RenderFrame(liveSnapshot(3))

	var found bool
	for y := 0; y < 24; y++ {
		if strings.Contains(f.row(y), "engine.ticks") {
			found = true
		}
	}
	assert.True(t, found, "status overlay lists metrics")
}

func TestVectorArrow(t *testing.T) {
	tests := []struct {
		deg  int
		want rune
	}{
		{0, '→'},
		{45, '↘'},
		{90, '↓'},
		{180, '←'},
		{-90, '↑'},
		{-45, '↗'},
		{-135, '↖'},
		{20, '→'},
		{170, '←'},
	}
	for _, tt := range tests {
		if got := vectorArrow(tt.deg); got != tt.want {
			t.Errorf("vectorArrow(%d) = %c, want %c", tt.deg, got, tt.want)
		}
	}
}

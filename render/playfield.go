package render

import (
	"math"
	"sync"

	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/vmath"
)

// Playfield maps terminal cells to gallery units
// The top HUDRows rows belong to the HUD, the rest is the gallery
// Gallery units are centered: (0,0) is the middle of the gallery, +Y points down
type Playfield struct {
	mu     sync.RWMutex
	width  int
	height int
}

func NewPlayfield(width, height int) *Playfield {
	p := &Playfield{}
	p.Resize(width, height)
	return p
}

// Resize records new terminal dimensions
func (p *Playfield) Resize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = max(width, 0)
	p.height = max(height, 0)
}

// Size returns terminal dimensions in cells
func (p *Playfield) Size() (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.width, p.height
}

// GalleryRows is the number of rows below the HUD
func (p *Playfield) GalleryRows() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return max(p.height-parameter.HUDRows, 0)
}

// Extent implements engine.Geometry
func (p *Playfield) Extent() vmath.Vec2 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.extentLocked()
}

func (p *Playfield) extentLocked() vmath.Vec2 {
	return vmath.Vec2{
		X: float64(p.width) * parameter.UnitsPerColumn,
		Y: float64(max(p.height-parameter.HUDRows, 0)) * parameter.UnitsPerRow,
	}
}

// ToCell converts a gallery position to the screen cell containing it
func (p *Playfield) ToCell(pos vmath.Vec2) (int, int) {
	p.mu.RLock()
	ext := p.extentLocked()
	p.mu.RUnlock()

	x := int(math.Floor((pos.X + ext.X/2) / parameter.UnitsPerColumn))
	y := int(math.Floor((pos.Y+ext.Y/2)/parameter.UnitsPerRow)) + parameter.HUDRows
	return x, y
}

// ToUnits converts a screen cell to the gallery position of its center
// Returns false for cells in the HUD or off screen
func (p *Playfield) ToUnits(x, y int) (vmath.Vec2, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	row := y - parameter.HUDRows
	if x < 0 || x >= p.width || row < 0 || y >= p.height {
		return vmath.Vec2{}, false
	}
	ext := p.extentLocked()
	return vmath.Vec2{
		X: (float64(x)+0.5)*parameter.UnitsPerColumn - ext.X/2,
		Y: (float64(row)+0.5)*parameter.UnitsPerRow - ext.Y/2,
	}, true
}

// CellRect returns the half-open cell rectangle [x0,x1) x [y0,y1) covered by a footprint
// centered at pos with half extents ext, clipped to the gallery
func (p *Playfield) CellRect(pos, ext vmath.Vec2) (x0, y0, x1, y1 int) {
	p.mu.RLock()
	area := p.extentLocked()
	width, height := p.width, p.height
	p.mu.RUnlock()

	left := pos.X - ext.X + area.X/2
	right := pos.X + ext.X + area.X/2
	top := pos.Y - ext.Y + area.Y/2
	bottom := pos.Y + ext.Y + area.Y/2

	x0 = int(math.Floor(left / parameter.UnitsPerColumn))
	x1 = int(math.Ceil(right / parameter.UnitsPerColumn))
	y0 = int(math.Floor(top/parameter.UnitsPerRow)) + parameter.HUDRows
	y1 = int(math.Ceil(bottom/parameter.UnitsPerRow)) + parameter.HUDRows

	x0 = max(x0, 0)
	x1 = min(x1, width)
	y0 = max(y0, parameter.HUDRows)
	y1 = min(y1, height)
	return x0, y0, x1, y1
}

// HitsFootprint reports whether the cell at (x, y) lies over a footprint centered at pos
func (p *Playfield) HitsFootprint(x, y int, pos, ext vmath.Vec2) bool {
	u, ok := p.ToUnits(x, y)
	if !ok {
		return false
	}
	d := vmath.V2Sub(u, pos)
	return math.Abs(d.X) <= ext.X && math.Abs(d.Y) <= ext.Y
}

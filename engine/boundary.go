package engine

import (
	"errors"

	"github.com/lixenwraith/quantum-shooter/vmath"
)

//go:generate go tool mockgen -source=boundary.go -destination=mocks/boundary_mock.go -package=mocks

// ErrNoGeometry is returned when a round is composed without a geometry source
var ErrNoGeometry = errors.New("no play-area geometry")

// HUDField names a text readout owned by the host
type HUDField uint8

const (
	FieldShots HUDField = iota
	FieldReloads
	FieldTime
	FieldHealth
	FieldSpeed
	fieldCount
)

// HUDFieldCount is the number of text readouts
const HUDFieldCount = int(fieldCount)

func (f HUDField) String() string {
	switch f {
	case FieldShots:
		return "shots"
	case FieldReloads:
		return "reloads"
	case FieldTime:
		return "time"
	case FieldHealth:
		return "health"
	case FieldSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Display receives readouts; the game never reads them back
type Display interface {
	SetText(field HUDField, text string)
	SetVector(degrees int)
	SetTargetPosition(pos vmath.Vec2)
}

// Presenter hands control to an ending scene once the round is decided
type Presenter interface {
	LoadScene(scene string) error
}

// Geometry reports the play-area full width and height in units
type Geometry interface {
	Extent() vmath.Vec2
}

// SoundCue identifies a one-shot sound effect
type SoundCue uint8

const (
	CueShot SoundCue = iota
	CueHit
	CueReload
	CueReloadDone
	CueTargetDestroyed
	CueObserve
	CueRoundOver
)

// SoundPlayer plays cues without blocking the game loop
type SoundPlayer interface {
	Play(cue SoundCue)
}

// MultiDisplay fans readouts out to several sinks in order
type MultiDisplay []Display

func (m MultiDisplay) SetText(field HUDField, text string) {
	for _, d := range m {
		d.SetText(field, text)
	}
}

func (m MultiDisplay) SetVector(degrees int) {
	for _, d := range m {
		d.SetVector(degrees)
	}
}

func (m MultiDisplay) SetTargetPosition(pos vmath.Vec2) {
	for _, d := range m {
		d.SetTargetPosition(pos)
	}
}

// MultiPresenter loads the scene on every presenter and joins their errors
type MultiPresenter []Presenter

func (m MultiPresenter) LoadScene(scene string) error {
	var errs []error
	for _, p := range m {
		if err := p.LoadScene(scene); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StaticGeometry is a fixed play area, used by headless hosts and tests
type StaticGeometry vmath.Vec2

func (g StaticGeometry) Extent() vmath.Vec2 {
	return vmath.Vec2(g)
}

// Defaults for collaborators a host does not provide

type nopDisplay struct{}

func (nopDisplay) SetText(HUDField, string)     {}
func (nopDisplay) SetVector(int)                {}
func (nopDisplay) SetTargetPosition(vmath.Vec2) {}

type nopPresenter struct{}

func (nopPresenter) LoadScene(string) error { return nil }

type nopSound struct{}

func (nopSound) Play(SoundCue) {}

var (
	NopDisplay   Display     = nopDisplay{}
	NopPresenter Presenter   = nopPresenter{}
	NopSound     SoundPlayer = nopSound{}
)

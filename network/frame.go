package network

// FrameType distinguishes feed messages
type FrameType string

const (
	FrameState FrameType = "state" // Periodic HUD mirror
	FrameRound FrameType = "round" // A new round began, clears viewer state
)

// Frame is one JSON message of the spectator feed
type Frame struct {
	Type  FrameType `json:"type"`
	Seq   uint64    `json:"seq"`
	Round string    `json:"round,omitempty"`

	// HUD mirror, keyed by readout name
	HUD      map[string]string `json:"hud,omitempty"`
	Vector   int               `json:"vector"`
	Position *Position         `json:"position,omitempty"`

	// Scene is the loaded ending scene, empty while playing
	Scene string `json:"scene,omitempty"`

	Status map[string]string `json:"status,omitempty"`
}

// Position is the displayed target position in gallery units
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// clone copies the frame so the sender can keep mutating its working copy
func (f *Frame) clone() *Frame {
	c := *f
	if f.HUD != nil {
		c.HUD = make(map[string]string, len(f.HUD))
		for k, v := range f.HUD {
			c.HUD[k] = v
		}
	}
	if f.Position != nil {
		p := *f.Position
		c.Position = &p
	}
	return &c
}

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/parameter"
)

// Player plays sound cues through the system speaker
// Play never blocks the game loop; before Initialize succeeds or after Close it is silent
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  map[engine.SoundCue]time.Time
	now         func() time.Time

	// output adds a streamer to the running mix, replaced in tests
	output func(beep.Streamer)
}

// NewPlayer creates a player at linear volume in [0, 1]
func NewPlayer(volume float64) *Player {
	p := &Player{
		rate:       beep.SampleRate(parameter.AudioSampleRate),
		volume:     volume,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[engine.SoundCue]time.Time),
		now:        time.Now,
	}
	p.output = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer, repeated cues inside MinCueGap are dropped
func (p *Player) Play(cue engine.SoundCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	now := p.now()
	if last, ok := p.lastPlayed[cue]; ok && now.Sub(last) < parameter.MinCueGap {
		return
	}

	s := CueStreamer(cue, p.volume, p.rate)
	if s == nil {
		return
	}
	p.lastPlayed[cue] = now
	p.output(s)
}

// Close silences the mixer and closes the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

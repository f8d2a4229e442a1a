package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/quantum-shooter/config"
)

// ErrUnknownScene is returned when a round asks for a scene nobody registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a full-screen ending card
type Scene struct {
	Name     string
	Title    string
	Subtitle string
	Defeated bool // Target destroyed, selects the card color
}

// ScenePresenter implements engine.Presenter by switching the renderer to an ending card
type ScenePresenter struct {
	mu     sync.RWMutex
	scenes map[string]Scene
	active *Scene
}

// NewScenePresenter registers the two ending scenes named in cfg
func NewScenePresenter(cfg config.SceneConfig) *ScenePresenter {
	sp := &ScenePresenter{scenes: make(map[string]Scene, 2)}
	sp.Register(Scene{
		Name:     cfg.Defeated,
		Title:    "TARGET DESTROYED",
		Subtitle: "clean shooting",
		Defeated: true,
	})
	sp.Register(Scene{
		Name:     cfg.Survived,
		Title:    "THE TARGET GOT AWAY",
		Subtitle: "it lives to dodge another day",
	})
	return sp
}

// Register adds or replaces a scene by name
func (sp *ScenePresenter) Register(s Scene) {
	sp.mu.Lock()
	sp.scenes[s.Name] = s
	sp.mu.Unlock()
}

// LoadScene implements engine.Presenter
func (sp *ScenePresenter) LoadScene(name string) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	s, ok := sp.scenes[name]
	if !ok {
		return fmt.Errorf("load scene: %w: %q", ErrUnknownScene, name)
	}
	sp.active = &s
	return nil
}

// Active returns the loaded scene, if any
func (sp *ScenePresenter) Active() (Scene, bool) {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	if sp.active == nil {
		return Scene{}, false
	}
	return *sp.active, true
}

// Reset returns to the gallery view
func (sp *ScenePresenter) Reset() {
	sp.mu.Lock()
	sp.active = nil
	sp.mu.Unlock()
}

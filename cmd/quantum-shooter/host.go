package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/gallery"
	"github.com/lixenwraith/quantum-shooter/input"
	"github.com/lixenwraith/quantum-shooter/network"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/render"
	"github.com/lixenwraith/quantum-shooter/status"
)

// host owns the screen and runs rounds back to back until the player quits
// Everything here belongs to the game loop goroutine
type host struct {
	cfg    *config.Config
	logger *log.Logger
	reg    *status.Registry

	screen     tcell.Screen
	field      *render.Playfield
	hud        *render.HUD
	scenes     *render.ScenePresenter
	renderer   *render.TerminalRenderer
	controller *input.Controller

	sound     engine.SoundPlayer
	spectator *network.Spectator // nil when the feed is off

	clock *engine.FrameClock
	round *gallery.Round
	count int
}

type hostDeps struct {
	Screen    tcell.Screen
	Sound     engine.SoundPlayer
	Spectator *network.Spectator
	Time      engine.TimeProvider
}

func newHost(cfg *config.Config, logger *log.Logger, reg *status.Registry, deps hostDeps) (*host, error) {
	keys, err := input.NewKeymap(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	w, h := deps.Screen.Size()
	field := render.NewPlayfield(w, h)
	hud := render.NewHUD()
	scenes := render.NewScenePresenter(cfg.Scenes)

	if deps.Time == nil {
		deps.Time = engine.NewMonotonicTimeProvider()
	}

	return &host{
		cfg:        cfg,
		logger:     logger,
		reg:        reg,
		screen:     deps.Screen,
		field:      field,
		hud:        hud,
		scenes:     scenes,
		renderer:   render.NewTerminalRenderer(deps.Screen, field, hud, scenes, reg, cfg.Target.MaxHitPoints),
		controller: input.NewController(keys, field),
		sound:      deps.Sound,
		spectator:  deps.Spectator,
		clock:      engine.NewFrameClock(deps.Time, parameter.MaxFrameDelta),
	}, nil
}

// startRound replaces the current round with a fresh one
func (h *host) startRound() error {
	if h.round != nil {
		h.round.Close()
	}
	h.hud.Reset()
	h.scenes.Reset()
	h.controller.Pointer().Reset()

	display := engine.MultiDisplay{h.hud}
	presenter := engine.MultiPresenter{h.scenes}
	if h.spectator != nil {
		display = append(display, h.spectator)
		presenter = append(presenter, h.spectator)
	}

	round, err := gallery.NewRound(h.cfg, gallery.Collaborators{
		Display:   display,
		Presenter: presenter,
		Geometry:  h.field,
		Sound:     h.sound,
		Logger:    h.logger,
		Status:    h.reg,
	})
	if err != nil {
		return err
	}

	h.round = round
	h.count++
	if h.spectator != nil {
		h.spectator.BeginRound(round.ID())
	}
	round.Start()
	h.clock.Reset()
	h.logger.Debug("host round ready", "round", round.ID(), "count", h.count)
	return nil
}

// handle routes one terminal event, returns false when the player quits
func (h *host) handle(ev tcell.Event) (bool, error) {
	switch h.controller.Handle(ev, h.round.Snapshot(), h.round) {
	case input.CommandQuit:
		return false, nil
	case input.CommandRestart:
		if err := h.startRound(); err != nil {
			return false, err
		}
	case input.CommandToggleStatus:
		h.renderer.ToggleStatus()
	}

	if _, ok := ev.(*tcell.EventResize); ok {
		h.screen.Sync()
	}
	return true, nil
}

// frame advances the round by dt and draws it
func (h *host) frame(dt time.Duration) {
	h.round.Tick(dt)
	h.renderer.RenderFrame(h.round.Snapshot())
	if h.spectator != nil {
		h.spectator.Flush(time.Now())
	}
}

// run is the game loop, events is closed when the screen stops delivering input
func (h *host) run(ctx context.Context, events <-chan tcell.Event) error {
	if err := h.startRound(); err != nil {
		return err
	}
	defer func() { h.round.Close() }()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			more, err := h.handle(ev)
			if err != nil || !more {
				return err
			}

		case <-ticker.C:
			h.frame(h.clock.Tick())
		}
	}
}

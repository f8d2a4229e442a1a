package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/quantum-shooter/audio"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/core"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/network"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/status"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file (defaults built in)")
	logFlag      = flag.String("log", "quantum-shooter.log", "Log file path, empty disables logging")
	seedFlag     = flag.Uint64("seed", 0, "Fixed motion seed, 0 draws a fresh one per round")
	debugFlag    = flag.Bool("debug", false, "Debug logging and status overlay")
	spectateFlag = flag.String("spectate", "", "Serve a websocket spectator feed on this address, e.g. :8080")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
)

func main() {
	defer core.Recover()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quantum-shooter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(*logFlag, *debugFlag)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer closer.Close()

	reg := status.NewRegistry()

	// Audio failures are never fatal
	var sound engine.SoundPlayer = engine.NopSound
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	var spectator *network.Spectator
	if netCfg := network.FromSpectatorConfig(cfg.Spectator); netCfg.Enabled() {
		hub := network.NewHub(netCfg)
		spectator = network.NewSpectator(hub, reg, netCfg.FrameInterval)
		server := network.NewServer(netCfg, hub, logger)
		g.Go(core.Wrap(func() error {
			// The game keeps running without its audience
			if err := server.ListenAndServe(gctx); err != nil {
				logger.Error("spectator feed stopped", "err", err)
			}
			return nil
		}))
	}

	h, err := newHost(cfg, logger, reg, hostDeps{
		Screen:    screen,
		Sound:     sound,
		Spectator: spectator,
	})
	if err != nil {
		return err
	}
	if *debugFlag {
		h.renderer.ToggleStatus()
	}

	events := make(chan tcell.Event, parameter.InputChannelSize)
	loopCtx, cancelLoop := context.WithCancel(gctx)

	g.Go(core.Wrap(func() error {
		screen.ChannelEvents(events, loopCtx.Done())
		return nil
	}))
	g.Go(core.Wrap(func() error {
		// Leaving the loop ends input pumping and the spectator feed
		defer cancelLoop()
		defer stop()
		return h.run(loopCtx, events)
	}))

	logger.Info("started", "config", *configFlag, "spectate", cfg.Spectator.Addr, "audio", sound != engine.NopSound)
	err = g.Wait()
	logger.Info("stopped", "rounds", h.count, "err", err)
	return err
}

// loadConfig reads -config over defaults and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}

	if *seedFlag != 0 {
		cfg.Round.Seed = *seedFlag
	}
	if *spectateFlag != "" {
		cfg.Spectator.Addr = *spectateFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

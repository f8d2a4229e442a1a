package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/quantum-shooter/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration, loaded from TOML over Default
type Config struct {
	Target    TargetConfig      `toml:"target"`
	Shooter   ShooterConfig     `toml:"shooter"`
	Round     RoundConfig       `toml:"round"`
	Scenes    SceneConfig       `toml:"scenes"`
	Keys      map[string]string `toml:"keys"` // Key (single char or alias) -> action name
	Spectator SpectatorConfig   `toml:"spectator"`
	Audio     AudioConfig       `toml:"audio"`
}

type TargetConfig struct {
	MaxHitPoints    int           `toml:"max_hit_points"`
	MinSpeed        float64       `toml:"min_speed"`
	MaxSpeed        float64       `toml:"max_speed"`
	MinChangeDelay  time.Duration `toml:"min_change_delay"`
	MaxChangeDelay  time.Duration `toml:"max_change_delay"`
	ObservationTime time.Duration `toml:"observation_time"`
	Width           float64       `toml:"width"`
	Height          float64       `toml:"height"`
}

type ShooterConfig struct {
	MaxShots   int           `toml:"max_shots"`
	MaxReloads int           `toml:"max_reloads"`
	ShotDelay  time.Duration `toml:"shot_delay"`
	ReloadTime time.Duration `toml:"reload_time"`
}

type RoundConfig struct {
	TimeLimit int `toml:"time_limit"` // Whole seconds

	// EndOnOutOfAmmo ends a round as survived once the shooter has nothing left to fire
	EndOnOutOfAmmo bool `toml:"end_on_out_of_ammo"`

	// Seed fixes the motion RNG, zero draws a fresh seed per round
	Seed uint64 `toml:"seed"`
}

type SceneConfig struct {
	Defeated string `toml:"defeated"`
	Survived string `toml:"survived"`
}

type SpectatorConfig struct {
	Addr string `toml:"addr"` // Empty disables the feed
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Target: TargetConfig{
			MaxHitPoints:    parameter.MaxHitPoints,
			MinSpeed:        parameter.MinSpeed,
			MaxSpeed:        parameter.MaxSpeed,
			MinChangeDelay:  parameter.MinChangeDelay,
			MaxChangeDelay:  parameter.MaxChangeDelay,
			ObservationTime: parameter.ObservationTime,
			Width:           parameter.TargetWidth,
			Height:          parameter.TargetHeight,
		},
		Shooter: ShooterConfig{
			MaxShots:   parameter.MaxShots,
			MaxReloads: parameter.MaxReloads,
			ShotDelay:  parameter.ShotDelay,
			ReloadTime: parameter.ReloadTime,
		},
		Round: RoundConfig{
			TimeLimit: parameter.TimeLimit,
		},
		Scenes: SceneConfig{
			Defeated: parameter.SceneDefeated,
			Survived: parameter.SceneSurvived,
		},
		Keys: map[string]string{
			"r": "reload",
			"o": "observe",
			"g": "give_up",
			"n": "restart",
			"q": "quit",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads a TOML file over Default and validates the result
// Keys present in the file's [keys] table are merged into the default bindings
func Load(path string) (*Config, error) {
	cfg := Default()
	keys := cfg.Keys
	cfg.Keys = nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: %w: unknown key %q", path, ErrInvalid, undecoded[0].String())
	}

	for k, v := range cfg.Keys {
		keys[k] = v
	}
	cfg.Keys = keys

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once, each wrapped in ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	t := c.Target
	check(t.MaxHitPoints > 0, "target.max_hit_points must be positive, got %d", t.MaxHitPoints)
	check(t.MinSpeed > 0, "target.min_speed must be positive, got %v", t.MinSpeed)
	check(t.MaxSpeed >= t.MinSpeed, "target.max_speed %v below min_speed %v", t.MaxSpeed, t.MinSpeed)
	check(t.MinChangeDelay > 0, "target.min_change_delay must be positive, got %v", t.MinChangeDelay)
	check(t.MaxChangeDelay >= t.MinChangeDelay, "target.max_change_delay %v below min_change_delay %v", t.MaxChangeDelay, t.MinChangeDelay)
	check(t.ObservationTime > 0, "target.observation_time must be positive, got %v", t.ObservationTime)
	check(t.Width > 0 && t.Height > 0, "target size must be positive, got %vx%v", t.Width, t.Height)

	s := c.Shooter
	check(s.MaxShots > 0, "shooter.max_shots must be positive, got %d", s.MaxShots)
	check(s.MaxReloads >= 0, "shooter.max_reloads must not be negative, got %d", s.MaxReloads)
	check(s.ShotDelay > 0, "shooter.shot_delay must be positive, got %v", s.ShotDelay)
	check(s.ReloadTime > 0, "shooter.reload_time must be positive, got %v", s.ReloadTime)

	check(c.Round.TimeLimit > 0, "round.time_limit must be positive, got %d", c.Round.TimeLimit)
	check(c.Scenes.Defeated != "" && c.Scenes.Survived != "", "scenes.defeated and scenes.survived must be set")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", c.Audio.Volume)

	return errors.Join(errs...)
}

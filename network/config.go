package network

import (
	"time"

	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/parameter"
)

// Config holds spectator feed configuration
type Config struct {
	// Addr to bind, empty disables the feed
	Addr string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout    time.Duration
	FrameInterval   time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	SendQueueSize int

	// AllowAnyOrigin skips the websocket origin check, for local viewers served from file://
	AllowAnyOrigin bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		MaxPeers:        parameter.SpectatorMaxPeers,
		WriteTimeout:    parameter.SpectatorWriteTimeout,
		FrameInterval:   parameter.SpectatorFrameInterval,
		ShutdownTimeout: parameter.SpectatorShutdownTimeout,
		SendQueueSize:   parameter.SpectatorSendQueueSize,
		AllowAnyOrigin:  true,
	}
}

// FromSpectatorConfig applies the [spectator] section over defaults
func FromSpectatorConfig(sc config.SpectatorConfig) *Config {
	cfg := DefaultConfig()
	cfg.Addr = sc.Addr
	return cfg
}

// Enabled reports whether the feed should run
func (c *Config) Enabled() bool {
	return c.Addr != ""
}

// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all configurable game parameters.
type Config struct {
	// Surface
	SurfaceWidth  float64 `json:"surfaceWidth" toml:"surface_width"`   // Logical playfield width
	SurfaceHeight float64 `json:"surfaceHeight" toml:"surface_height"` // Logical playfield height

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight float64 `json:"paddleHeight" toml:"paddle_height"`
	PaddleMargin float64 `json:"paddleMargin" toml:"paddle_margin"` // Gap between a paddle and its side wall
	AISpeed      float64 `json:"aiSpeed" toml:"ai_speed"`           // Max AI paddle travel per tick

	// Ball
	BallRadius float64 `json:"ballRadius" toml:"ball_radius"`
	BallSpeed  float64 `json:"ballSpeed" toml:"ball_speed"` // Per-tick speed, also used for spin and relaunch

	// Timing
	FrameRate int   `json:"frameRate" toml:"frame_rate"` // Ticks per second
	Seed      int64 `json:"seed" toml:"seed"`            // 0 seeds from the clock

	// Colors (hex)
	PlayerColor     string `json:"playerColor" toml:"player_color"`
	AIColor         string `json:"aiColor" toml:"ai_color"`
	BallColor       string `json:"ballColor" toml:"ball_color"`
	NetColor        string `json:"netColor" toml:"net_color"`
	BackgroundColor string `json:"backgroundColor" toml:"background_color"`

	// Host
	ListenAddr string `json:"listenAddr" toml:"listen_addr"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		SurfaceWidth:  800,
		SurfaceHeight: 500,

		PaddleWidth:  12,
		PaddleHeight: 90,
		PaddleMargin: 16,
		AISpeed:      4, // lower is easier

		BallRadius: 10,
		BallSpeed:  6,

		FrameRate: 60,

		PlayerColor:     "#00eaff",
		AIColor:         "#ff3070",
		BallColor:       "#fff",
		NetColor:        "#444",
		BackgroundColor: "#111",

		ListenAddr: ":3001",
	}
}

// TickPeriod is the wall-clock time between two frames.
func (c Config) TickPeriod() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Validate rejects geometry the simulation cannot keep its invariants on.
func (c Config) Validate() error {
	var errs []error
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		errs = append(errs, fmt.Errorf("surface must be positive, got %vx%v", c.SurfaceWidth, c.SurfaceHeight))
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		errs = append(errs, fmt.Errorf("paddle must be positive, got %vx%v", c.PaddleWidth, c.PaddleHeight))
	}
	if c.PaddleHeight > c.SurfaceHeight {
		errs = append(errs, fmt.Errorf("paddle height %v exceeds surface height %v", c.PaddleHeight, c.SurfaceHeight))
	}
	if c.PaddleMargin < 0 || 2*(c.PaddleMargin+c.PaddleWidth) >= c.SurfaceWidth {
		errs = append(errs, fmt.Errorf("paddle margin %v does not fit surface width %v", c.PaddleMargin, c.SurfaceWidth))
	}
	if c.BallRadius <= 0 || 2*c.BallRadius > c.SurfaceHeight {
		errs = append(errs, fmt.Errorf("ball radius %v does not fit surface height %v", c.BallRadius, c.SurfaceHeight))
	}
	if c.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.BallSpeed))
	}
	if c.AISpeed < 0 {
		errs = append(errs, fmt.Errorf("ai speed must not be negative, got %v", c.AISpeed))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate must be positive, got %d", c.FrameRate))
	}
	for name, hex := range map[string]string{
		"player_color":     c.PlayerColor,
		"ai_color":         c.AIColor,
		"ball_color":       c.BallColor,
		"net_color":        c.NetColor,
		"background_color": c.BackgroundColor,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig decodes a TOML file over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

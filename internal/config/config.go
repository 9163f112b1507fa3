// Package config provides YAML-based game configuration loading,
// validation and difficulty progression.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for Alien Invasion.
type Config struct {
	Terminal   Profile          `yaml:"terminal"`
	Window     Profile          `yaml:"window"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	HUD        HUDConfig        `yaml:"hud"`
	Audio      AudioConfig      `yaml:"audio"`
	Storage    StorageConfig    `yaml:"storage"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// Profile holds the geometry and speeds for one frontend.
// The terminal profile is measured in cells, the window profile in pixels.
type Profile struct {
	Screen ScreenConfig `yaml:"screen"`
	Ship   ShipConfig   `yaml:"ship"`
	Bullet BulletConfig `yaml:"bullet"`
	Alien  AlienConfig  `yaml:"alien"`
	Fleet  FleetConfig  `yaml:"fleet"`
}

// ScreenConfig defines the playfield size and frame rate.
// A zero width or height means "use the terminal size".
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Max    int     `yaml:"max"` // Projectiles allowed in flight at once
}

// AlienConfig defines a single alien sprite.
type AlienConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FleetConfig defines formation movement.
type FleetConfig struct {
	Speed     float64 `yaml:"speed"`
	Drop      float64 `yaml:"drop"`
	Direction int     `yaml:"direction"` // +1 = right, -1 = left
}

// Gameplay defines rules shared by all frontends.
type Gameplay struct {
	Lives        int     `yaml:"lives"`
	AlienPoints  int     `yaml:"alien_points"`
	SpawnChance  float64 `yaml:"spawn_chance"`  // Per-cell probability in [0, 1]
	RespawnPause float64 `yaml:"respawn_pause"` // Seconds frozen after losing a life
}

// DifficultyConfig defines level-to-level progression.
type DifficultyConfig struct {
	Preset string  `yaml:"preset"` // easy, normal, hard, fixed
	Scale  float64 `yaml:"scale"`  // Speed multiplier applied on every level clear
}

// HUDConfig defines text colors and layout.
type HUDConfig struct {
	Color       string `yaml:"color"`  // Hex color for HUD text
	AccentColor string `yaml:"accent"` // Hex color for overlays
	Padding     int    `yaml:"padding"`
	FontScale   int    `yaml:"font_scale"` // Window frontend only
}

// AudioConfig defines synthesized sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	ScoresFile string `yaml:"scores_file"` // JSON hi-score record
	HistoryDB  string `yaml:"history_db"`  // SQLite score history
}

// AssetsConfig lists optional sprite images for the window frontend.
// Empty paths fall back to flat colored rectangles.
type AssetsConfig struct {
	Ship       string `yaml:"ship"`
	Alien      string `yaml:"alien"`
	Bullet     string `yaml:"bullet"`
	Background string `yaml:"background"`
}

// Settings is the resolved, read-only configuration for one game instance.
type Settings struct {
	Ship     ShipConfig
	Bullet   BulletConfig
	Alien    AlienConfig
	Fleet    FleetConfig
	Gameplay Gameplay
	Scale    float64
	FPS      int
}

// Settings resolves a profile against the shared gameplay sections.
func (c Config) Settings(p Profile) Settings {
	fps := p.Screen.FPS
	if fps <= 0 {
		fps = 60
	}
	return Settings{
		Ship:     p.Ship,
		Bullet:   p.Bullet,
		Alien:    p.Alien,
		Fleet:    p.Fleet,
		Gameplay: c.Gameplay,
		Scale:    c.Difficulty.Scale,
		FPS:      fps,
	}
}

// Validate checks that settings can drive a game on a field of the given size.
func Validate(s Settings, fieldW, fieldH int) error {
	switch {
	case fieldW <= 0 || fieldH <= 0:
		return fmt.Errorf("config: field %dx%d: %w", fieldW, fieldH, ErrInvalidConfig)
	case s.Alien.Width <= 0 || s.Alien.Height <= 0:
		return fmt.Errorf("config: alien size %vx%v must be positive: %w", s.Alien.Width, s.Alien.Height, ErrInvalidConfig)
	case s.Ship.Width <= 0 || s.Ship.Height <= 0:
		return fmt.Errorf("config: ship size %vx%v must be positive: %w", s.Ship.Width, s.Ship.Height, ErrInvalidConfig)
	case s.Ship.Width > float64(fieldW) || s.Ship.Height > float64(fieldH):
		return fmt.Errorf("config: ship does not fit a %dx%d field: %w", fieldW, fieldH, ErrInvalidConfig)
	case s.Bullet.Width <= 0 || s.Bullet.Height <= 0:
		return fmt.Errorf("config: bullet size %vx%v must be positive: %w", s.Bullet.Width, s.Bullet.Height, ErrInvalidConfig)
	case s.Bullet.Max < 0:
		return fmt.Errorf("config: bullet max %d is negative: %w", s.Bullet.Max, ErrInvalidConfig)
	case s.Fleet.Direction != 1 && s.Fleet.Direction != -1:
		return fmt.Errorf("config: fleet direction %d must be 1 or -1: %w", s.Fleet.Direction, ErrInvalidConfig)
	case s.Gameplay.SpawnChance < 0 || s.Gameplay.SpawnChance > 1:
		return fmt.Errorf("config: spawn chance %v outside [0, 1]: %w", s.Gameplay.SpawnChance, ErrInvalidConfig)
	case s.Gameplay.Lives < 0:
		return fmt.Errorf("config: lives %d is negative: %w", s.Gameplay.Lives, ErrInvalidConfig)
	case s.Scale <= 0:
		return fmt.Errorf("config: difficulty scale %v must be positive: %w", s.Scale, ErrInvalidConfig)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Terminal: Profile{
			Screen: ScreenConfig{FPS: 60},
			Ship:   ShipConfig{Width: 5, Height: 1, Speed: 0.75},
			Bullet: BulletConfig{Width: 1, Height: 1, Speed: 0.5, Max: 5},
			Alien:  AlienConfig{Width: 3, Height: 1},
			Fleet:  FleetConfig{Speed: 0.1, Drop: 1, Direction: 1},
		},
		Window: Profile{
			Screen: ScreenConfig{Width: 1200, Height: 800, FPS: 60},
			Ship:   ShipConfig{Width: 40, Height: 60, Speed: 5},
			Bullet: BulletConfig{Width: 25, Height: 80, Speed: 7, Max: 5},
			Alien:  AlienConfig{Width: 40, Height: 40},
			Fleet:  FleetConfig{Speed: 1, Drop: 40, Direction: 1},
		},
		Gameplay: Gameplay{
			Lives:        3,
			AlienPoints:  50,
			SpawnChance:  0.05,
			RespawnPause: 1.0,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
			Scale:  1.1,
		},
		HUD: HUDConfig{
			Color:       "#ffffff",
			AccentColor: "#ffd700",
			Padding:     20,
			FontScale:   2,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
		Storage: StorageConfig{
			ScoresFile: "~/.invaders/scores.json",
			HistoryDB:  "~/.invaders/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset.
// Unknown values return "" so callers keep the configured preset.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.Scale = 1.05
		cfg.Terminal.Fleet.Speed *= 0.75
		cfg.Window.Fleet.Speed *= 0.75
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.Scale = 1.2
		cfg.Terminal.Fleet.Speed *= 1.5
		cfg.Window.Fleet.Speed *= 1.5
	case DifficultyFixed:
		cfg.Difficulty.Scale = 1.0
	}
}

// Dynamic is the subset of settings that changes between levels.
// Values are copied, never shared: Advance returns a new Dynamic.
type Dynamic struct {
	ShipSpeed   float64
	BulletSpeed float64
	FleetSpeed  float64
	MaxBullets  int
	Lives       int
	AlienPoints int
}

// InitialDynamic returns the level-1 dynamic settings.
func (s Settings) InitialDynamic() Dynamic {
	return Dynamic{
		ShipSpeed:   s.Ship.Speed,
		BulletSpeed: s.Bullet.Speed,
		FleetSpeed:  s.Fleet.Speed,
		MaxBullets:  s.Bullet.Max,
		Lives:       s.Gameplay.Lives,
		AlienPoints: s.Gameplay.AlienPoints,
	}
}

// Advance returns the settings for the next level: ship, bullet and fleet
// speeds are multiplied by scale. Repeated calls compound.
func (d Dynamic) Advance(scale float64) Dynamic {
	d.ShipSpeed *= scale
	d.BulletSpeed *= scale
	d.FleetSpeed *= scale
	return d
}

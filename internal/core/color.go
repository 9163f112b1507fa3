package core

// Color is the role of a screen cell. Frontends map roles to real colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHUD           // Score line
	ColorAccent        // Level and lives
	ColorShip
	ColorAlien
	ColorBullet
	ColorAlert // Game over title
	ColorDim
)

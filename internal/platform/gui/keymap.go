package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// MapKeys translates one frame's key edges to game actions, presses
// before releases. Returns true if a quit key was pressed.
func MapKeys(pressed, released []ebiten.Key, frame *core.InputFrame) bool {
	quit := false
	for _, k := range pressed {
		switch k {
		case ebiten.KeyLeft, ebiten.KeyA:
			frame.Set(core.ActionLeftStart)
		case ebiten.KeyRight, ebiten.KeyD:
			frame.Set(core.ActionRightStart)
		case ebiten.KeySpace:
			frame.Set(core.ActionFire)
		case ebiten.KeyEnter, ebiten.KeyKPEnter:
			frame.Set(core.ActionRestart)
		case ebiten.KeyP:
			frame.Set(core.ActionPause)
		case ebiten.KeyQ, ebiten.KeyEscape:
			frame.Set(core.ActionQuit)
			quit = true
		}
	}
	for _, k := range released {
		switch k {
		case ebiten.KeyLeft, ebiten.KeyA:
			frame.Set(core.ActionLeftStop)
		case ebiten.KeyRight, ebiten.KeyD:
			frame.Set(core.ActionRightStop)
		}
	}
	return quit
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Direction of a held movement key.
const (
	steerNone  = 0
	steerLeft  = -1
	steerRight = 1
)

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses (and auto-repeats) but never releases, so
// the mapper synthesizes the stop events: a direction is released when the
// opposite one is pressed, on down/s, or when no repeat has arrived for
// holdTicks frames.
type KeyMapper struct {
	holdTicks int
	steer     int
	idle      int
}

// NewKeyMapper creates a key mapper whose movement keys stay held for
// holdTicks frames after the last press or repeat.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{holdTicks: holdTicks}
}

// MapKeyToFrame appends the actions for a key press to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case "left", "a", "h":
		km.press(steerLeft, frame)
	case "right", "d", "l":
		km.press(steerRight, frame)
	case "down", "s":
		km.release(frame)
	case " ", "up", "w":
		frame.Set(core.ActionFire)
	case "enter", "r":
		frame.Set(core.ActionRestart)
	case "p", "esc":
		frame.Set(core.ActionPause)
	}
	return false
}

// Tick advances the hold timer by one frame and releases an expired direction.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	if km.steer == steerNone {
		return
	}
	km.idle++
	if km.idle > km.holdTicks {
		km.release(frame)
	}
}

// Reset forgets any held direction without emitting events.
func (km *KeyMapper) Reset() {
	km.steer = steerNone
	km.idle = 0
}

// press starts moving in dir, releasing the opposite direction first.
// A repeat of the held direction only re-arms the timer.
func (km *KeyMapper) press(dir int, frame *core.InputFrame) {
	km.idle = 0
	if km.steer == dir {
		return
	}
	km.release(frame)
	km.steer = dir
	if dir == steerLeft {
		frame.Set(core.ActionLeftStart)
	} else {
		frame.Set(core.ActionRightStart)
	}
}

// release stops the held direction, if any.
func (km *KeyMapper) release(frame *core.InputFrame) {
	switch km.steer {
	case steerLeft:
		frame.Set(core.ActionLeftStop)
	case steerRight:
		frame.Set(core.ActionRightStop)
	}
	km.steer = steerNone
	km.idle = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// Package utils provides shared input helpers.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the pointer state for the current frame, unifying
// mouse and touch input.
type InputState struct {
	// JustPressed reports a click or touch that started this frame.
	JustPressed bool
	// X, Y is the pointer position.
	X, Y int
	// IsTouching reports an active touch.
	IsTouching bool
}

// GetInputState reads the pointer state for the current frame. Touch
// input takes priority over the mouse.
func GetInputState() InputState {
	state := InputState{}

	// New touch this frame (mobile).
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// Ongoing touch, used for hover-style feedback.
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// Mouse (desktop).
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	return state
}

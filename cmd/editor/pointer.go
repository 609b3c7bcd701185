package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/input"
)

// pollPointer samples the mouse for this frame.
func pollPointer() input.Frame {
	m := rl.GetMousePosition()
	return input.Frame{
		X:        m.X,
		Y:        m.Y,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
}

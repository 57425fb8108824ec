package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the keyboard state for one frame.
type Input interface {
	IsKeyPressed(key int32) bool
	IsKeyDown(key int32) bool
}

// RaylibInput reads the window's keyboard.
type RaylibInput struct{}

func (RaylibInput) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

func (RaylibInput) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

package ui

import (
	"snake-minigame/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = map[types.Key]int32{
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
	types.KeyW:     rl.KeyW,
	types.KeyS:     rl.KeyS,
	types.KeyA:     rl.KeyA,
	types.KeyD:     rl.KeyD,
}

// Keyboard reads key state from the raylib window.
type Keyboard struct{}

func (Keyboard) JustPressed(k types.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyPressed(code)
}

func (Keyboard) Pressed(k types.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyDown(code)
}

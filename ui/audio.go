package ui

import (
	"snake-minigame/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Audio struct {
	assets *Assets
}

func NewAudio(assets *Assets) *Audio {
	return &Audio{assets: assets}
}

// PlayOnce starts the sound and returns. Unknown or failed handles are
// ignored.
func (a *Audio) PlayOnce(h types.AssetHandle) {
	if h == types.NoAsset {
		return
	}
	if s, ok := a.assets.Sound(h); ok {
		rl.PlaySound(s)
	}
}

package game

import (
	"snake-minigame/game/types"

	"github.com/google/uuid"
)

type noopAssets struct{}

func (noopAssets) Load(string) types.AssetHandle { return types.NoAsset }

type noopRenderer struct{}

func (noopRenderer) Spawn(types.Visual) types.VisualID { return 0 }
func (noopRenderer) Despawn(types.VisualID)            {}
func (noopRenderer) Move(types.VisualID, types.Point)  {}

type noopAudio struct{}

func (noopAudio) PlayOnce(types.AssetHandle) {}

type noopInput struct{}

func (noopInput) JustPressed(types.Key) bool { return false }
func (noopInput) Pressed(types.Key) bool     { return false }

type noopObserver struct{}

func (noopObserver) MinigameActivated(types.GameType, uuid.UUID) {}

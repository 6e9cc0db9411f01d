package game

import (
	"snake-minigame/game/types"

	"github.com/google/uuid"
)

type scriptedRandom struct {
	values []int
}

func (r *scriptedRandom) UniformInt(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type recordingRenderer struct {
	next    types.VisualID
	visuals map[types.VisualID]types.Visual
	moves   int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{visuals: make(map[types.VisualID]types.Visual)}
}

func (r *recordingRenderer) Spawn(v types.Visual) types.VisualID {
	r.next++
	r.visuals[r.next] = v
	return r.next
}

func (r *recordingRenderer) Despawn(id types.VisualID) {
	delete(r.visuals, id)
}

func (r *recordingRenderer) Move(id types.VisualID, p types.Point) {
	v := r.visuals[id]
	v.Position = p
	r.visuals[id] = v
	r.moves++
}

type recordingAudio struct {
	played []types.AssetHandle
}

func (a *recordingAudio) PlayOnce(h types.AssetHandle) {
	a.played = append(a.played, h)
}

type pathAssets struct {
	handles map[string]types.AssetHandle
}

func newPathAssets() *pathAssets {
	return &pathAssets{handles: make(map[string]types.AssetHandle)}
}

func (a *pathAssets) Load(path string) types.AssetHandle {
	if h, ok := a.handles[path]; ok {
		return h
	}
	h := types.AssetHandle(len(a.handles) + 1)
	a.handles[path] = h
	return h
}

// frameInput reports keys as just pressed for a single Update.
type frameInput struct {
	pressed map[types.Key]bool
}

func (in *frameInput) press(keys ...types.Key) {
	in.pressed = make(map[types.Key]bool, len(keys))
	for _, k := range keys {
		in.pressed[k] = true
	}
}

func (in *frameInput) JustPressed(k types.Key) bool {
	return in.pressed[k]
}

func (in *frameInput) Pressed(k types.Key) bool {
	return in.pressed[k]
}

type recordingObserver struct {
	activations []uuid.UUID
	games       []types.GameType
}

func (o *recordingObserver) MinigameActivated(game types.GameType, session uuid.UUID) {
	o.games = append(o.games, game)
	o.activations = append(o.activations, session)
}

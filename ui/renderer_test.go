package ui

import (
	"testing"

	"snake-minigame/game/types"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_TracksVisuals(t *testing.T) {
	r := &Renderer{visuals: make(map[types.VisualID]types.Visual)}

	head := r.Spawn(types.Visual{Position: types.Point{X: 1, Y: 1}, Size: 1})
	body := r.Spawn(types.Visual{Position: types.Point{X: 1, Y: 1}, Size: 0.8})
	food := r.Spawn(types.Visual{Position: types.Point{X: 3, Y: 0}, Size: 0.6})
	assert.NotEqual(t, head, body)

	r.Move(head, types.Point{X: 2, Y: 1})
	r.Despawn(food)
	r.Move(food, types.Point{X: 4, Y: 4})

	got := r.ordered()
	assert.Len(t, got, 2)
	assert.Equal(t, float32(0.8), got[0].Size)
	assert.Equal(t, types.Point{X: 2, Y: 1}, got[1].Position)
}

func TestAssets_HandlesAreStable(t *testing.T) {
	a := NewAssets()

	green := a.Load("sounds/eat_green.wav")
	red := a.Load("sounds/eat_red.wav")
	assert.NotEqual(t, types.NoAsset, green)
	assert.NotEqual(t, green, red)
	assert.Equal(t, green, a.Load("sounds/eat_green.wav"))

	_, ok := a.Texture(green)
	assert.False(t, ok)
}

func TestKeyboard_UnknownKey(t *testing.T) {
	assert.False(t, Keyboard{}.JustPressed(types.Key(99)))
	assert.False(t, Keyboard{}.Pressed(types.Key(99)))
}

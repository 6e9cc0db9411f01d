package manager

import (
	"snake-minigame/game/entity"
	"snake-minigame/game/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRandom returns queued values in order and records every bound it
// was asked for. Once the script runs out it returns 0.
type scriptedRandom struct {
	values []int
	bounds []int
}

func (r *scriptedRandom) UniformInt(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

var testEffects = map[types.FoodKind]types.FoodEffect{
	types.Green: {Growth: 1},
	types.Red:   {Growth: 2, SpeedMultiplier: 1.25},
	types.Blue:  {SpeedMultiplier: 0.85},
}

func newSnakeAt(t *testing.T, grid types.Grid, start types.Point, facing types.Direction, length int) *entity.Snake {
	t.Helper()
	s, err := entity.NewSnake(grid, start, facing, length)
	require.NoError(t, err)
	return s
}

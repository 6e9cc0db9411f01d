package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_StepWrapsAtEdges(t *testing.T) {
	grid := NewGrid(13, 13)

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{name: "right edge", from: Point{X: 12, Y: 4}, dir: Right, want: Point{X: 0, Y: 4}},
		{name: "left edge", from: Point{X: 0, Y: 4}, dir: Left, want: Point{X: 12, Y: 4}},
		{name: "top edge", from: Point{X: 7, Y: 0}, dir: Up, want: Point{X: 7, Y: 12}},
		{name: "bottom edge", from: Point{X: 7, Y: 12}, dir: Down, want: Point{X: 7, Y: 0}},
		{name: "interior", from: Point{X: 6, Y: 6}, dir: Left, want: Point{X: 5, Y: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Step(tt.from, tt.dir))
		})
	}
}

func TestGrid_WrapNonSquare(t *testing.T) {
	grid := NewGrid(5, 3)
	assert.Equal(t, Point{X: 4, Y: 2}, grid.Wrap(Point{X: 0, Y: 0}, -1, -1))
	assert.Equal(t, Point{X: 0, Y: 0}, grid.Wrap(Point{X: 4, Y: 2}, 1, 1))
	assert.Equal(t, 15, grid.Area())
	assert.Equal(t, Point{X: 2, Y: 1}, grid.Center())
}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		assert.NotEqual(t, d, d.Opposite(), d.String())
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())

		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("left")
	require.NoError(t, err)
	assert.Equal(t, Left, d)

	_, err = ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "game_over", GameOver.String())
	assert.Equal(t, "Snake", Snake.String())
}

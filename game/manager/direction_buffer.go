package manager

import "snake-minigame/game/types"

// DirectionBuffer holds the last accepted heading between ticks. Reading it
// does not clear it.
type DirectionBuffer struct {
	direction types.Direction
}

func NewDirectionBuffer(initial types.Direction) *DirectionBuffer {
	return &DirectionBuffer{direction: initial}
}

// Accept stores requested unless it would reverse the snake onto itself.
func (b *DirectionBuffer) Accept(facing, requested types.Direction) bool {
	if !requested.Valid() || requested == facing.Opposite() {
		return false
	}
	b.direction = requested
	return true
}

func (b *DirectionBuffer) Direction() types.Direction {
	return b.direction
}

// Reset overwrites the buffer without the reversal check, for a new chain.
func (b *DirectionBuffer) Reset(d types.Direction) {
	b.direction = d
}

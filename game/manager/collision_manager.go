package manager

import (
	"snake-minigame/game/entity"
	"snake-minigame/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSelfCollision reports whether the head landed on another segment.
// It must run after the step so it sees post-move positions.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) bool {
	if snake == nil {
		return false
	}
	return snake.SelfCollides()
}

// CheckFoodCollisions returns the first food any segment is standing on.
// Foods are checked in kind order and segments head first, so at most one
// food is reported per step even when several overlap the chain.
func (cm *CollisionManager) CheckFoodCollisions(snake *entity.Snake, foodList []entity.Food) (entity.Food, bool) {
	if snake == nil {
		return entity.Food{}, false
	}
	positions := snake.Positions()
	for _, food := range foodList {
		for _, pos := range positions {
			if pos == food.Position {
				return food, true
			}
		}
	}
	return entity.Food{}, false
}

// Occupancy marks every cell covered by a segment or a food, indexed
// row-major. It returns the grid and the number of occupied cells.
func (cm *CollisionManager) Occupancy(snake *entity.Snake, foodList []entity.Food) ([]bool, int) {
	occupied := make([]bool, cm.grid.Area())
	count := 0
	mark := func(p types.Point) {
		if !cm.grid.Contains(p) {
			return
		}
		i := cm.grid.Index(p)
		if !occupied[i] {
			occupied[i] = true
			count++
		}
	}
	if snake != nil {
		for _, p := range snake.Positions() {
			mark(p)
		}
	}
	for _, food := range foodList {
		mark(food.Position)
	}
	return occupied, count
}

// ValidateSpawnPosition checks if a position is free for a new food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, foodList []entity.Food) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	for _, food := range foodList {
		if food.Position == pos {
			return false
		}
	}
	return true
}

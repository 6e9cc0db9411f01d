package manager

import (
	"snake-minigame/game/entity"
	"snake-minigame/game/types"

	"github.com/pkg/errors"
)

// FoodManager keeps exactly one live food of each kind on free cells.
type FoodManager struct {
	grid         types.Grid
	effects      map[types.FoodKind]types.FoodEffect
	rng          types.RandomSource
	collisionMgr *CollisionManager
	foods        map[types.FoodKind]entity.Food
}

func NewFoodManager(grid types.Grid, effects map[types.FoodKind]types.FoodEffect, rng types.RandomSource, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		effects:      effects,
		rng:          rng,
		collisionMgr: collisionMgr,
		foods:        make(map[types.FoodKind]entity.Food, len(types.FoodKinds)),
	}
}

// Update spawns every kind that has no live instance and returns the new
// foods in kind order. Each spawn sees the foods placed before it.
func (fm *FoodManager) Update(snake *entity.Snake) ([]entity.Food, error) {
	var spawned []entity.Food
	for _, kind := range types.FoodKinds {
		if _, ok := fm.foods[kind]; ok {
			continue
		}
		food, err := fm.Spawn(kind, snake)
		if err != nil {
			return spawned, err
		}
		spawned = append(spawned, food)
	}
	return spawned, nil
}

// Spawn places kind on a uniformly random free cell.
func (fm *FoodManager) Spawn(kind types.FoodKind, snake *entity.Snake) (entity.Food, error) {
	if _, ok := fm.foods[kind]; ok {
		return entity.Food{}, errors.Wrapf(types.ErrInvariantViolation, "%s food already live", kind)
	}
	pos, err := fm.GenerateFood(snake)
	if err != nil {
		return entity.Food{}, errors.Wrapf(err, "spawn %s food", kind)
	}
	food := entity.Food{Kind: kind, Position: pos, Effect: fm.effects[kind]}
	if err := fm.AddFood(food, snake); err != nil {
		return entity.Food{}, err
	}
	return food, nil
}

// GenerateFood draws i in [0,free) and walks the grid in row-major order,
// skipping occupied cells, until the i-th free cell.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	occupied, count := fm.collisionMgr.Occupancy(snake, fm.GetFoodList())
	free := fm.grid.Area() - count
	if free <= 0 {
		return types.Point{}, types.ErrArenaExhausted
	}

	i := fm.rng.UniformInt(free)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if occupied[fm.grid.Index(p)] {
				continue
			}
			if i == 0 {
				return p, nil
			}
			i--
		}
	}
	return types.Point{}, errors.Wrapf(types.ErrInvariantViolation, "random index outside %d free cells", free)
}

// GetFoodList returns the live foods in kind order.
func (fm *FoodManager) GetFoodList() []entity.Food {
	list := make([]entity.Food, 0, len(fm.foods))
	for _, kind := range types.FoodKinds {
		if food, ok := fm.foods[kind]; ok {
			list = append(list, food)
		}
	}
	return list
}

func (fm *FoodManager) Food(kind types.FoodKind) (entity.Food, bool) {
	food, ok := fm.foods[kind]
	return food, ok
}

// AddFood places a food on a given cell. The cell must be inside the arena
// and clear of the chain and other food, and the kind must not be live.
func (fm *FoodManager) AddFood(food entity.Food, snake *entity.Snake) error {
	if _, ok := fm.foods[food.Kind]; ok {
		return errors.Wrapf(types.ErrInvariantViolation, "%s food already live", food.Kind)
	}
	if !fm.collisionMgr.ValidateSpawnPosition(food.Position, snake, fm.GetFoodList()) {
		return errors.Wrapf(types.ErrInvariantViolation, "%s food on occupied cell %v", food.Kind, food.Position)
	}
	fm.foods[food.Kind] = food
	return nil
}

func (fm *FoodManager) RemoveFood(kind types.FoodKind) (entity.Food, bool) {
	food, ok := fm.foods[kind]
	if ok {
		delete(fm.foods, kind)
	}
	return food, ok
}

// Clear removes every food and returns what was removed.
func (fm *FoodManager) Clear() []entity.Food {
	removed := fm.GetFoodList()
	fm.foods = make(map[types.FoodKind]entity.Food, len(types.FoodKinds))
	return removed
}

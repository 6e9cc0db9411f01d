package game

import (
	"snake-minigame/game/entity"
	"snake-minigame/game/types"
)

const (
	headSize = 1.0
	bodySize = 0.8
	foodSize = 0.6
)

func (g *Game) spawnSegmentVisual(seg entity.Segment) {
	v := types.Visual{Position: seg.Position, Color: types.ColorBody, Size: bodySize}
	if seg.IsHead() {
		v.Color = types.ColorWhite
		v.Size = headSize
	}
	g.segmentVisuals[seg.ID] = g.deps.Renderer.Spawn(v)
}

// syncSegments pushes every segment's position to its visual after a step.
func (g *Game) syncSegments() {
	for _, seg := range g.snake.Segments() {
		if visual, ok := g.segmentVisuals[seg.ID]; ok {
			g.deps.Renderer.Move(visual, seg.Position)
		}
	}
}

func (g *Game) spawnFoodVisual(food entity.Food) {
	g.foodVisuals[food.Kind] = g.deps.Renderer.Spawn(types.Visual{
		Position: food.Position,
		Color:    food.Color(),
		Size:     foodSize,
	})
}

func (g *Game) despawnFoodVisual(kind types.FoodKind) {
	if visual, ok := g.foodVisuals[kind]; ok {
		g.deps.Renderer.Despawn(visual)
		delete(g.foodVisuals, kind)
	}
}

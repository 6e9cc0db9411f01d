package game

import (
	"snake-minigame/game/entity"
	"snake-minigame/game/manager"
	"snake-minigame/game/types"
	"snake-minigame/logger"

	"github.com/pkg/errors"
)

// dispatch drains the step's events in the order they were raised.
func (g *Game) dispatch() error {
	for _, e := range g.events.ReadAllMessages() {
		var err error
		switch e.Kind {
		case manager.FoodEaten:
			err = g.onFoodEaten(e.Food)
		case manager.SnakeCrashed:
			err = g.onSnakeCrashed()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// onFoodEaten applies growth, then the speed change, then the audio cue.
func (g *Game) onFoodEaten(food entity.Food) error {
	g.session.Score++
	g.deps.Metrics.ObserveFoodEaten(food.Kind)

	if food.Effect.Growth > 0 {
		ids, err := g.snake.Grow(food.Effect.Growth)
		if err != nil {
			return err
		}
		for _, id := range ids {
			seg, err := g.snake.Segment(id)
			if err != nil {
				return err
			}
			g.spawnSegmentVisual(seg)
		}
		g.deps.Metrics.SetSnakeLength(g.snake.Len())
	}

	if food.Effect.ChangesSpeed() {
		if err := g.clock.SetMultiplier(food.Effect.SpeedMultiplier); err != nil {
			return errors.Wrapf(err, "%s food", food.Kind)
		}
		g.deps.Metrics.SetTickInterval(g.clock.Interval())
	}

	if cue, ok := g.cues[food.Kind]; ok {
		g.deps.Audio.PlayOnce(cue)
	}

	logger.Log.Debugw("food eaten",
		"kind", food.Kind.String(),
		"length", g.snake.Len(),
		"interval", g.clock.Interval().String(),
		"score", g.session.Score,
	)
	return nil
}

func (g *Game) onSnakeCrashed() error {
	if err := g.stateMgr.Transition(types.GameOver); err != nil {
		return err
	}
	g.deps.Metrics.ObserveGameOver()
	if g.gameOverCue != types.NoAsset {
		g.deps.Audio.PlayOnce(g.gameOverCue)
	}
	logger.Log.Infow("snake crashed", "session", g.sessionID(), "score", g.session.Score, "length", g.snake.Len())
	return nil
}

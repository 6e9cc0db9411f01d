package entity

import "snake-minigame/game/types"

// Food is a live pickup. At most one exists per kind.
type Food struct {
	Kind     types.FoodKind
	Position types.Point
	Effect   types.FoodEffect
}

// Color is the fill used when the food has no sprite.
func (f Food) Color() types.Color {
	switch f.Kind {
	case types.Green:
		return types.ColorGreen
	case types.Red:
		return types.ColorRed
	case types.Blue:
		return types.ColorBlue
	default:
		return types.ColorWhite
	}
}

package types

// FoodKind is one of the three fixed food variants.
type FoodKind int

const (
	Green FoodKind = iota
	Red
	Blue
)

// FoodKinds lists every kind in spawn order.
var FoodKinds = [...]FoodKind{Green, Red, Blue}

func (k FoodKind) String() string {
	switch k {
	case Green:
		return "green"
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// FoodEffect is what eating a kind does to the snake and the clock.
// A SpeedMultiplier of 0 means the tick interval is left alone.
type FoodEffect struct {
	Growth          int
	SpeedMultiplier float64
}

// ChangesSpeed reports whether the effect touches the tick interval.
func (e FoodEffect) ChangesSpeed() bool {
	return e.SpeedMultiplier != 0
}

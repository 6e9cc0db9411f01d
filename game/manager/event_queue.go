package manager

import "snake-minigame/game/entity"

type EventKind int

const (
	// FoodEaten carries the food that was removed this step.
	FoodEaten EventKind = iota
	// SnakeCrashed is raised when the head hits the body.
	SnakeCrashed
)

func (k EventKind) String() string {
	switch k {
	case FoodEaten:
		return "food_eaten"
	case SnakeCrashed:
		return "snake_crashed"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	Food entity.Food
}

// EventQueue collects the events of one step in order. The game drains it
// once per step; nothing outlives the step that raised it.
type EventQueue struct {
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Enqueue adds an event to the end of the queue.
func (q *EventQueue) Enqueue(e Event) {
	q.events = append(q.events, e)
}

func (q *EventQueue) Size() int {
	return len(q.events)
}

// ReadAllMessages returns the pending events in order and empties the queue.
func (q *EventQueue) ReadAllMessages() []Event {
	events := q.events
	q.events = nil
	return events
}

func (q *EventQueue) ClearQueue() {
	q.events = nil
}

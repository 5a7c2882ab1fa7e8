package core

// Event is a discrete game occurrence emitted by the engine during a tick.
// The platform maps events to side effects such as sound playback.
type Event int

const (
	EventFoodEaten Event = iota + 1
	EventBonusEaten
	EventGameOver
)

// String returns a stable lowercase name, also used as a metrics label.
func (e Event) String() string {
	switch e {
	case EventFoodEaten:
		return "food_eaten"
	case EventBonusEaten:
		return "bonus_eaten"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

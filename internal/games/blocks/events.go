package blocks

import "fmt"

// EventKind identifies an engine event.
type EventKind uint8

const (
	EventLock EventKind = iota
	EventLineClear
	EventLevelUp
	EventGameOver
	EventHold
	EventHardDrop
	EventStateChanged
)

func (k EventKind) String() string {
	switch k {
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventHold:
		return "hold"
	case EventHardDrop:
		return "hard_drop"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for the presentation layer.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Score int

	Rows     []int // EventLineClear: cleared row indices
	Count    int   // EventLineClear: number of rows
	Level    int   // EventLevelUp
	Gravity  int   // EventLevelUp: new gravity interval
	Distance int   // EventHardDrop
	From, To State // EventStateChanged
}

func (e Event) String() string {
	switch e.Kind {
	case EventLineClear:
		return fmt.Sprintf("cleared %d line(s), score %d", e.Count, e.Score)
	case EventLevelUp:
		return fmt.Sprintf("level %d, gravity %d", e.Level, e.Gravity)
	case EventGameOver:
		return fmt.Sprintf("game over, score %d", e.Score)
	case EventHardDrop:
		return fmt.Sprintf("hard drop %d row(s)", e.Distance)
	case EventStateChanged:
		return fmt.Sprintf("%s -> %s", e.From, e.To)
	default:
		return e.Kind.String()
	}
}

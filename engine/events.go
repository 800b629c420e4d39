package engine

import "fmt"

// EventKind identifies a gameplay notification.
type EventKind int

const (
	EventMove EventKind = iota
	EventRotate
	EventSoftDrop
	EventHardDrop
	EventLineClear
	EventLevelUp
	EventGameOver
	EventMuteToggled
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventSoftDrop:
		return "soft-drop"
	case EventHardDrop:
		return "hard-drop"
	case EventLineClear:
		return "line-clear"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventMuteToggled:
		return "mute-toggled"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a fire-and-forget notification for audio and haptics.
type Event struct {
	Kind EventKind
	// Rows is the number of rows cleared for EventLineClear.
	Rows int
	// Level is the new level for EventLevelUp.
	Level int
	// Muted is the new mute state for EventMuteToggled.
	Muted bool
}

func (e Event) String() string {
	switch e.Kind {
	case EventLineClear:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Rows)
	case EventLevelUp:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Level)
	case EventMuteToggled:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Muted)
	default:
		return e.Kind.String()
	}
}

// Events buffers notifications raised while a tick is processed. They are
// delivered once every stage has run so that collaborators observe only
// completed state.
type Events struct {
	queue  []Event
	defers []func()
}

func newEvents() *Events {
	return &Events{}
}

// Push queues a notification.
func (e *Events) Push(ev Event) {
	e.queue = append(e.queue, ev)
}

// Defer queues a function to run after the notifications are delivered.
func (e *Events) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Pending returns the queued notifications without consuming them.
func (e *Events) Pending() []Event {
	return e.queue
}

// Flush delivers every queued notification to deliver, then runs deferred
// functions. Notifications pushed by a deferred function stay queued for
// the next flush.
func (e *Events) Flush(deliver func(Event)) {
	for _, ev := range e.queue {
		deliver(ev)
	}
	e.queue = e.queue[:0]

	defers := e.defers
	e.defers = nil
	for _, fn := range defers {
		fn()
	}
}

package input

// Kind tags the variant carried by an Event.
type Kind uint8

const (
	// EventQuit is a window-close or interrupt request.
	EventQuit Kind = iota + 1
	// EventKeyDown reports a key press.
	EventKeyDown
	// EventMouseDown reports a mouse button press at pixel coordinates.
	EventMouseDown
)

// Key names a keyboard key, lower-case ("r", "s", "escape", "space").
type Key string

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Event is a raw input event as delivered by a front end.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   int
}

// Quit builds a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown builds a key press event.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// MouseDown builds a mouse press event at pixel (x, y).
func MouseDown(b Button, x, y int) Event {
	return Event{Kind: EventMouseDown, Button: b, X: x, Y: y}
}

// Source yields pending events without blocking. ok is false once the queue
// is empty.
type Source interface {
	Poll() (ev Event, ok bool)
}

// Queue is a FIFO Source fed by callers.
type Queue struct {
	events []Event
}

// Push appends events to the queue.
func (q *Queue) Push(evs ...Event) { q.events = append(q.events, evs...) }

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Poll pops the oldest pending event.
func (q *Queue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev, true
}

package app

type EventType int

const (
	EventPointerMove EventType = iota
	EventPointerLeave
	EventPointerEnter
	EventResize
	EventKey
	EventButtonDown
	EventButtonUp
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a host input translated into viewport coordinates. X and Y carry
// the pointer position, or the new size for EventResize.
type Event struct {
	Type   EventType
	X, Y   float64
	Key    string // DOM-style key name for EventKey
	Button Button
}

type EventHandler func(Event)

// EventBus dispatches events synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

package game

type EventType int

const (
	EventStarted EventType = iota
	EventFruitEaten
	EventGameOver
)

type Event struct {
	Type  EventType
	X, Y  float32
	Len   int       // body length after the event
	Cause OverCause // set on EventGameOver
}

type EventHandler func(Event)

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

// Emit calls handlers synchronously, in subscription order.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

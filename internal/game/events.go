package game

type EventType int

const (
	EventAte EventType = iota
	EventGameOver
	EventWin
)

// Event carries the session snapshot at the moment of the occurrence, so
// subscribers (audio, run log) never reach back into the board.
type Event struct {
	Type   EventType
	Reason string // death reason, EventGameOver only
	Score  int
	Length int
	Speed  int
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

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches. Dispatch is
// synchronous: Emit returns after every handler has run.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	// Handlers that receive every event regardless of type
	wildcard []EventHandler
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for every event type
func (em *EventManager) SubscribeAll(handler EventHandler) {
	em.wildcard = append(em.wildcard, handler)
}

// Emit dispatches an event to all subscribed handlers, type-specific handlers first
func (em *EventManager) Emit(event Event) {
	if em == nil {
		return
	}
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
	for _, handler := range em.wildcard {
		handler(event)
	}
}

package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus is a synchronous event bus implementation
type EventBus struct {
	subscribers  map[string]Subscriber
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a new subscriber to the event bus
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[subscriber.ID()] = subscriber
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.subscribers, subscriberID)
	eb.logger.Debug().Str("subscriber_id", subscriberID).Msg("Subscriber removed from event bus")
}

// SubscribeFunc adds a function handler for a specific event type
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)
	eb.logger.Debug().Str("event_type", eventType).Msg("Function handler added to event bus")
}

// Publish sends an event to all interested subscribers synchronously. A
// panicking subscriber is isolated so it cannot break the others.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()

	for id, subscriber := range eb.subscribers {
		if !subscriber.InterestedIn(eventType) {
			continue
		}
		eb.dispatch(id, eventType, func() { subscriber.HandleEvent(event) })
	}

	for i, handler := range eb.funcHandlers[eventType] {
		handler := handler
		eb.dispatch(fmt.Sprintf("func_%d", i), eventType, func() { handler(event) })
	}
}

func (eb *EventBus) dispatch(id, eventType string, deliver func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("subscriber_id", id).
				Str("event_type", eventType).
				Interface("panic", r).
				Msg("Subscriber panicked while handling event")
		}
	}()
	deliver()
}

// SubscriberCount returns the number of subscribers for debugging
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// FuncHandlerCount returns the number of function handlers for a specific event type
func (eb *EventBus) FuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}

package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"shieldbot/models"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeModerationAction EventType = "moderation_action"
)

// ActionType identifies the kind of automatic moderation action taken.
type ActionType int

const (
	ActionBanOnJoin ActionType = iota
	ActionUnbanOnVerification
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// ModerationActionEvent is emitted whenever the workflow takes an automatic
// action that should be reported to the guild's report channel.
type ModerationActionEvent struct {
	Action     ActionType
	GuildID    string
	AccountID  string
	AccountTag string
	// Flags and Score are only populated for ban actions.
	Flags models.FlagSet
	Score int
}

func (e ModerationActionEvent) Type() EventType {
	return EventTypeModerationAction
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously; a panicking or failing handler never affects the
// operation that emitted the event.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

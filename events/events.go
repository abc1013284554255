package events

import (
	"context"
	"sync"

	"chancebot/domain/entities"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeLotteryDiscovered EventType = "lottery_discovered"
	EventTypeLeaderboardPosted EventType = "leaderboard_posted"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// LotteryDiscoveredEvent fires when the monitor sees a lottery for the
// first time. Economics is nil when the feed record lacked odds.
type LotteryDiscoveredEvent struct {
	Lottery   *entities.Lottery
	Economics *entities.EconomicsResult
}

func (e LotteryDiscoveredEvent) Type() EventType {
	return EventTypeLotteryDiscovered
}

// LeaderboardPostedEvent fires after a scheduled or forced leaderboard post.
type LeaderboardPostedEvent struct {
	Forced bool
}

func (e LeaderboardPostedEvent) Type() EventType {
	return EventTypeLeaderboardPosted
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

// Emit publishes an event to all registered handlers.
// Handlers run asynchronously so a slow Discord call never stalls the
// monitor's polling loop.
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

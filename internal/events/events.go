package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mfo-offers-api/internal/models"
)

// EventType represents the type of event.
type EventType string

const (
	// EventOfferCreated is emitted when a single offer is created
	EventOfferCreated EventType = "offer.created"
	// EventOffersSeeded is emitted when the seed endpoint inserts sample offers
	EventOffersSeeded EventType = "offers.seeded"
)

// Event represents an event in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Data      interface{}
}

// OfferCreatedData contains data for offer created events.
type OfferCreatedData struct {
	OfferID string
	Offer   models.Offer
}

// OffersSeededData contains data for seed events.
type OffersSeededData struct {
	Inserted int
}

// Handler is a function that handles events.
type Handler func(ctx context.Context, event Event) error

// Manager manages event handlers and event publishing.
type Manager struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	enabled  bool
}

// NewManager creates a new event manager.
func NewManager(enabled bool) *Manager {
	return &Manager{
		handlers: make(map[EventType][]Handler),
		enabled:  enabled,
	}
}

// Subscribe subscribes a handler to a specific event type.
func (m *Manager) Subscribe(eventType EventType, handler Handler) {
	if !m.enabled {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Publish publishes an event to all subscribed handlers. Handlers run
// asynchronously and must not block request handling.
func (m *Manager) Publish(ctx context.Context, eventType EventType, data interface{}) {
	if m == nil || !m.enabled {
		return
	}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}

	for _, handler := range handlers {
		go func(h Handler) {
			if err := h(ctx, event); err != nil {
				log.Warn().Err(err).Str("event", string(event.Type)).Msg("event handler failed")
			}
		}(handler)
	}
}

// PublishOfferCreated publishes an offer created event.
func (m *Manager) PublishOfferCreated(ctx context.Context, id string, offer models.Offer) {
	m.Publish(ctx, EventOfferCreated, OfferCreatedData{OfferID: id, Offer: offer})
}

// PublishOffersSeeded publishes a seed event.
func (m *Manager) PublishOffersSeeded(ctx context.Context, inserted int) {
	m.Publish(ctx, EventOffersSeeded, OffersSeededData{Inserted: inserted})
}

// Shutdown drops all handlers and disables further publishing.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
	m.handlers = make(map[EventType][]Handler)
}

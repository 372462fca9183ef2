package services

import (
	"encoding/json"
	"log"
	"time"
)

// Routing keys of catalog events.
const (
	EventBookCreated   = "book.created"
	EventBookUpdated   = "book.updated"
	EventBookDeleted   = "book.deleted"
	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"
)

// EventPublisher delivers catalog events to a broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CatalogEvent is the message body of every catalog event.
type CatalogEvent struct {
	Type       string    `json:"type"`
	EntityID   uint      `json:"entity_id"`
	UserID     uint      `json:"user_id"`
	BookID     uint      `json:"book_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent never fails the caller; a broken broker only costs the event.
func publishEvent(p EventPublisher, ev CatalogEvent) {
	if p == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", ev.Type, err)
		return
	}
	if err := p.Publish(ev.Type, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %d: %v", ev.Type, ev.EntityID, err)
	}
}

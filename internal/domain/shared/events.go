package shared

import "time"

// DomainEvent represents an event that has occurred in the domain
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventDispatcher dispatches domain events to handlers
type EventDispatcher interface {
	Dispatch(event DomainEvent) error
	Register(eventName string, handler EventHandler)
}

// EventHandler handles domain events
type EventHandler func(event DomainEvent) error

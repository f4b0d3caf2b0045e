// Package pubsub provides a generic publish/subscribe event system used to
// observe sheet state changes from the Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// RetargetedEvent fires when an animation target changes (open/close requested).
	RetargetedEvent EventType = "retargeted"
	// SettledEvent fires when an animation reaches its target.
	SettledEvent EventType = "settled"
	// DismissedEvent fires when the host collapses the sheet directly (gestures).
	DismissedEvent EventType = "dismissed"
	// WrittenEvent fires when the host writes a non-collapsed visibility directly.
	WrittenEvent EventType = "written"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

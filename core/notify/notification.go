package notify

import (
	"time"
)

// Notification is an immutable record describing one committed mutation.
// The Kind discriminates the payload type, and SequenceID is assigned by the
// Channel at dispatch time from a global monotonic counter.
type Notification struct {
	ID         string    `json:"id"`          // Unique identifier for the notification
	Kind       string    `json:"kind"`        // Mutation kind (e.g., "createList")
	Payload    any       `json:"payload"`     // Kind-specific mutation description
	SequenceID uint64    `json:"sequence_id"` // Global dispatch order, starts at 0
	CreatedAt  time.Time `json:"created_at"`  // When the notification was dispatched
}

// Listener receives notifications in dispatch order.
// Delivery is fire-and-forget: the channel does not inspect a return value.
type Listener interface {
	Notify(n Notification)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Notification)

// Notify calls f with the notification.
func (f ListenerFunc) Notify(n Notification) {
	f(n)
}

// On creates a Listener that invokes fn only for notifications whose payload
// is of type T. Notifications carrying other payload types are ignored.
//
// Example:
//
//	sub := channel.Subscribe(notify.On(func(n notify.Notification, p todo.ListCreated) {
//	    fmt.Printf("list %q created at seq %d\n", p.List.Name, n.SequenceID)
//	}))
func On[T any](fn func(Notification, T)) Listener {
	return ListenerFunc(func(n Notification) {
		if payload, ok := n.Payload.(T); ok {
			fn(n, payload)
		}
	})
}

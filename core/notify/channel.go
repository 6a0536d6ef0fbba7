package notify

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Channel fans committed mutations out to subscribed listeners with global,
// strictly increasing sequencing. Delivery is synchronous and in subscription
// order; there is no persistence or replay, so a listener only receives
// notifications dispatched while it is subscribed.
//
// Channel is safe for concurrent use. Dispatches are serialized so that every
// listener observes sequence numbers in strictly increasing, gap-free order
// from its subscription point onward.
type Channel struct {
	dispatchMu sync.Mutex // serializes stamp+deliver units
	mu         sync.Mutex // guards subscribers and the sequence counter
	subs       []*Subscription
	nextSeq    uint64
	logger     *slog.Logger
}

// Subscription is the handle returned by Subscribe, used to unsubscribe.
type Subscription struct {
	listener Listener
	channel  *Channel
}

// Unsubscribe removes the subscription from its channel.
// It is idempotent: unsubscribing twice is a no-op.
func (s *Subscription) Unsubscribe() {
	s.channel.Unsubscribe(s)
}

// ChannelOption configures a Channel.
type ChannelOption func(*Channel)

// WithLogger configures structured logging for the channel.
// By default listener failures are logged to a discard handler.
func WithLogger(logger *slog.Logger) ChannelOption {
	return func(c *Channel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChannel creates a new broadcast channel with no subscribers and the
// sequence counter at zero.
//
// Example:
//
//	channel := notify.NewChannel(notify.WithLogger(logger))
//	sub := channel.Subscribe(notify.ListenerFunc(func(n notify.Notification) {
//	    fmt.Println(n.Kind, n.SequenceID)
//	}))
//	defer sub.Unsubscribe()
func NewChannel(opts ...ChannelOption) *Channel {
	c := &Channel{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Subscribe adds a listener to the active set and returns its subscription
// handle. There is no replay of past notifications: the listener starts
// receiving from the next dispatched sequence number.
func (c *Channel) Subscribe(listener Listener) *Subscription {
	sub := &Subscription{listener: listener, channel: c}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, sub)

	return sub
}

// Unsubscribe removes a subscription from the active set.
// Unknown or already-removed subscriptions are ignored.
func (c *Channel) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// Dispatch stamps the payload with the next sequence number and delivers the
// resulting notification synchronously to every current listener, in the
// order they subscribed. The counter is incremented exactly once per dispatch
// regardless of listener count. A listener that panics is logged and skipped;
// it cannot block delivery to later listeners or affect the caller.
//
// The stamped notification is returned to the caller.
func (c *Channel) Dispatch(kind string, payload any) Notification {
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	c.mu.Lock()
	n := Notification{
		ID:         uuid.New().String(),
		Kind:       kind,
		Payload:    payload,
		SequenceID: c.nextSeq,
		CreatedAt:  time.Now(),
	}
	c.nextSeq++
	// Snapshot under the same lock as stamping so a listener subscribed
	// after this sequence number never sees it.
	targets := make([]*Subscription, len(c.subs))
	copy(targets, c.subs)
	c.mu.Unlock()

	for _, sub := range targets {
		c.deliver(sub.listener, n)
	}

	return n
}

// deliver invokes a single listener with panic recovery so one listener's
// failure cannot propagate to other listeners or the dispatching caller.
func (c *Channel) deliver(listener Listener, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("listener panicked",
				slog.String("notification_id", n.ID),
				slog.String("kind", n.Kind),
				slog.Uint64("sequence_id", n.SequenceID),
				slog.Any("panic", r))
		}
	}()
	listener.Notify(n)
}

// ChannelStats provides observability metrics for monitoring and debugging.
type ChannelStats struct {
	Dispatched  uint64 // notifications dispatched so far; also the next sequence number
	Subscribers int    // listeners currently subscribed
}

// Stats returns a snapshot of the channel's counters.
func (c *Channel) Stats() ChannelStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ChannelStats{
		Dispatched:  c.nextSeq,
		Subscribers: len(c.subs),
	}
}

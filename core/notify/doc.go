// Package notify implements an ordered, in-process broadcast channel.
//
// A Channel owns a global monotonic sequence counter and an ordered set of
// subscribed listeners. Every Dispatch stamps the payload with the next
// sequence number (starting at 0, incremented exactly once per dispatch) and
// delivers the resulting Notification synchronously to every current
// listener, in the order they subscribed.
//
// # Delivery Guarantees
//
//   - Sequence numbers delivered to any single listener are strictly
//     increasing and gap-free from its subscription point onward.
//   - A listener subscribed after K dispatches only receives notifications
//     with SequenceID >= K; there is no replay of history.
//   - A panicking listener is logged and skipped; it never blocks delivery to
//     later listeners and never surfaces to the dispatching caller.
//
// # Usage
//
//	channel := notify.NewChannel(notify.WithLogger(logger))
//
//	sub := channel.Subscribe(notify.ListenerFunc(func(n notify.Notification) {
//	    fmt.Printf("seq=%d kind=%s\n", n.SequenceID, n.Kind)
//	}))
//	defer sub.Unsubscribe()
//
//	channel.Dispatch("createList", payload)
//
// Typed listeners can filter on the payload type:
//
//	channel.Subscribe(notify.On(func(n notify.Notification, p todo.ItemAdded) {
//	    fmt.Printf("item added to list %d\n", p.ListIndex)
//	}))
package notify

// Package todosim is an in-memory simulation of a remote to-do-list backend.
//
// It models a store of named lists of items, exposes CRUD-style operations
// through an asynchronous request/response contract with injected network
// latency and randomized failure, and broadcasts every successful mutation to
// subscribers through an ordered notification channel. It exists so that a
// client application can be developed and tested against realistic
// asynchronous, fallible, eventually-observed backend behavior without a real
// network or server.
//
// # Package Organization
//
// Core simulation components:
//
//	github.com/dmitrymomot/todosim/core/todo    - store, request service, latency/failure policy
//	github.com/dmitrymomot/todosim/core/notify  - ordered broadcast channel with sequence stamping
//	github.com/dmitrymomot/todosim/core/config  - type-safe environment variable loading
//
// Standalone utilities:
//
//	github.com/dmitrymomot/todosim/pkg/async    - Future pattern for asynchronous results
//	github.com/dmitrymomot/todosim/pkg/logger   - nil-safe slog attribute helpers
//	github.com/dmitrymomot/todosim/pkg/workload - random traffic generator driving the service
//
// # Getting Started
//
// Wire a channel, a service, and a listener:
//
//	channel := notify.NewChannel()
//	service := todo.New(channel)
//
//	sub := channel.Subscribe(notify.ListenerFunc(func(n notify.Notification) {
//	    fmt.Printf("seq=%d kind=%s\n", n.SequenceID, n.Kind)
//	}))
//	defer sub.Unsubscribe()
//
//	index, err := service.CreateList("groceries").Await()
//
// The cmd/todosim binary runs the whole simulation under random workload;
// see that package for an end-to-end example.
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/todosim/core/todo
//	go doc -all github.com/dmitrymomot/todosim/core/notify
package todosim

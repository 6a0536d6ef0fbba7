// Package todo simulates a remote to-do-list backend entirely in memory.
//
// A Service owns an ordered collection of named lists of items and exposes
// CRUD-style operations through an asynchronous request/response contract:
// every call returns an async.Future that resolves after a simulated network
// delay, either with the declared result or with a failure envelope. Latency
// and randomized failure are drawn from a pluggable OutcomePolicy.
//
// # Request Lifecycle
//
// Invoking an operation arms the request: the outcome (delay plus success
// coin) is drawn immediately, and the visible effect is decided only after
// the delay elapses. On the failure path nothing is mutated. On the success
// path the operation validates its index arguments, applies the mutation,
// and dispatches exactly one notification to the broadcast channel, all as
// one uninterrupted unit under the store lock. An out-of-range index rejects
// the request with a 400 envelope before anything is touched.
//
// Requests resolve in latency order, not call order. There is no
// cancellation: an armed request always resolves to its caller.
//
// # Error Taxonomy
//
// Two codes cover every failure:
//
//   - 500 "internal error": the injected random failure, or any unexpected
//     fault on an otherwise valid request (todo.ErrInternal)
//   - 400 "index out of bound": a precondition violation; retry only after
//     correcting the arguments (todo.ErrIndexOutOfBound)
//
// Both are todo.Error values and match with errors.Is.
//
// # Usage
//
//	channel := notify.NewChannel()
//	service := todo.New(channel)
//
//	index, err := service.CreateList("groceries").Await()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := service.AddItem(index, todo.Item{Description: "buy milk"}).Await()
//
// Deterministic behavior for tests:
//
//	instant := todo.PolicyFunc(func(todo.Op) todo.Outcome {
//	    return todo.Outcome{Succeed: true}
//	})
//	service := todo.New(channel, todo.WithPolicy(instant))
//
// # Positional Identity
//
// Lists and items are addressed by index, and an index's meaning changes
// when a preceding entry is removed. Since completion order follows drawn
// latencies, two in-flight requests against the same index may land on
// different entries. The stable IDs on List and Item exist so that consumers
// can correlate entries across such reshuffles; the operation contract
// itself stays index-based.
package todo

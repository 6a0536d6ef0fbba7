// Package workload implements a random traffic generator for the simulated
// to-do backend.
//
// The generator is a pure driver: it only calls the caller-facing operation
// contract (the API interface) and has no access to the store or broadcast
// channel internals. Once started it repeatedly waits a uniformly random
// duration within the configured inter-action period range and invokes one
// randomly chosen operation with randomized arguments. It is the one
// component that is allowed to silently discard failures, since its job is
// to probe the API without caring about outcomes.
//
// # Usage
//
//	var cfg workload.Config
//	config.MustLoad(&cfg)
//
//	gen, err := workload.New(service, cfg, workload.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until the context is cancelled.
//	if err := gen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//	    log.Fatal(err)
//	}
package workload

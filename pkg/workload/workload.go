package workload

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/todosim/core/todo"
	"github.com/dmitrymomot/todosim/pkg/async"
	"github.com/dmitrymomot/todosim/pkg/logger"
)

// API is the caller-facing operation contract the generator drives.
// It is the only surface the generator touches: no access to the store or
// the broadcast channel internals.
type API interface {
	ListLists() *async.Future[[]todo.List]
	CreateList(name string) *async.Future[int]
	DeleteList(listIndex int) *async.Future[bool]
	AddItem(listIndex int, item todo.Item) *async.Future[bool]
	RemoveItem(listIndex, itemIndex int) *async.Future[bool]
	MoveItem(listIndex, sourceIndex, destIndex int) *async.Future[bool]
	EditItem(listIndex, itemIndex int, item todo.Item) *async.Future[bool]
}

// Config holds the generator's inter-action period range.
// Both bounds must be non-negative and MinPeriod strictly less than MaxPeriod.
type Config struct {
	MinPeriod time.Duration `env:"WORKLOAD_MIN_PERIOD" envDefault:"100ms"`
	MaxPeriod time.Duration `env:"WORKLOAD_MAX_PERIOD" envDefault:"1s"`
}

// indexRange bounds the random indices the generator probes with. Indices
// past the current store size simply come back as 400 rejections, which the
// generator ignores like every other failure.
const indexRange = 5

// Generator randomly exercises the API on a timer. Once started it repeatedly
// waits a uniformly random duration in [MinPeriod, MaxPeriod) and invokes one
// randomly chosen operation with randomized arguments, discarding whatever
// outcome the request resolves to.
type Generator struct {
	api    API
	min    time.Duration
	max    time.Duration
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger enables structured debug logging of every probe.
// By default the generator is silent.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.logger = log
		}
	}
}

// New creates a generator driving the given API.
//
// Example:
//
//	gen, err := workload.New(service, workload.Config{
//	    MinPeriod: 100 * time.Millisecond,
//	    MaxPeriod: time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go gen.Run(ctx)
func New(api API, cfg Config, opts ...Option) (*Generator, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	if cfg.MinPeriod < 0 || cfg.MaxPeriod < 0 || cfg.MinPeriod >= cfg.MaxPeriod {
		return nil, ErrInvalidPeriodRange
	}

	g := &Generator{
		api:    api,
		min:    cfg.MinPeriod,
		max:    cfg.MaxPeriod,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Run drives the API until the context is cancelled. This is a blocking
// operation; call it in a goroutine or from an errgroup. It returns the
// context's error on shutdown.
func (g *Generator) Run(ctx context.Context) error {
	for {
		wait := g.min + rand.N(g.max-g.min)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		g.probe()
	}
}

// probe fires one random operation and logs its eventual outcome at debug
// level. Failures are expected and deliberately discarded: the generator's
// job is to produce traffic, not to react to it.
func (g *Generator) probe() {
	op := ops[rand.IntN(len(ops))]
	op(g)
}

var ops = []func(*Generator){
	func(g *Generator) {
		g.report(todo.OpListLists, asUnit(g.api.ListLists()))
	},
	func(g *Generator) {
		g.report(todo.OpCreateList, asUnit(g.api.CreateList(randomName())))
	},
	func(g *Generator) {
		g.report(todo.OpDeleteList, asUnit(g.api.DeleteList(randomIndex())))
	},
	func(g *Generator) {
		g.report(todo.OpAddItem, asUnit(g.api.AddItem(randomIndex(), randomItem())))
	},
	func(g *Generator) {
		g.report(todo.OpRemoveItem, asUnit(g.api.RemoveItem(randomIndex(), randomIndex())))
	},
	func(g *Generator) {
		g.report(todo.OpMoveItem, asUnit(g.api.MoveItem(randomIndex(), randomIndex(), randomIndex())))
	},
	func(g *Generator) {
		g.report(todo.OpEditItem, asUnit(g.api.EditItem(randomIndex(), randomIndex(), randomItem())))
	},
}

// asUnit erases a future's result type so outcomes of different operations
// can be awaited uniformly.
func asUnit[U any](f *async.Future[U]) *async.Future[struct{}] {
	return async.Async(context.Background(), f, func(_ context.Context, f *async.Future[U]) (struct{}, error) {
		_, err := f.Await()
		return struct{}{}, err
	})
}

// report awaits the probe in the background and debug-logs how it went.
func (g *Generator) report(op todo.Op, f *async.Future[struct{}]) {
	go func() {
		start := time.Now()
		if _, err := f.Await(); err != nil {
			g.logger.Debug("probe failed",
				logger.Operation(string(op)),
				logger.Elapsed(start),
				logger.Error(err))
			return
		}
		g.logger.Debug("probe succeeded",
			logger.Operation(string(op)),
			logger.Elapsed(start))
	}()
}

func randomIndex() int {
	return rand.IntN(indexRange)
}

func randomItem() todo.Item {
	return todo.Item{
		Description: randomName(),
		Done:        rand.IntN(2) == 0,
	}
}

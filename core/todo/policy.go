package todo

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Op identifies one of the service operations for outcome drawing.
type Op string

const (
	OpListLists  Op = "listLists"
	OpCreateList Op = "createList"
	OpDeleteList Op = "deleteList"
	OpAddItem    Op = "addItem"
	OpRemoveItem Op = "removeItem"
	OpMoveItem   Op = "moveItem"
	OpEditItem   Op = "editItem"
)

// Outcome is one drawn simulated round-trip: how long the request takes to
// resolve and whether it succeeds. Success here only means the request
// survives the injected failure coin; index preconditions are checked later,
// at commit time.
type Outcome struct {
	Delay   time.Duration
	Succeed bool
}

// OutcomePolicy decides the simulated outcome for each operation.
// Tests substitute deterministic policies (zero delay, forced success or
// failure) without touching the store logic.
type OutcomePolicy interface {
	Draw(op Op) Outcome
}

// PolicyFunc adapts a plain function to the OutcomePolicy interface.
type PolicyFunc func(Op) Outcome

// Draw calls f with the operation.
func (f PolicyFunc) Draw(op Op) Outcome {
	return f(op)
}

// Default latency range for RandomPolicy: a uniform draw from
// {0, 100ms, 200ms, ..., 1s}.
const (
	DefaultLatencyStep = 100 * time.Millisecond
	DefaultMaxLatency  = time.Second
)

// RandomPolicy draws delays uniformly at random in fixed increments and an
// independent success coin flip with a configurable probability.
// The zero-option policy always succeeds.
type RandomPolicy struct {
	successRate float64
	step        time.Duration
	maxDelay    time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// PolicyOption configures a RandomPolicy.
type PolicyOption func(*RandomPolicy)

// WithSuccessRate sets the probability in [0, 1] that a drawn outcome
// succeeds. Values outside the range are clamped. Default is 1.0.
func WithSuccessRate(rate float64) PolicyOption {
	return func(p *RandomPolicy) {
		p.successRate = min(max(rate, 0), 1)
	}
}

// WithLatencyRange sets the latency increment and upper bound.
// Drawn delays are multiples of step in [0, maxDelay]. A non-positive step
// disables latency entirely.
func WithLatencyRange(step, maxDelay time.Duration) PolicyOption {
	return func(p *RandomPolicy) {
		p.step = step
		p.maxDelay = maxDelay
	}
}

// WithSeed makes the policy deterministic, which is useful for reproducing
// a simulation run.
func WithSeed(seed uint64) PolicyOption {
	return func(p *RandomPolicy) {
		p.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewRandomPolicy creates a policy with the default always-succeed coin and
// the default 0..1s latency range in 100ms steps.
//
// Example:
//
//	policy := todo.NewRandomPolicy(
//	    todo.WithSuccessRate(0.9),
//	    todo.WithLatencyRange(50*time.Millisecond, 500*time.Millisecond),
//	)
func NewRandomPolicy(opts ...PolicyOption) *RandomPolicy {
	p := &RandomPolicy{
		successRate: 1.0,
		step:        DefaultLatencyStep,
		maxDelay:    DefaultMaxLatency,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Draw implements the OutcomePolicy interface. The delay and the success
// coin are independent draws; the operation kind does not influence either.
func (p *RandomPolicy) Draw(Op) Outcome {
	return Outcome{
		Delay:   p.delay(),
		Succeed: p.float64() < p.successRate,
	}
}

func (p *RandomPolicy) delay() time.Duration {
	if p.step <= 0 || p.maxDelay < p.step {
		return 0
	}
	steps := int(p.maxDelay/p.step) + 1
	return p.step * time.Duration(p.intN(steps))
}

func (p *RandomPolicy) float64() float64 {
	if p.rng == nil {
		return rand.Float64()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64()
}

func (p *RandomPolicy) intN(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

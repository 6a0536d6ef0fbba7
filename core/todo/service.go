package todo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/todosim/core/notify"
	"github.com/dmitrymomot/todosim/pkg/async"
)

// Service owns the authoritative in-memory store of lists and simulates an
// unreliable, latent remote backend in front of it. Every operation draws a
// latency and a success coin from the configured policy when it is invoked,
// resolves only after the latency elapses, and never supports cancellation:
// an armed request always resolves to its caller.
//
// On success a mutating operation commits its effect and dispatches exactly
// one notification to the broadcast channel, inside the same critical
// section. On any failure (injected or precondition) nothing is mutated and
// nothing is dispatched.
//
// Requests in flight resolve in latency order, not call order: a later call
// with a shorter drawn delay commits first. Callers must not assume request
// order implies completion order.
type Service struct {
	mu      sync.Mutex
	lists   []List
	policy  OutcomePolicy
	channel *notify.Channel
}

// Option configures a Service.
type Option func(*Service)

// WithPolicy replaces the outcome policy. Tests use this to inject
// deterministic outcomes.
func WithPolicy(policy OutcomePolicy) Option {
	return func(s *Service) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// New creates a service with an empty store. By default outcomes are drawn
// from NewRandomPolicy(), which always succeeds with realistic latencies.
//
// Example:
//
//	channel := notify.NewChannel()
//	service := todo.New(channel, todo.WithPolicy(policy))
//
//	future := service.CreateList("groceries")
//	index, err := future.Await()
func New(channel *notify.Channel, opts ...Option) *Service {
	s := &Service{
		policy:  NewRandomPolicy(),
		channel: channel,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Config holds the simulation tuning knobs, loadable via core/config.
type Config struct {
	SuccessRate float64       `env:"TODOSIM_SUCCESS_RATE" envDefault:"1.0"`
	LatencyStep time.Duration `env:"TODOSIM_LATENCY_STEP" envDefault:"100ms"`
	MaxLatency  time.Duration `env:"TODOSIM_MAX_LATENCY" envDefault:"1s"`
}

// NewFromConfig creates a service whose random policy is built from cfg.
// Later options may still override the policy.
func NewFromConfig(channel *notify.Channel, cfg Config, opts ...Option) *Service {
	policy := NewRandomPolicy(
		WithSuccessRate(cfg.SuccessRate),
		WithLatencyRange(cfg.LatencyStep, cfg.MaxLatency),
	)
	return New(channel, append([]Option{WithPolicy(policy)}, opts...)...)
}

// ListLists returns a deep copy of every list in the store.
// Mutating the returned slice or its items never affects the store.
func (s *Service) ListLists() *async.Future[[]List] {
	return perform(s, OpListLists, func() ([]List, error) {
		lists := make([]List, len(s.lists))
		for i, list := range s.lists {
			lists[i] = list.clone()
		}
		return lists, nil
	})
}

// CreateList appends a new empty list with the given name and returns its
// index in the store.
func (s *Service) CreateList(name string) *async.Future[int] {
	return perform(s, OpCreateList, func() (int, error) {
		list := List{ID: uuid.New(), Name: name, Items: []Item{}}
		s.lists = append(s.lists, list)
		s.channel.Dispatch(KindCreateList, ListCreated{List: list.clone()})
		return len(s.lists) - 1, nil
	})
}

// DeleteList removes the list at listIndex. Indices of all later lists shift
// down by one.
func (s *Service) DeleteList(listIndex int) *async.Future[bool] {
	return perform(s, OpDeleteList, func() (bool, error) {
		if listIndex < 0 || listIndex >= len(s.lists) {
			return false, ErrIndexOutOfBound
		}
		s.lists = append(s.lists[:listIndex], s.lists[listIndex+1:]...)
		s.channel.Dispatch(KindDeleteList, ListDeleted{ListIndex: listIndex})
		return true, nil
	})
}

// AddItem appends a copy of item to the list at listIndex. The stored copy is
// assigned a fresh ID; any ID on the argument is ignored.
func (s *Service) AddItem(listIndex int, item Item) *async.Future[bool] {
	return perform(s, OpAddItem, func() (bool, error) {
		if listIndex < 0 || listIndex >= len(s.lists) {
			return false, ErrIndexOutOfBound
		}
		item.ID = uuid.New()
		s.lists[listIndex].Items = append(s.lists[listIndex].Items, item)
		s.channel.Dispatch(KindAddItem, ItemAdded{ListIndex: listIndex, Item: item})
		return true, nil
	})
}

// RemoveItem removes the item at itemIndex from the list at listIndex.
func (s *Service) RemoveItem(listIndex, itemIndex int) *async.Future[bool] {
	return perform(s, OpRemoveItem, func() (bool, error) {
		if listIndex < 0 || listIndex >= len(s.lists) {
			return false, ErrIndexOutOfBound
		}
		items := s.lists[listIndex].Items
		if itemIndex < 0 || itemIndex >= len(items) {
			return false, ErrIndexOutOfBound
		}
		s.lists[listIndex].Items = append(items[:itemIndex], items[itemIndex+1:]...)
		s.channel.Dispatch(KindRemoveItem, ItemRemoved{ListIndex: listIndex, ItemIndex: itemIndex})
		return true, nil
	})
}

// MoveItem removes the item at sourceIndex and re-inserts it at destIndex.
// Both indices address the list as it is before the move. When destIndex is
// greater than sourceIndex the removal shifts all later positions down by
// one, so the effective insertion index is destIndex-1; otherwise destIndex
// is used unchanged.
func (s *Service) MoveItem(listIndex, sourceIndex, destIndex int) *async.Future[bool] {
	return perform(s, OpMoveItem, func() (bool, error) {
		if listIndex < 0 || listIndex >= len(s.lists) {
			return false, ErrIndexOutOfBound
		}
		items := s.lists[listIndex].Items
		if sourceIndex < 0 || sourceIndex >= len(items) {
			return false, ErrIndexOutOfBound
		}
		if destIndex < 0 || destIndex >= len(items) {
			return false, ErrIndexOutOfBound
		}

		effective := destIndex
		if destIndex > sourceIndex {
			effective = destIndex - 1
		}

		item := items[sourceIndex]
		items = append(items[:sourceIndex], items[sourceIndex+1:]...)
		items = append(items[:effective], append([]Item{item}, items[effective:]...)...)
		s.lists[listIndex].Items = items

		s.channel.Dispatch(KindMoveItem, ItemMoved{
			ListIndex:   listIndex,
			SourceIndex: sourceIndex,
			DestIndex:   destIndex,
		})
		return true, nil
	})
}

// EditItem replaces the item at itemIndex with a copy of item. The slot keeps
// its existing stable ID; only description and done state change.
func (s *Service) EditItem(listIndex, itemIndex int, item Item) *async.Future[bool] {
	return perform(s, OpEditItem, func() (bool, error) {
		if listIndex < 0 || listIndex >= len(s.lists) {
			return false, ErrIndexOutOfBound
		}
		items := s.lists[listIndex].Items
		if itemIndex < 0 || itemIndex >= len(items) {
			return false, ErrIndexOutOfBound
		}
		item.ID = items[itemIndex].ID
		items[itemIndex] = item
		s.channel.Dispatch(KindEditItem, ItemEdited{ListIndex: listIndex, ItemIndex: itemIndex, Item: item})
		return true, nil
	})
}

// perform runs one simulated request. The outcome is drawn synchronously
// when the request is armed; the commit step runs only after the drawn delay
// elapses, as one uninterrupted unit under the store lock. The request always
// resolves, there is no cancellation and no timeout distinct from the latency
// itself.
func perform[U any](s *Service, op Op, commit func() (U, error)) *async.Future[U] {
	outcome := s.policy.Draw(op)
	return async.Async(context.Background(), outcome, func(_ context.Context, out Outcome) (U, error) {
		if out.Delay > 0 {
			time.Sleep(out.Delay)
		}
		if !out.Succeed {
			var zero U
			return zero, ErrInternal
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		return safeCommit(commit)
	})
}

// safeCommit surfaces a panicking commit step as an internal error envelope.
// Every operation validates all indices before its first mutation, so a
// recovered panic never leaves partial state behind.
func safeCommit[U any](commit func() (U, error)) (value U, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero U
			value, err = zero, ErrInternal
		}
	}()
	return commit()
}

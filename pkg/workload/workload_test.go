package workload_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todosim/core/notify"
	"github.com/dmitrymomot/todosim/core/todo"
	"github.com/dmitrymomot/todosim/pkg/async"
	"github.com/dmitrymomot/todosim/pkg/workload"
)

// countingChannel pairs a broadcast channel with a listener counting every
// delivered notification.
type countingChannel struct {
	channel *notify.Channel
	count   atomic.Uint64
}

func notifyChannel() *countingChannel {
	c := &countingChannel{channel: notify.NewChannel()}
	c.channel.Subscribe(notify.ListenerFunc(func(notify.Notification) {
		c.count.Add(1)
	}))
	return c
}

// stubAPI counts invocations and resolves every request immediately with err.
type stubAPI struct {
	calls atomic.Int64
	err   error
}

func resolve[U any](s *stubAPI, value U) *async.Future[U] {
	s.calls.Add(1)
	err := s.err
	return async.Async(context.Background(), value, func(_ context.Context, v U) (U, error) {
		return v, err
	})
}

func (s *stubAPI) ListLists() *async.Future[[]todo.List] { return resolve(s, []todo.List{}) }
func (s *stubAPI) CreateList(string) *async.Future[int]  { return resolve(s, 0) }
func (s *stubAPI) DeleteList(int) *async.Future[bool]    { return resolve(s, true) }
func (s *stubAPI) AddItem(int, todo.Item) *async.Future[bool] {
	return resolve(s, true)
}
func (s *stubAPI) RemoveItem(int, int) *async.Future[bool] { return resolve(s, true) }
func (s *stubAPI) MoveItem(int, int, int) *async.Future[bool] {
	return resolve(s, true)
}
func (s *stubAPI) EditItem(int, int, todo.Item) *async.Future[bool] {
	return resolve(s, true)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	valid := workload.Config{MinPeriod: time.Millisecond, MaxPeriod: 2 * time.Millisecond}

	_, err := workload.New(nil, valid)
	require.ErrorIs(t, err, workload.ErrNilAPI)

	tests := []struct {
		name string
		cfg  workload.Config
	}{
		{"negative min", workload.Config{MinPeriod: -time.Millisecond, MaxPeriod: time.Millisecond}},
		{"negative max", workload.Config{MinPeriod: 0, MaxPeriod: -time.Second}},
		{"min equals max", workload.Config{MinPeriod: time.Millisecond, MaxPeriod: time.Millisecond}},
		{"min above max", workload.Config{MinPeriod: time.Second, MaxPeriod: time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := workload.New(&stubAPI{}, tt.cfg)
			assert.ErrorIs(t, err, workload.ErrInvalidPeriodRange)
		})
	}

	gen, err := workload.New(&stubAPI{}, valid)
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestRunProbesUntilCancelled(t *testing.T) {
	t.Parallel()

	api := &stubAPI{}
	gen, err := workload.New(api, workload.Config{
		MinPeriod: time.Millisecond,
		MaxPeriod: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = gen.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, api.calls.Load(), int64(0))
}

func TestRunIgnoresFailures(t *testing.T) {
	t.Parallel()

	// Every probe fails; the generator keeps going regardless.
	api := &stubAPI{err: todo.ErrInternal}
	gen, err := workload.New(api, workload.Config{
		MinPeriod: time.Millisecond,
		MaxPeriod: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = gen.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, api.calls.Load(), int64(5))
}

func TestRunAgainstService(t *testing.T) {
	t.Parallel()

	// End to end against the real service with instant outcomes: the
	// generator only ever touches the operation contract, and every
	// mutation it lands produces exactly one notification.
	channel := notifyChannel()
	service := todo.New(channel.channel, todo.WithPolicy(todo.PolicyFunc(func(todo.Op) todo.Outcome {
		return todo.Outcome{Succeed: true}
	})))

	gen, err := workload.New(service, workload.Config{
		MinPeriod: time.Millisecond,
		MaxPeriod: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = gen.Run(ctx)

	// Give in-flight probes a moment to resolve.
	time.Sleep(20 * time.Millisecond)

	stats := channel.channel.Stats()
	assert.Equal(t, stats.Dispatched, channel.count.Load())
}

package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/foodhabits/foodhabits-go/internal/errs"
)

// failingOp records abandonment the way a two-phase create job does.
type failingOp struct {
	syncOp
	onFail func(error)
}

func (o failingOp) OnFail(err error) { o.onFail(err) }

// An irrecoverable error abandons the job on the first run; no retries.
func TestIrrecoverableErrorFailsFast(t *testing.T) {
	t.Parallel()
	var handlerCalls int32
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 8, BaseBackoff: time.Millisecond}
	cfg.ErrorHandler = func(error) { atomic.AddInt32(&handlerCalls, 1) }
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var runs int32
	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errs.NewHTTPError(404, "habit not found", "update habit")
	}})

	done := make(chan struct{})
	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		close(done)
		return nil
	}})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shard stuck after irrecoverable error")
	}

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("runs = %d, want 1 (no retries on 4xx)", got)
	}
	if got := atomic.LoadInt32(&handlerCalls); got != 1 {
		t.Fatalf("error handler calls = %d, want 1", got)
	}
}

// Abandonment runs the configured ErrorHandler first, then the job's own
// OnFail hook, and passes both the same error.
func TestAbandonRunsHandlerThenOnFail(t *testing.T) {
	t.Parallel()
	boom := errors.New("rejected")
	var order []string
	var hookErr error
	seq := make(chan struct{})

	cfg := Config{Shards: 1, QueueSize: 4, MaxAttempts: 1}
	cfg.ErrorHandler = func(error) { order = append(order, "handler") }
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	op := failingOp{
		syncOp: syncOp{run: func(context.Context) error { return boom }},
		onFail: func(err error) {
			order = append(order, "onfail")
			hookErr = err
			close(seq)
		},
	}
	_ = ex.Submit(context.Background(), "goals/u1", op)

	select {
	case <-seq:
	case <-time.After(time.Second):
		t.Fatal("OnFail never ran")
	}
	if len(order) != 2 || order[0] != "handler" || order[1] != "onfail" {
		t.Fatalf("invocation order = %v, want [handler onfail]", order)
	}
	if !errors.Is(hookErr, boom) {
		t.Fatalf("OnFail error = %v, want %v", hookErr, boom)
	}
}

// A panicking ErrorHandler or OnFail hook must not take the worker down.
func TestAbandonHookPanicsAreContained(t *testing.T) {
	t.Parallel()
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 1}
	cfg.ErrorHandler = func(error) { panic("handler panic") }
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	op := failingOp{
		syncOp: syncOp{run: func(context.Context) error { return errors.New("boom") }},
		onFail: func(error) { panic("hook panic") },
	}
	_ = ex.Submit(context.Background(), "habits/u1", op)

	ran := make(chan struct{})
	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		close(ran)
		return nil
	}})
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("worker died after hook panic")
	}
}

// With no ErrorHandler configured, abandoned errors are dropped silently.
func TestNilErrorHandler(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 4, MaxAttempts: 1})
	defer ex.Stop()

	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		return errors.New("ignored")
	}})

	done := make(chan struct{})
	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		close(done)
		return nil
	}})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker stalled on unhandled error")
	}
}

package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetriesUntilSuccess(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 8, MaxAttempts: 4, BaseBackoff: 5 * time.Millisecond})
	defer ex.Stop()

	var runs int32
	done := make(chan struct{})
	if err := ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		if atomic.AddInt32(&runs, 1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never succeeded")
	}
	if got := atomic.LoadInt32(&runs); got != 3 {
		t.Fatalf("runs = %d, want 3", got)
	}
}

// A job that keeps failing is abandoned after MaxAttempts runs, with the
// error handler invoked exactly once.
func TestGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()
	var handlerCalls int32
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 3, BaseBackoff: 2 * time.Millisecond}
	cfg.ErrorHandler = func(error) { atomic.AddInt32(&handlerCalls, 1) }
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var runs int32
	_ = ex.Submit(context.Background(), "goals/u1", syncOp{run: func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errors.New("still failing")
	}})

	// A follow-up on the same stream proves the failing job was released.
	done := make(chan struct{})
	_ = ex.Submit(context.Background(), "goals/u1", syncOp{run: func(context.Context) error {
		close(done)
		return nil
	}})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shard stuck on abandoned job")
	}

	if got := atomic.LoadInt32(&runs); got != 3 {
		t.Fatalf("runs = %d, want 3", got)
	}
	if got := atomic.LoadInt32(&handlerCalls); got != 1 {
		t.Fatalf("error handler calls = %d, want 1", got)
	}
}

// Cancelling the submit context while a retry backoff is pending abandons
// the job once and must not run it again afterwards.
func TestCancelDuringBackoffAbandonsOnce(t *testing.T) {
	t.Parallel()
	var handlerCalls int32
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 5, BaseBackoff: 300 * time.Millisecond}
	cfg.ErrorHandler = func(error) { atomic.AddInt32(&handlerCalls, 1) }
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var runs int32
	firstRun := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = ex.Submit(ctx, "habits/u1", syncOp{run: func(context.Context) error {
		if atomic.AddInt32(&runs, 1) == 1 {
			close(firstRun)
		}
		return errors.New("backend unavailable")
	}})

	<-firstRun
	cancel() // worker is waiting out the first backoff

	// Leave enough time for an erroneous re-run to show up.
	time.Sleep(600 * time.Millisecond)

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("job ran %d times after cancellation, want 1", got)
	}
	if got := atomic.LoadInt32(&handlerCalls); got != 1 {
		t.Fatalf("error handler calls = %d, want 1", got)
	}
}

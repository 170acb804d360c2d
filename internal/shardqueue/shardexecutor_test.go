package shardqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// syncOp is the test stand-in for a queued sync job.
type syncOp struct{ run func(context.Context) error }

func (o syncOp) Run(ctx context.Context) error {
	if o.run == nil {
		return nil
	}
	return o.run(ctx)
}

// blockWorker submits a job on key that parks the shard worker until the
// returned release func is called. It waits for the worker to pick it up.
func blockWorker(t *testing.T, ex *ShardExecutor, key string) (release func()) {
	t.Helper()
	gate := make(chan struct{})
	started := make(chan struct{})
	if err := ex.Submit(context.Background(), key, syncOp{run: func(context.Context) error {
		close(started)
		<-gate
		return nil
	}}); err != nil {
		t.Fatalf("submit blocking job: %v", err)
	}
	<-started
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func TestSubmitAndStop(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{})
	defer ex.Stop()

	if err := ex.Submit(context.Background(), "habits/u1", syncOp{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

// Jobs on one stream key must reach the worker in submission order.
func TestStreamFIFO(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 16})
	defer ex.Stop()

	const n = 8
	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		seq := i
		if err := ex.Submit(context.Background(), "goals/u1", syncOp{run: func(context.Context) error {
			mu.Lock()
			got = append(got, seq)
			mu.Unlock()
			wg.Done()
			return nil
		}}); err != nil {
			t.Fatalf("submit %d: %v", seq, err)
		}
	}

	waitOrFatal(t, &wg, time.Second, "jobs did not drain")

	mu.Lock()
	defer mu.Unlock()
	for i, v := range got {
		if i != v {
			t.Fatalf("out of order: %v", got)
		}
	}
}

// Different streams must not block each other: each of the two jobs below
// completes only if the other runs concurrently.
func TestStreamsRunInParallel(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 8})
	defer ex.Stop()

	aReady := make(chan struct{})
	bDone := make(chan struct{})

	_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
		<-aReady
		close(bDone)
		return nil
	}})
	_ = ex.Submit(context.Background(), "foodlog/u1", syncOp{run: func(context.Context) error {
		close(aReady)
		<-bDone
		return nil
	}})

	select {
	case <-bDone:
	case <-time.After(time.Second):
		t.Fatal("streams blocked each other")
	}
}

// At most one job for a given stream key may be in flight at a time.
func TestSameStreamNeverOverlaps(t *testing.T) {
	t.Parallel()
	const n = 200
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: n})
	defer ex.Stop()

	var (
		inFlight int32
		overlaps int32
		wg       sync.WaitGroup
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		_ = ex.Submit(context.Background(), "mealplan/u1", syncOp{run: func(context.Context) error {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			time.Sleep(100 * time.Microsecond)
			atomic.AddInt32(&inFlight, -1)
			wg.Done()
			return nil
		}})
	}

	waitOrFatal(t, &wg, 3*time.Second, "jobs did not drain")

	if n := atomic.LoadInt32(&overlaps); n != 0 {
		t.Fatalf("observed %d overlapping executions on one stream", n)
	}
}

// A full shard surfaces ErrQueueFull once EnqueueTimeout elapses.
func TestSubmitQueueFull(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond})
	defer ex.Stop()

	release := blockWorker(t, ex, "habits/u1")
	defer release()

	// One job fits in the buffer; the next must time out.
	_ = ex.Submit(context.Background(), "habits/u1", syncOp{})
	err := ex.Submit(context.Background(), "habits/u1", syncOp{})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
	var qf *QueueFullError
	if !errors.As(err, &qf) {
		t.Fatalf("err %T does not expose QueueFullError", err)
	}
	if qf.Capacity != 1 {
		t.Fatalf("reported capacity = %d, want 1", qf.Capacity)
	}
}

// Barrier returns only after every job submitted before it on the same
// stream has run.
func TestBarrierWaitsForStream(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 2, QueueSize: 16})
	defer ex.Stop()

	var ran int32
	for i := 0; i < 5; i++ {
		_ = ex.Submit(context.Background(), "foodlog/u1", syncOp{run: func(context.Context) error {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&ran, 1)
			return nil
		}})
	}
	if err := ex.Barrier(context.Background(), "foodlog/u1"); err != nil {
		t.Fatalf("Barrier: %v", err)
	}
	if got := atomic.LoadInt32(&ran); got != 5 {
		t.Fatalf("barrier returned with %d of 5 jobs done", got)
	}
}

func TestSubmitAfterStop(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 2, QueueSize: 2})
	ex.Stop()

	if err := ex.Submit(context.Background(), "habits/u1", syncOp{}); !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("err = %v, want ErrExecutorClosed", err)
	}
}

// Stop racing many Submits must not panic or deadlock, and every Submit
// after Stop completes sees ErrExecutorClosed.
func TestStopSubmitRace(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 32})

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ex.Submit(context.Background(), "habits/u1", syncOp{})
		}()
	}
	go ex.Stop()
	wg.Wait()

	if err := ex.Submit(context.Background(), "habits/u1", syncOp{}); !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("post-stop submit: %v, want ErrExecutorClosed", err)
	}
}

// Stop drains jobs already queued before returning.
func TestStopDrainsQueuedJobs(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 8})

	var ran int32
	release := blockWorker(t, ex, "habits/u1")
	for i := 0; i < 4; i++ {
		_ = ex.Submit(context.Background(), "habits/u1", syncOp{run: func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}})
	}
	release()
	ex.Stop()

	if got := atomic.LoadInt32(&ran); got != 4 {
		t.Fatalf("drained %d queued jobs, want 4", got)
	}
}

func waitOrFatal(t *testing.T, wg *sync.WaitGroup, d time.Duration, msg string) {
	t.Helper()
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal(msg)
	}
}

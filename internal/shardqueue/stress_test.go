//go:build stress

package shardqueue

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// High-volume check that one stream never has two jobs in flight.
func TestStressSerialPerStream(t *testing.T) {
	t.Parallel()
	const jobs = 2_000

	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 2048})
	defer ex.Stop()

	var (
		inFlight int32
		overlaps int32
		wg       sync.WaitGroup
	)
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go func() {
			defer wg.Done()
			_ = ex.Submit(context.Background(), "foodlog/u1", syncOp{run: func(context.Context) error {
				if atomic.AddInt32(&inFlight, 1) > 1 {
					atomic.AddInt32(&overlaps, 1)
				}
				time.Sleep(time.Microsecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			}})
		}()
	}

	waitOrFatal(t, &wg, 5*time.Second, "jobs did not drain")

	if n := atomic.LoadInt32(&overlaps); n != 0 {
		t.Fatalf("observed %d overlaps on one stream", n)
	}
}

// Distinct streams should actually run in parallel; sample peak concurrency.
func TestStressParallelStreams(t *testing.T) {
	t.Parallel()
	const (
		streams    = 16
		jobsPerKey = 50
	)

	ex := NewShardExecutor(Config{Shards: 8, QueueSize: 512})
	defer ex.Stop()

	var (
		inFlight int32
		peak     int32
		wg       sync.WaitGroup
	)
	wg.Add(streams * jobsPerKey)
	for s := 0; s < streams; s++ {
		key := fmt.Sprintf("habits/u%d", s)
		for j := 0; j < jobsPerKey; j++ {
			go func() {
				defer wg.Done()
				_ = ex.Submit(context.Background(), key, syncOp{run: func(context.Context) error {
					n := atomic.AddInt32(&inFlight, 1)
					for {
						p := atomic.LoadInt32(&peak)
						if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
							break
						}
					}
					time.Sleep(50 * time.Microsecond)
					atomic.AddInt32(&inFlight, -1)
					return nil
				}})
			}()
		}
	}
	wg.Wait()

	want := int32(8)
	if gmp := int32(runtime.GOMAXPROCS(0)); gmp < want {
		want = gmp
	}
	if want < 2 {
		t.Skip("single-proc environment, parallelism not observable")
	}
	if peak < want {
		t.Fatalf("peak concurrency = %d, want at least %d", peak, want)
	}
}

// A tiny queue under submit pressure must report ErrQueueFull some of the
// time without losing the ability to make progress.
func TestStressBackPressure(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 4, EnqueueTimeout: 10 * time.Microsecond})
	defer ex.Stop()

	const attempts = 512
	const submitters = 16

	var (
		full int32
		wg   sync.WaitGroup
	)
	wg.Add(submitters)
	for w := 0; w < submitters; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < attempts/submitters; i++ {
				err := ex.Submit(context.Background(), "mealplan/u1", syncOp{run: func(context.Context) error {
					time.Sleep(200 * time.Microsecond)
					return nil
				}})
				if errors.Is(err, ErrQueueFull) {
					atomic.AddInt32(&full, 1)
				}
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&full); n == 0 || n == attempts {
		t.Fatalf("queue-full count = %d of %d, want some but not all", n, attempts)
	}
}

// Randomised mix of streams, cancellation, and job durations. The seed is
// logged and can be pinned with SQ_STRESS_SEED for replay.
func TestStressRandomised(t *testing.T) {
	t.Parallel()
	const (
		duration   = 200 * time.Millisecond
		submitters = 8
	)

	seed := time.Now().UnixNano()
	if s := os.Getenv("SQ_STRESS_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}
	t.Logf("stress seed=%d", seed)

	ex := NewShardExecutor(Config{Shards: 8, QueueSize: 64})
	defer ex.Stop()

	stopCtx, stop := context.WithTimeout(context.Background(), duration)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(submitters)
	for id := 0; id < submitters; id++ {
		rng := rand.New(rand.NewSource(seed + int64(id)))
		go func(rng *rand.Rand) {
			defer wg.Done()
			for stopCtx.Err() == nil {
				key := fmt.Sprintf("goals/u%d", rng.Intn(32))
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(rng.Intn(200))*time.Microsecond)
				d := time.Duration(rng.Intn(150)) * time.Microsecond
				_ = ex.Submit(ctx, key, syncOp{run: func(context.Context) error {
					time.Sleep(d)
					return nil
				}})
				cancel()
			}
		}(rng)
	}
	wg.Wait()
}

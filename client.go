// Package foodhabits is the client-side state and sync core for the
// FoodHabits tracker. It owns the in-memory domain snapshot for the active
// user, applies mutations optimistically, mirrors every change to a local
// JSON store, and reconciles with the remote FoodHabits API through an
// ordered async sync queue.
package foodhabits

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/foodhabits/foodhabits-go/internal/api"
	"github.com/foodhabits/foodhabits-go/internal/job"
	"github.com/foodhabits/foodhabits-go/internal/persist"
	"github.com/foodhabits/foodhabits-go/internal/session"
	"github.com/foodhabits/foodhabits-go/internal/shardqueue"
	"github.com/foodhabits/foodhabits-go/internal/store"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// Sync stream names. Each collection syncs through its own FIFO stream so
// mutations of one collection reach the server in issue order.
const (
	StreamHabits   = "habits"
	StreamGoals    = "goals"
	StreamFoodLog  = "foodlog"
	StreamMealPlan = "mealplan"
)

var streams = []string{StreamHabits, StreamGoals, StreamFoodLog, StreamMealPlan}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	exec    executor

	store    *store.Store
	disk     persist.Port
	sessions *session.Manager

	// aliases maps a pending local id to its confirmed server id. An empty
	// string marks an abandoned create: queued jobs referencing it skip.
	aliasMu sync.Mutex
	aliases map[string]string

	dataDir     string // set by WithDataDir, consumed in New
	noExec      bool
	onSyncError func(error)

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given API base URL. Additional options
// can be provided via functional arguments. The client starts signed out
// with the default seed snapshot; call RestoreSession to rehydrate a
// previous session from disk.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store.New(types.DefaultSnapshot()),
		aliases: make(map[string]string),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.disk == nil {
		dir := c.dataDir
		if dir == "" {
			var err error
			if dir, err = persist.DefaultDataDir(); err != nil {
				return nil, err
			}
		}
		fs, err := persist.NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		c.disk = fs
	}

	c.sessions = session.NewManager(
		func(ctx context.Context, email, password string) (*types.Session, error) {
			return api.LogIn(ctx, c.http, c.baseURL, types.LogInRequest{Email: email, Password: password})
		},
		func(ctx context.Context, name, email, password string) (*types.Session, error) {
			return api.SignUp(ctx, c.http, c.baseURL, types.SignUpRequest{Name: name, Email: email, Password: password})
		},
		c.store, c.disk,
	)

	if c.exec == nil && !c.noExec {
		c.exec = newDefaultExecutor(c)
	}
	return c, nil
}

// newDefaultExecutor constructs the shardqueue executor from the SQ_*
// environment, falling back to the package defaults when the environment
// does not parse.
func newDefaultExecutor(c *Client) *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("invalid SQ_* environment, using executor defaults")
		cfg = shardqueue.Config{Shards: 4, QueueSize: 128, EnqueueTimeout: 100 * time.Millisecond,
			MaxAttempts: 8, BaseBackoff: 100 * time.Millisecond, MaxInterval: 20 * time.Second}
	}
	cfg.ErrorHandler = c.handleSyncError
	return shardqueue.NewShardExecutor(cfg)
}

// Close stops the background executor, draining queued sync jobs. Safe to
// call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Snapshot returns a deep copy of the current domain state.
func (c *Client) Snapshot() types.Snapshot {
	return c.store.Snapshot()
}

// Subscribe registers fn to run after every state change. The returned
// func removes the subscription.
func (c *Client) Subscribe(fn func(types.Snapshot)) (unsubscribe func()) {
	return c.store.Subscribe(fn)
}

// AwaitSync blocks until all previously submitted sync jobs for the given
// stream (StreamHabits, StreamGoals, StreamFoodLog or StreamMealPlan) have
// been executed. It works by submitting a no-op job and waiting for it to
// run, thereby guaranteeing the FIFO stream has flushed.
func (c *Client) AwaitSync(ctx context.Context, stream string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.exec == nil {
		return nil
	}
	sess, err := c.sessions.Current()
	if err != nil {
		return err
	}
	done := make(chan struct{})
	j := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, stream+"/"+sess.ID, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// AwaitAllSync flushes every sync stream for the current session.
func (c *Client) AwaitAllSync(ctx context.Context) error {
	for _, s := range streams {
		if err := c.AwaitSync(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------
// Internal plumbing shared by the operation files
// --------------------------------------------------------------------

// apply commits a patch to the store and mirrors the result to disk.
func (c *Client) apply(patch types.Patch) {
	c.store.Apply(patch)
	c.persistLocal()
}

// update applies a read-modify-write mutation atomically. Sync workers use
// it so an id confirmation or revert cannot clobber a caller mutation that
// lands between read and write.
func (c *Client) update(fn func(types.Snapshot) types.Patch) {
	c.store.Update(fn)
	c.persistLocal()
}

func (c *Client) persistLocal() {
	if err := c.sessions.Persist(); err != nil && !errors.Is(err, session.ErrNoSession) {
		log.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

// enqueue submits a sync job on the given collection stream for the current
// session. A full queue surfaces as ErrBackPressure.
func (c *Client) enqueue(ctx context.Context, stream, userID string, j shardqueue.Job) error {
	if c.exec == nil {
		return nil
	}
	key := stream + "/" + userID
	if err := c.exec.Submit(ctx, key, j); err != nil {
		if errors.Is(err, shardqueue.ErrQueueFull) {
			return ErrBackPressure
		}
		return err
	}
	syncEnqueuedTotal.WithLabelValues(stream, job.ShardLabel(key)).Inc()
	return nil
}

// handleSyncError runs when the executor gives up on a job.
func (c *Client) handleSyncError(err error) {
	syncFailedTotal.Inc()
	log.Warn().Err(err).Msg("sync job failed")
	if c.onSyncError != nil {
		c.onSyncError(err)
	}
}

// resolveServerID translates an entity id at job-run time. Ids created in
// this session resolve through the alias map; the FIFO stream guarantees
// the create job ran first, so by the time a follow-up job runs the alias
// is either confirmed or tombstoned. The second return is false when the
// entity's create was abandoned and the job should skip.
func (c *Client) resolveServerID(id string) (string, bool) {
	c.aliasMu.Lock()
	defer c.aliasMu.Unlock()
	mapped, ok := c.aliases[id]
	if !ok {
		return id, true
	}
	if mapped == "" {
		return "", false
	}
	return mapped, true
}

func (c *Client) setAlias(localID, serverID string) {
	c.aliasMu.Lock()
	c.aliases[localID] = serverID
	c.aliasMu.Unlock()
}

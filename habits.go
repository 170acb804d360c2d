package foodhabits

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodhabits/foodhabits-go/internal/api"
	"github.com/foodhabits/foodhabits-go/internal/job"
	"github.com/foodhabits/foodhabits-go/internal/store"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// AddHabit creates a habit optimistically. The returned habit carries a
// pending local id; once the server confirms, the snapshot is updated in
// place with the server-assigned id. If the create is ultimately abandoned
// the pending habit is removed and the error surfaces through the sync
// error handler.
func (c *Client) AddHabit(ctx context.Context, name string, target int, category HabitCategory) (Habit, error) {
	if err := types.ValidateHabit(name, target); err != nil {
		return Habit{}, err
	}
	if _, err := types.ParseHabitCategory(string(category)); err != nil {
		return Habit{}, err
	}

	h := types.Habit{ID: uuid.NewString(), Name: name, Target: target, Category: category}
	habits := append(c.store.Snapshot().Habits, h)
	c.apply(types.Patch{Habits: &habits})

	sess, err := c.sessions.Current()
	if err != nil {
		return h, nil // signed out: local-only
	}

	localID := h.ID
	req := types.CreateHabitRequest{UserID: sess.ID, Name: name, Target: target, Category: category}
	j := job.WithOnFail(func(jctx context.Context) error {
		created, err := api.CreateHabit(jctx, c.http, c.baseURL, req)
		if err != nil {
			return err
		}
		c.confirmHabit(localID, created.ID)
		return nil
	}, func(error) {
		c.revertHabit(localID)
	})

	if err := c.enqueue(ctx, StreamHabits, sess.ID, j); err != nil {
		c.revertHabit(localID)
		return Habit{}, err
	}
	return h, nil
}

// ToggleHabit flips a habit's completion: streak +1 on completion, -1
// (floored at zero) on un-completion. Current is untouched.
func (c *Client) ToggleHabit(ctx context.Context, id string) error {
	snap := c.store.Snapshot()
	habits := store.ToggleHabit(snap.Habits, id)
	updated, ok := findHabit(habits, id)
	if !ok {
		return ErrNotFound
	}
	c.apply(types.Patch{Habits: &habits})

	req := types.UpdateHabitRequest{Completed: &updated.Completed, Streak: &updated.Streak}
	return c.syncHabitUpdate(ctx, id, req)
}

// SetHabitProgress replaces a habit's current value. Completion follows
// from current >= target; the streak increments only on the false-to-true
// transition.
func (c *Client) SetHabitProgress(ctx context.Context, id string, current int) error {
	snap := c.store.Snapshot()
	habits := store.SetHabitProgress(snap.Habits, id, current)
	updated, ok := findHabit(habits, id)
	if !ok {
		return ErrNotFound
	}
	c.apply(types.Patch{Habits: &habits})

	req := types.UpdateHabitRequest{
		Current:   &updated.Current,
		Completed: &updated.Completed,
		Streak:    &updated.Streak,
	}
	return c.syncHabitUpdate(ctx, id, req)
}

// DeleteHabit removes a habit locally and queues the server delete. The
// removal is kept even if the server delete ultimately fails.
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	snap := c.store.Snapshot()
	if _, ok := findHabit(snap.Habits, id); !ok {
		return ErrNotFound
	}
	habits := store.RemoveHabit(snap.Habits, id)
	c.apply(types.Patch{Habits: &habits})

	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	j := job.New(func(jctx context.Context) error {
		serverID, ok := c.resolveServerID(id)
		if !ok {
			return nil // create was abandoned, nothing to delete remotely
		}
		return api.DeleteHabit(jctx, c.http, c.baseURL, serverID)
	})
	return c.enqueue(ctx, StreamHabits, sess.ID, j)
}

func (c *Client) syncHabitUpdate(ctx context.Context, id string, req types.UpdateHabitRequest) error {
	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	j := job.New(func(jctx context.Context) error {
		serverID, ok := c.resolveServerID(id)
		if !ok {
			return nil
		}
		return api.UpdateHabit(jctx, c.http, c.baseURL, serverID, req)
	})
	return c.enqueue(ctx, StreamHabits, sess.ID, j)
}

// confirmHabit swaps the pending local id for the server-assigned one. It
// runs on an executor worker, so the swap goes through Update to keep
// concurrent caller mutations intact.
func (c *Client) confirmHabit(localID, serverID string) {
	c.setAlias(localID, serverID)
	c.update(func(snap types.Snapshot) types.Patch {
		habits := store.ReplaceHabitID(snap.Habits, localID, serverID)
		return types.Patch{Habits: &habits}
	})
}

// revertHabit removes an optimistically created habit whose server create
// was abandoned, and tombstones its id so queued follow-up jobs skip.
func (c *Client) revertHabit(localID string) {
	c.setAlias(localID, "")
	c.update(func(snap types.Snapshot) types.Patch {
		habits := store.RemoveHabit(snap.Habits, localID)
		return types.Patch{Habits: &habits}
	})
}

func findHabit(habits []types.Habit, id string) (types.Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return types.Habit{}, false
}

package foodhabits

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodhabits/foodhabits-go/internal/api"
	"github.com/foodhabits/foodhabits-go/internal/job"
	"github.com/foodhabits/foodhabits-go/internal/store"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// GoalParams carries the editable fields of a goal.
type GoalParams struct {
	Title    string
	Target   float64
	Current  float64
	Unit     string
	Deadline Date
}

// AddGoal creates a goal optimistically, following the same two-phase
// confirm-or-revert protocol as AddHabit.
func (c *Client) AddGoal(ctx context.Context, p GoalParams) (Goal, error) {
	if err := types.ValidateGoal(p.Title, p.Target, p.Unit, p.Deadline); err != nil {
		return Goal{}, err
	}
	if p.Current < 0 {
		p.Current = 0
	}

	g := types.Goal{
		ID:       uuid.NewString(),
		Title:    p.Title,
		Target:   p.Target,
		Current:  p.Current,
		Unit:     p.Unit,
		Deadline: p.Deadline,
	}
	goals := append(c.store.Snapshot().Goals, g)
	c.apply(types.Patch{Goals: &goals})

	sess, err := c.sessions.Current()
	if err != nil {
		return g, nil
	}

	localID := g.ID
	req := types.CreateGoalRequest{
		UserID:   sess.ID,
		Title:    p.Title,
		Target:   p.Target,
		Current:  p.Current,
		Unit:     p.Unit,
		Deadline: p.Deadline,
	}
	j := job.WithOnFail(func(jctx context.Context) error {
		created, err := api.CreateGoal(jctx, c.http, c.baseURL, req)
		if err != nil {
			return err
		}
		c.confirmGoal(localID, created.ID)
		return nil
	}, func(error) {
		c.revertGoal(localID)
	})

	if err := c.enqueue(ctx, StreamGoals, sess.ID, j); err != nil {
		c.revertGoal(localID)
		return Goal{}, err
	}
	return g, nil
}

// UpdateGoal overwrites a goal's editable fields.
func (c *Client) UpdateGoal(ctx context.Context, id string, p GoalParams) error {
	if err := types.ValidateGoal(p.Title, p.Target, p.Unit, p.Deadline); err != nil {
		return err
	}
	snap := c.store.Snapshot()
	if _, ok := findGoal(snap.Goals, id); !ok {
		return ErrNotFound
	}
	goals := store.UpdateGoal(snap.Goals, id, p.Title, p.Target, p.Current, p.Unit, p.Deadline)
	c.apply(types.Patch{Goals: &goals})

	updated, _ := findGoal(goals, id)
	req := types.UpdateGoalRequest{
		Title:    &updated.Title,
		Target:   &updated.Target,
		Current:  &updated.Current,
		Unit:     &updated.Unit,
		Deadline: &updated.Deadline,
	}
	return c.syncGoalUpdate(ctx, id, req)
}

// SetGoalProgress replaces a goal's current value, clamped at zero.
func (c *Client) SetGoalProgress(ctx context.Context, id string, current float64) error {
	snap := c.store.Snapshot()
	if _, ok := findGoal(snap.Goals, id); !ok {
		return ErrNotFound
	}
	goals := store.SetGoalProgress(snap.Goals, id, current)
	c.apply(types.Patch{Goals: &goals})

	updated, _ := findGoal(goals, id)
	req := types.UpdateGoalRequest{Current: &updated.Current}
	return c.syncGoalUpdate(ctx, id, req)
}

// DeleteGoal removes a goal locally and queues the server delete.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	snap := c.store.Snapshot()
	if _, ok := findGoal(snap.Goals, id); !ok {
		return ErrNotFound
	}
	goals := store.RemoveGoal(snap.Goals, id)
	c.apply(types.Patch{Goals: &goals})

	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	j := job.New(func(jctx context.Context) error {
		serverID, ok := c.resolveServerID(id)
		if !ok {
			return nil
		}
		return api.DeleteGoal(jctx, c.http, c.baseURL, serverID)
	})
	return c.enqueue(ctx, StreamGoals, sess.ID, j)
}

func (c *Client) syncGoalUpdate(ctx context.Context, id string, req types.UpdateGoalRequest) error {
	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	j := job.New(func(jctx context.Context) error {
		serverID, ok := c.resolveServerID(id)
		if !ok {
			return nil
		}
		return api.UpdateGoal(jctx, c.http, c.baseURL, serverID, req)
	})
	return c.enqueue(ctx, StreamGoals, sess.ID, j)
}

func (c *Client) confirmGoal(localID, serverID string) {
	c.setAlias(localID, serverID)
	c.update(func(snap types.Snapshot) types.Patch {
		goals := store.ReplaceGoalID(snap.Goals, localID, serverID)
		return types.Patch{Goals: &goals}
	})
}

func (c *Client) revertGoal(localID string) {
	c.setAlias(localID, "")
	c.update(func(snap types.Snapshot) types.Patch {
		goals := store.RemoveGoal(snap.Goals, localID)
		return types.Patch{Goals: &goals}
	})
}

func findGoal(goals []types.Goal, id string) (types.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return types.Goal{}, false
}

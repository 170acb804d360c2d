package foodhabits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/foodhabits/foodhabits-go/internal/api"
	"github.com/foodhabits/foodhabits-go/internal/job"
	"github.com/foodhabits/foodhabits-go/internal/store"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// AddFoodEntry logs a food item at the current time. The sync job carries
// the entire affected day, so the server's view of a day always converges
// to the client's regardless of per-item outcomes.
func (c *Client) AddFoodEntry(ctx context.Context, name string, calories int, category MealCategory, nutrients *Nutrients) (FoodEntry, error) {
	if err := types.ValidateFoodEntry(name, calories); err != nil {
		return FoodEntry{}, err
	}
	if _, err := types.ParseMealCategory(string(category)); err != nil {
		return FoodEntry{}, err
	}

	e := types.FoodEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  calories,
		Category:  category,
		Timestamp: time.Now(),
		Nutrients: nutrients,
	}
	logEntries := append(c.store.Snapshot().FoodLog, e)
	c.apply(types.Patch{FoodLog: &logEntries})

	if err := c.syncFoodDay(ctx, logEntries, e.Day()); err != nil {
		return FoodEntry{}, err
	}
	return e, nil
}

// DeleteFoodEntry removes a logged item and resynchronizes its day with
// exactly the remaining same-day entries.
func (c *Client) DeleteFoodEntry(ctx context.Context, id string) error {
	snap := c.store.Snapshot()
	var day types.Date
	found := false
	for _, e := range snap.FoodLog {
		if e.ID == id {
			day = e.Day()
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	logEntries := store.RemoveFoodEntry(snap.FoodLog, id)
	c.apply(types.Patch{FoodLog: &logEntries})
	return c.syncFoodDay(ctx, logEntries, day)
}

// syncFoodDay queues a day-scoped upsert carrying every entry of the day.
func (c *Client) syncFoodDay(ctx context.Context, logEntries []types.FoodEntry, day types.Date) error {
	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	items := make([]types.FoodDayItem, 0)
	for _, e := range store.EntriesForDay(logEntries, day) {
		items = append(items, types.FoodDayItemOf(e))
	}
	req := types.UpsertFoodDayRequest{UserID: sess.ID, Date: day, Items: items}
	j := job.New(func(jctx context.Context) error {
		return api.UpsertFoodDay(jctx, c.http, c.baseURL, req)
	})
	return c.enqueue(ctx, StreamFoodLog, sess.ID, j)
}

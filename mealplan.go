package foodhabits

import (
	"context"
	"fmt"

	"github.com/foodhabits/foodhabits-go/internal/api"
	"github.com/foodhabits/foodhabits-go/internal/job"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// AddPlannedMeal appends a meal to the given day of the week plan and
// queues a week-scoped upsert carrying the whole seven-day plan.
func (c *Client) AddPlannedMeal(ctx context.Context, day Weekday, meal string) error {
	if _, err := types.ParseWeekday(string(day)); err != nil {
		return err
	}
	if meal == "" {
		return fmt.Errorf("meal cannot be empty")
	}

	plan := c.store.Snapshot().MealPlan
	meals := append(plan.Meals(day), meal)
	plan = plan.WithMeals(day, meals)
	c.apply(types.Patch{MealPlan: &plan})

	return c.syncMealWeek(ctx, plan)
}

// RemovePlannedMeal removes the meal at index from the given day.
func (c *Client) RemovePlannedMeal(ctx context.Context, day Weekday, index int) error {
	if _, err := types.ParseWeekday(string(day)); err != nil {
		return err
	}

	plan := c.store.Snapshot().MealPlan
	meals := plan.Meals(day)
	if index < 0 || index >= len(meals) {
		return ErrNotFound
	}
	meals = append(meals[:index:index], meals[index+1:]...)
	plan = plan.WithMeals(day, meals)
	c.apply(types.Patch{MealPlan: &plan})

	return c.syncMealWeek(ctx, plan)
}

// syncMealWeek queues the full-week upsert keyed by the current week's
// Monday.
func (c *Client) syncMealWeek(ctx context.Context, plan types.MealPlan) error {
	sess, err := c.sessions.Current()
	if err != nil {
		return nil
	}
	req := types.UpsertMealWeekRequest{
		UserID:    sess.ID,
		WeekStart: types.Today().WeekStart(),
		Days:      plan,
	}
	j := job.New(func(jctx context.Context) error {
		return api.UpsertMealWeek(jctx, c.http, c.baseURL, req)
	})
	return c.enqueue(ctx, StreamMealPlan, sess.ID, j)
}

package foodhabits

import (
	"github.com/foodhabits/foodhabits-go/internal/fooddb"
	"github.com/foodhabits/foodhabits-go/internal/stats"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// DailyStats is the dashboard summary for one day.
type DailyStats struct {
	Calories        int
	HabitCompletion int // whole percent
	LongestStreak   int
	AvgGoalProgress int // whole percent
}

// TodayStats aggregates the dashboard numbers for the current day.
func (c *Client) TodayStats() DailyStats {
	snap := c.Snapshot()
	today := types.Today()
	return DailyStats{
		Calories:        stats.TodayCalories(snap.FoodLog, today),
		HabitCompletion: stats.HabitCompletionRate(snap.Habits),
		LongestStreak:   stats.LongestStreak(snap.Habits),
		AvgGoalProgress: stats.AvgGoalProgress(snap.Goals),
	}
}

// WeeklyCalories returns per-day calorie totals for the seven days ending
// today, in chronological order.
func (c *Client) WeeklyCalories() []DayCalories {
	return stats.CaloriesByDay(c.Snapshot().FoodLog, types.Today())
}

// AvgDailyCalories averages intake over the last seven days, counting
// zero-intake days.
func (c *Client) AvgDailyCalories() int {
	return stats.AvgDailyCalories(c.Snapshot().FoodLog, types.Today())
}

// AvgStreak averages habit streaks across all habits.
func (c *Client) AvgStreak() int {
	return stats.AvgStreak(c.Snapshot().Habits)
}

// GoalProgress returns a goal's progress as a whole percentage capped at
// 100, or ErrNotFound for an unknown id.
func (c *Client) GoalProgress(id string) (int, error) {
	g, ok := findGoal(c.Snapshot().Goals, id)
	if !ok {
		return 0, ErrNotFound
	}
	return stats.GoalProgress(g), nil
}

// GoalStatusOf classifies a goal relative to today's date.
func (c *Client) GoalStatusOf(id string) (GoalStatus, error) {
	g, ok := findGoal(c.Snapshot().Goals, id)
	if !ok {
		return "", ErrNotFound
	}
	return stats.StatusOf(g, types.Today()), nil
}

// GoalCounts returns how many goals are completed and how many are still
// in progress.
func (c *Client) GoalCounts() (completed, inProgress int) {
	goals := c.Snapshot().Goals
	return stats.GoalsCompleted(goals), stats.GoalsInProgress(goals)
}

// SearchFoods queries the built-in nutrition reference table by name or
// benefit, optionally restricted to one category.
func SearchFoods(term, category string) []Food {
	return fooddb.Search(term, category)
}

// LookupFood returns the reference entry for a food name.
func LookupFood(name string) (Food, bool) {
	return fooddb.Lookup(name)
}

// FoodCategories lists the reference table's categories.
func FoodCategories() []string {
	return fooddb.Categories()
}

// Package stats computes read-only aggregates over a domain snapshot.
// Everything here is a pure function of its inputs; callers pass a
// reference day so the numbers are reproducible in tests.
package stats

import (
	"math"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// GoalStatus classifies a goal relative to its deadline and progress.
type GoalStatus string

const (
	GoalCompleted GoalStatus = "completed"
	GoalOverdue   GoalStatus = "overdue"
	GoalUrgent    GoalStatus = "urgent"
	GoalOnTrack   GoalStatus = "on-track"
)

// TodayCalories sums the calories logged on the given day.
func TodayCalories(log []types.FoodEntry, day types.Date) int {
	total := 0
	for _, e := range log {
		if e.Day() == day {
			total += e.Calories
		}
	}
	return total
}

// DayCalories is one bar of the weekly intake chart.
type DayCalories struct {
	Day      types.Date
	Calories int
}

// CaloriesByDay returns per-day calorie totals for the seven days ending
// at (and including) the given day, in chronological order. Days with no
// entries appear with a zero total.
func CaloriesByDay(log []types.FoodEntry, end types.Date) []DayCalories {
	out := make([]DayCalories, 7)
	idx := make(map[types.Date]int, 7)
	for i := 0; i < 7; i++ {
		d := end.AddDays(i - 6)
		out[i] = DayCalories{Day: d}
		idx[d] = i
	}
	for _, e := range log {
		if i, ok := idx[e.Day()]; ok {
			out[i].Calories += e.Calories
		}
	}
	return out
}

// AvgDailyCalories averages the seven-day window ending at the given day,
// counting zero-intake days.
func AvgDailyCalories(log []types.FoodEntry, end types.Date) int {
	total := 0
	for _, d := range CaloriesByDay(log, end) {
		total += d.Calories
	}
	return total / 7
}

// HabitCompletionRate returns the share of habits currently completed as a
// whole percentage, 0 when there are no habits.
func HabitCompletionRate(habits []types.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	done := 0
	for _, h := range habits {
		if h.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(habits)) * 100))
}

// LongestStreak returns the longest streak across all habits.
func LongestStreak(habits []types.Habit) int {
	best := 0
	for _, h := range habits {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}

// AvgStreak averages habit streaks, 0 when there are no habits.
func AvgStreak(habits []types.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	total := 0
	for _, h := range habits {
		total += h.Streak
	}
	return int(math.Round(float64(total) / float64(len(habits))))
}

// GoalProgress returns a goal's progress as a whole percentage capped at
// 100. A non-positive target reports zero rather than dividing by it.
func GoalProgress(g types.Goal) int {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Current / g.Target * 100
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// AvgGoalProgress averages GoalProgress across goals, 0 when there are
// none.
func AvgGoalProgress(goals []types.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	total := 0
	for _, g := range goals {
		total += GoalProgress(g)
	}
	return int(math.Round(float64(total) / float64(len(goals))))
}

// StatusOf classifies a goal on the given day. Completion wins over the
// deadline; an unfinished goal past its deadline is overdue, one due
// within a week is urgent.
func StatusOf(g types.Goal, today types.Date) GoalStatus {
	if GoalProgress(g) >= 100 {
		return GoalCompleted
	}
	days := today.DaysUntil(g.Deadline)
	switch {
	case days < 0:
		return GoalOverdue
	case days <= 7:
		return GoalUrgent
	default:
		return GoalOnTrack
	}
}

// GoalsCompleted counts goals at or past their target.
func GoalsCompleted(goals []types.Goal) int {
	n := 0
	for _, g := range goals {
		if GoalProgress(g) >= 100 {
			n++
		}
	}
	return n
}

// GoalsInProgress counts goals below their target.
func GoalsInProgress(goals []types.Goal) int {
	return len(goals) - GoalsCompleted(goals)
}

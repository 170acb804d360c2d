package store

import "github.com/foodhabits/foodhabits-go/internal/types"

// Mutation helpers: pure functions that compute the replacement collection
// for one operation. Derived fields (completed, streak) are computed here,
// at call time, never inside Store.

// ToggleHabit flips completion for the habit with the given id: streak goes
// up by one on completion and down by one (floored at zero) on
// un-completion. Current is deliberately left untouched; completion by
// toggle is a user assertion, not a progress change.
func ToggleHabit(habits []types.Habit, id string) []types.Habit {
	out := append([]types.Habit(nil), habits...)
	for i, h := range out {
		if h.ID != id {
			continue
		}
		h.Completed = !h.Completed
		if h.Completed {
			h.Streak++
		} else if h.Streak > 0 {
			h.Streak--
		}
		out[i] = h
	}
	return out
}

// SetHabitProgress replaces a habit's current value (floored at zero).
// Completion follows from current >= target; the streak increments only on
// the false→true completion transition and is otherwise preserved.
func SetHabitProgress(habits []types.Habit, id string, current int) []types.Habit {
	if current < 0 {
		current = 0
	}
	out := append([]types.Habit(nil), habits...)
	for i, h := range out {
		if h.ID != id {
			continue
		}
		completed := current >= h.Target
		if completed && !h.Completed {
			h.Streak++
		}
		h.Current = current
		h.Completed = completed
		out[i] = h
	}
	return out
}

// ReplaceHabitID swaps a pending correlation id for the server-assigned one.
func ReplaceHabitID(habits []types.Habit, pendingID, serverID string) []types.Habit {
	out := append([]types.Habit(nil), habits...)
	for i, h := range out {
		if h.ID == pendingID {
			h.ID = serverID
			out[i] = h
		}
	}
	return out
}

// RemoveHabit drops the habit with the given id.
func RemoveHabit(habits []types.Habit, id string) []types.Habit {
	out := make([]types.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

// SetGoalProgress replaces a goal's current value, clamped at zero.
func SetGoalProgress(goals []types.Goal, id string, current float64) []types.Goal {
	if current < 0 {
		current = 0
	}
	out := append([]types.Goal(nil), goals...)
	for i, g := range out {
		if g.ID == id {
			g.Current = current
			out[i] = g
		}
	}
	return out
}

// UpdateGoal overwrites the editable fields of one goal.
func UpdateGoal(goals []types.Goal, id string, title string, target, current float64, unit string, deadline types.Date) []types.Goal {
	if current < 0 {
		current = 0
	}
	out := append([]types.Goal(nil), goals...)
	for i, g := range out {
		if g.ID == id {
			g.Title = title
			g.Target = target
			g.Current = current
			g.Unit = unit
			g.Deadline = deadline
			out[i] = g
		}
	}
	return out
}

// ReplaceGoalID swaps a pending correlation id for the server-assigned one.
func ReplaceGoalID(goals []types.Goal, pendingID, serverID string) []types.Goal {
	out := append([]types.Goal(nil), goals...)
	for i, g := range out {
		if g.ID == pendingID {
			g.ID = serverID
			out[i] = g
		}
	}
	return out
}

// RemoveGoal drops the goal with the given id.
func RemoveGoal(goals []types.Goal, id string) []types.Goal {
	out := make([]types.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

// RemoveFoodEntry drops the entry with the given id, preserving append order.
func RemoveFoodEntry(log []types.FoodEntry, id string) []types.FoodEntry {
	out := make([]types.FoodEntry, 0, len(log))
	for _, e := range log {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForDay selects the food entries whose local calendar date is day,
// preserving append order.
func EntriesForDay(log []types.FoodEntry, day types.Date) []types.FoodEntry {
	var out []types.FoodEntry
	for _, e := range log {
		if e.Day() == day {
			out = append(out, e)
		}
	}
	return out
}

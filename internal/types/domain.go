package types

import (
	"fmt"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// HabitCategory enumerates the habit buckets shown in the tracker.
type HabitCategory string

const (
	CategoryHydration HabitCategory = "hydration"
	CategoryNutrition HabitCategory = "nutrition"
	CategoryDiet      HabitCategory = "diet"
	CategoryMeals     HabitCategory = "meals"
	CategoryExercise  HabitCategory = "exercise"
)

// ParseHabitCategory validates a raw category string at the input boundary.
func ParseHabitCategory(s string) (HabitCategory, error) {
	switch c := HabitCategory(s); c {
	case CategoryHydration, CategoryNutrition, CategoryDiet, CategoryMeals, CategoryExercise:
		return c, nil
	}
	return "", fmt.Errorf("unknown habit category %q", s)
}

// MealCategory enumerates the food-log meal slots.
type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnack     MealCategory = "snack"
)

// ParseMealCategory validates a raw meal category string at the input boundary.
func ParseMealCategory(s string) (MealCategory, error) {
	switch c := MealCategory(s); c {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return c, nil
	}
	return "", fmt.Errorf("unknown meal category %q", s)
}

// Habit is a daily habit with a numeric target and a running streak.
// completed and streak are maintained together by the toggle/progress
// helpers; the store itself never recomputes them.
type Habit struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Completed bool          `json:"completed"`
	Streak    int           `json:"streak"`
	Target    int           `json:"target"`
	Current   int           `json:"current"`
	Category  HabitCategory `json:"category"`
}

// Nutrients is the optional macro breakdown of a food entry. Values are
// grams; nil means the user did not record that macro.
type Nutrients struct {
	Protein *int `json:"protein,omitempty"`
	Carbs   *int `json:"carbs,omitempty"`
	Fat     *int `json:"fat,omitempty"`
}

// FoodEntry is one logged food item. IDs are client-generated; the backend
// stores food logs per calendar day, not per entry.
type FoodEntry struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Calories  int          `json:"calories"`
	Category  MealCategory `json:"category"`
	Timestamp time.Time    `json:"timestamp"`
	Nutrients *Nutrients   `json:"nutrients,omitempty"`
}

// Day returns the calendar date of the entry in local time.
func (e FoodEntry) Day() Date { return DateOf(e.Timestamp) }

// Goal is a user goal with free-text unit and a calendar deadline.
// Current may exceed Target; that signals completion rather than an error.
type Goal struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Unit     string  `json:"unit"`
	Deadline Date    `json:"deadline"`
}

// MealPlan maps each weekday to an ordered list of free-text meal names.
type MealPlan struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

// Weekday is the lowercase day key used by the meal planner.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the plan days in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a raw day key.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if Weekday(s) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// Meals returns the meal list for day. Unknown days return nil.
func (p *MealPlan) Meals(day Weekday) []string {
	switch day {
	case Monday:
		return p.Monday
	case Tuesday:
		return p.Tuesday
	case Wednesday:
		return p.Wednesday
	case Thursday:
		return p.Thursday
	case Friday:
		return p.Friday
	case Saturday:
		return p.Saturday
	case Sunday:
		return p.Sunday
	}
	return nil
}

// WithMeals returns a copy of the plan with day's meal list replaced.
func (p MealPlan) WithMeals(day Weekday, meals []string) MealPlan {
	switch day {
	case Monday:
		p.Monday = meals
	case Tuesday:
		p.Tuesday = meals
	case Wednesday:
		p.Wednesday = meals
	case Thursday:
		p.Thursday = meals
	case Friday:
		p.Friday = meals
	case Saturday:
		p.Saturday = meals
	case Sunday:
		p.Sunday = meals
	}
	return p
}

// Clone returns a deep copy of the plan.
func (p MealPlan) Clone() MealPlan {
	out := MealPlan{}
	for _, d := range Weekdays {
		out = out.WithMeals(d, append([]string(nil), p.Meals(d)...))
	}
	return out
}

// Snapshot is the full in-memory domain state for one user. It is owned by
// the store; consumers only ever see copies.
type Snapshot struct {
	Habits   []Habit     `json:"habits"`
	FoodLog  []FoodEntry `json:"foodLog"`
	Goals    []Goal      `json:"goals"`
	MealPlan MealPlan    `json:"mealPlan"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Habits:   append([]Habit(nil), s.Habits...),
		Goals:    append([]Goal(nil), s.Goals...),
		MealPlan: s.MealPlan.Clone(),
	}
	out.FoodLog = make([]FoodEntry, len(s.FoodLog))
	for i, e := range s.FoodLog {
		if e.Nutrients != nil {
			n := *e.Nutrients
			e.Nutrients = &n
		}
		out.FoodLog[i] = e
	}
	return out
}

// Patch is a partial snapshot. A non-nil field fully replaces the prior
// value of that field; nil fields are left untouched.
type Patch struct {
	Habits   *[]Habit
	FoodLog  *[]FoodEntry
	Goals    *[]Goal
	MealPlan *MealPlan
}

// Session is the active authenticated identity.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

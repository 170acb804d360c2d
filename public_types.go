package foodhabits

import (
	"github.com/foodhabits/foodhabits-go/internal/fooddb"
	"github.com/foodhabits/foodhabits-go/internal/persist"
	"github.com/foodhabits/foodhabits-go/internal/stats"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// Public type aliases so consumers can import only the foodhabits package.

// Domain entities
type (
	Habit     = types.Habit
	FoodEntry = types.FoodEntry
	Nutrients = types.Nutrients
	Goal      = types.Goal
	MealPlan  = types.MealPlan
	Snapshot  = types.Snapshot
	Session   = types.Session
	Date      = types.Date
)

// Enumerations
type (
	HabitCategory = types.HabitCategory
	MealCategory  = types.MealCategory
	Weekday       = types.Weekday
	GoalStatus    = stats.GoalStatus
)

const (
	CategoryHydration = types.CategoryHydration
	CategoryNutrition = types.CategoryNutrition
	CategoryDiet      = types.CategoryDiet
	CategoryMeals     = types.CategoryMeals
	CategoryExercise  = types.CategoryExercise

	MealBreakfast = types.MealBreakfast
	MealLunch     = types.MealLunch
	MealDinner    = types.MealDinner
	MealSnack     = types.MealSnack

	Monday    = types.Monday
	Tuesday   = types.Tuesday
	Wednesday = types.Wednesday
	Thursday  = types.Thursday
	Friday    = types.Friday
	Saturday  = types.Saturday
	Sunday    = types.Sunday

	GoalCompleted = stats.GoalCompleted
	GoalOverdue   = stats.GoalOverdue
	GoalUrgent    = stats.GoalUrgent
	GoalOnTrack   = stats.GoalOnTrack
)

// Persistence is the pluggable local storage backend; see WithPersistence.
type Persistence = persist.Port

// DayCalories is one bar of the weekly intake chart.
type DayCalories = stats.DayCalories

// Food is one entry of the built-in nutrition reference table.
type Food = fooddb.Food

// Date helpers re-exported for callers constructing goals.
var (
	ParseDate = types.ParseDate
	DateOf    = types.DateOf
	Today     = types.Today
)

package types

// DefaultSnapshot returns the seed state used before sign-in and for a fresh
// identity with no persisted data: four starter habits, two starter goals,
// an empty food log and an empty week plan.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Habits: []Habit{
			{ID: "1", Name: "Drink 8 glasses of water", Streak: 5, Target: 8, Category: CategoryHydration},
			{ID: "2", Name: "Eat 5 servings of fruits/vegetables", Streak: 3, Target: 5, Category: CategoryNutrition},
			{ID: "3", Name: "No processed foods", Streak: 2, Target: 1, Category: CategoryDiet},
			{ID: "4", Name: "Eat breakfast", Streak: 7, Target: 1, Category: CategoryMeals},
		},
		FoodLog: []FoodEntry{},
		Goals: []Goal{
			{ID: "1", Title: "Lose 10 pounds", Target: 10, Current: 3, Unit: "lbs", Deadline: Date{Year: 2025, Month: 3, Day: 1}},
			{ID: "2", Title: "Exercise 4x per week", Target: 4, Current: 2, Unit: "times/week", Deadline: Date{Year: 2025, Month: 2, Day: 15}},
		},
		MealPlan: MealPlan{
			Monday:    []string{},
			Tuesday:   []string{},
			Wednesday: []string{},
			Thursday:  []string{},
			Friday:    []string{},
			Saturday:  []string{},
			Sunday:    []string{},
		},
	}
}

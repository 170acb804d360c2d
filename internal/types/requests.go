package types

// ------------------------------
// Request Types
// ------------------------------

// SignUpRequest is the body for POST {base}/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogInRequest is the body for POST {base}/auth/login.
type LogInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateHabitRequest is the body for POST {base}/api/habits.
type CreateHabitRequest struct {
	UserID   string        `json:"userId"`
	Name     string        `json:"name"`
	Target   int           `json:"target"`
	Category HabitCategory `json:"category"`
}

// UpdateHabitRequest is the partial body for PUT {base}/api/habits/:id.
// Nil fields are omitted from the wire.
type UpdateHabitRequest struct {
	Name      *string        `json:"name,omitempty"`
	Target    *int           `json:"target,omitempty"`
	Category  *HabitCategory `json:"category,omitempty"`
	Completed *bool          `json:"completed,omitempty"`
	Streak    *int           `json:"streak,omitempty"`
	Current   *int           `json:"current,omitempty"`
}

// CreateGoalRequest is the body for POST {base}/api/goals.
type CreateGoalRequest struct {
	UserID   string  `json:"userId"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Unit     string  `json:"unit"`
	Deadline Date    `json:"deadline"`
}

// UpdateGoalRequest is the partial body for PUT {base}/api/goals/:id.
type UpdateGoalRequest struct {
	Title    *string  `json:"title,omitempty"`
	Target   *float64 `json:"target,omitempty"`
	Current  *float64 `json:"current,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Deadline *Date    `json:"deadline,omitempty"`
}

// FoodDayItem is one item inside a day-scoped food-log upsert. The backend
// flattens the nutrient breakdown; absent macros are sent as zero.
type FoodDayItem struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// UpsertFoodDayRequest is the body for POST {base}/api/food-logs. It always
// carries the entire set of entries for one calendar day.
type UpsertFoodDayRequest struct {
	UserID string        `json:"userId"`
	Date   Date          `json:"date"`
	Items  []FoodDayItem `json:"items"`
}

// FoodDayItemOf flattens a FoodEntry into its upsert representation.
func FoodDayItemOf(e FoodEntry) FoodDayItem {
	item := FoodDayItem{Name: e.Name, Calories: e.Calories, Quantity: 1, Unit: "serving"}
	if n := e.Nutrients; n != nil {
		if n.Protein != nil {
			item.Protein = *n.Protein
		}
		if n.Carbs != nil {
			item.Carbs = *n.Carbs
		}
		if n.Fat != nil {
			item.Fat = *n.Fat
		}
	}
	return item
}

// UpsertMealWeekRequest is the body for POST {base}/api/meal-plans. It always
// carries the whole seven-day plan for the week starting at WeekStart.
type UpsertMealWeekRequest struct {
	UserID    string   `json:"userId"`
	WeekStart Date     `json:"weekStart"`
	Days      MealPlan `json:"days"`
}

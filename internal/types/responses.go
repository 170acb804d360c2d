package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is the success body of the signup/login endpoints.
type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthFailure is the non-2xx body of the auth endpoints.
type AuthFailure struct {
	Message string `json:"message"`
}

// HabitDoc is the backend's habit representation. Create responses carry the
// server-assigned identifier under the Mongo-style "_id" key.
type HabitDoc struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Completed bool          `json:"completed"`
	Streak    int           `json:"streak"`
	Target    int           `json:"target"`
	Current   int           `json:"current"`
	Category  HabitCategory `json:"category"`
}

// Habit converts the wire document into the domain entity.
func (d HabitDoc) Habit() Habit {
	return Habit{
		ID:        d.ID,
		Name:      d.Name,
		Completed: d.Completed,
		Streak:    d.Streak,
		Target:    d.Target,
		Current:   d.Current,
		Category:  d.Category,
	}
}

// GoalDoc is the backend's goal representation, "_id" keyed like HabitDoc.
type GoalDoc struct {
	ID       string  `json:"_id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Unit     string  `json:"unit"`
	Deadline Date    `json:"deadline"`
}

// Goal converts the wire document into the domain entity.
func (d GoalDoc) Goal() Goal {
	return Goal{
		ID:       d.ID,
		Title:    d.Title,
		Target:   d.Target,
		Current:  d.Current,
		Unit:     d.Unit,
		Deadline: d.Deadline,
	}
}

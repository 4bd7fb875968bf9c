package store

import (
	"time"
)

// User owns meal plans and workout plans.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	Weight        float64 `json:"weight,omitempty"` // kg
	Height        float64 `json:"height,omitempty"` // cm
	ActivityLevel string  `json:"activity_level,omitempty"`
	FitnessGoal   string  `json:"fitness_goal,omitempty"`

	TargetCalories int `json:"target_calories,omitempty"`
	TargetProtein  int `json:"target_protein,omitempty"` // grams
	TargetCarbs    int `json:"target_carbs,omitempty"`   // grams
	TargetFat      int `json:"target_fat,omitempty"`     // grams

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// MealPlan is a stored weekly nutrition plan. Meals are lifecycle-bound to
// their plan and removed with it.
type MealPlan struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"user,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Goal        string `json:"goal,omitempty"` // weight_loss, muscle_gain, maintenance, performance

	TotalCalories int `json:"total_calories,omitempty"`
	TotalProtein  int `json:"total_protein,omitempty"`
	TotalCarbs    int `json:"total_carbs,omitempty"`
	TotalFat      int `json:"total_fat,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Meals []Meal `gorm:"constraint:OnDelete:CASCADE;foreignKey:MealPlanID" json:"meals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MealPlan) TableName() string { return "meal_plans" }

// Meal is a single meal within a MealPlan.
type Meal struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MealPlanID int64 `gorm:"not null;index" json:"meal_plan_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MealType    string `json:"meal_type,omitempty"` // breakfast, lunch, dinner, snack

	Calories int `json:"calories,omitempty"`
	Protein  int `json:"protein,omitempty"` // grams
	Carbs    int `json:"carbs,omitempty"`   // grams
	Fat      int `json:"fat,omitempty"`     // grams
	Fiber    int `json:"fiber,omitempty"`   // grams

	Ingredients  string `json:"ingredients,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	PrepTime     string `json:"prep_time,omitempty"`
	CookTime     string `json:"cook_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Meal) TableName() string { return "meals" }

// WorkoutPlan is a stored training program. Workouts cascade with it.
type WorkoutPlan struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"user,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Goal        string `json:"goal,omitempty"`       // strength, cardio, flexibility, weight_loss, muscle_gain
	Difficulty  string `json:"difficulty,omitempty"` // beginner, intermediate, advanced

	DurationWeeks   int `json:"duration_weeks,omitempty"`
	WorkoutsPerWeek int `json:"workouts_per_week,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Workouts []Workout `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkoutPlanID" json:"workouts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkoutPlan) TableName() string { return "workout_plans" }

// Workout is a single session within a WorkoutPlan.
type Workout struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkoutPlanID int64 `gorm:"not null;index" json:"workout_plan_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WorkoutType string `json:"workout_type,omitempty"` // strength, cardio, flexibility, hiit, yoga

	DayOfWeek  int `json:"day_of_week,omitempty"` // 1-7 (Monday-Sunday)
	WeekNumber int `json:"week_number,omitempty"`

	EstimatedDuration string `json:"estimated_duration,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`

	Exercises []Exercise `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkoutID" json:"exercises,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Workout) TableName() string { return "workouts" }

// Exercise is a single movement within a Workout.
type Exercise struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkoutID int64 `gorm:"not null;index" json:"workout_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`     // strength, cardio, flexibility, bodyweight
	MuscleGroup string `json:"muscle_group,omitempty"` // chest, back, legs, shoulders, arms, core, full_body
	Equipment   string `json:"equipment,omitempty"`

	Sets     int `json:"sets,omitempty"`
	Reps     int `json:"reps,omitempty"`
	Duration int `json:"duration,omitempty"`  // seconds, for timed exercises
	RestTime int `json:"rest_time,omitempty"` // seconds

	Weight string `json:"weight,omitempty"` // e.g. "10kg", "bodyweight"
	Notes  string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exercise) TableName() string { return "exercises" }

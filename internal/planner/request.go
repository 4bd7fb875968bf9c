package planner

import (
	"strings"
)

// MealPlanRequest is the validated input for meal plan generation.
type MealPlanRequest struct {
	IdealCalories       int    `json:"idealCalories" binding:"required,gte=1200,lte=5000"`
	FavoriteFoods       string `json:"favoriteFoods" binding:"required"`
	NumberOfMeals       int    `json:"numberOfMeals" binding:"required,gte=2,lte=6"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Allergies           string `json:"allergies"`
}

// WorkoutPlanRequest is the validated input for workout plan generation.
type WorkoutPlanRequest struct {
	FitnessGoal        string `json:"fitnessGoal" binding:"required"`
	ExperienceLevel    string `json:"experienceLevel" binding:"required"`
	WorkoutsPerWeek    int    `json:"workoutsPerWeek" binding:"required,gte=2,lte=6"`
	WorkoutDuration    int    `json:"workoutDuration" binding:"required,gte=30,lte=120"`
	AvailableEquipment string `json:"availableEquipment"`
	Injuries           string `json:"injuries"`
	Preferences        string `json:"preferences"`
}

// FitnessGoal is the closed set of goals the planner reasons about. The
// client-facing field stays free text; it is mapped here on ingress and the
// raw text still flows into the prompts unchanged.
type FitnessGoal string

const (
	GoalStrength    FitnessGoal = "strength"
	GoalCardio      FitnessGoal = "cardio"
	GoalFlexibility FitnessGoal = "flexibility"
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalGeneral     FitnessGoal = "general_fitness"
)

// ParseFitnessGoal maps free-text goal input to a closed variant. Unrecognized
// input maps to GoalGeneral rather than being rejected.
func ParseFitnessGoal(s string) FitnessGoal {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	switch {
	case normalized == "strength" || strings.Contains(normalized, "strong"):
		return GoalStrength
	case normalized == "cardio" || strings.Contains(normalized, "endurance"):
		return GoalCardio
	case strings.Contains(normalized, "flex") || strings.Contains(normalized, "mobility"):
		return GoalFlexibility
	case strings.Contains(normalized, "weight_loss") || strings.Contains(normalized, "lose"):
		return GoalWeightLoss
	case strings.Contains(normalized, "muscle") || strings.Contains(normalized, "bulk") || strings.Contains(normalized, "hypertrophy"):
		return GoalMuscleGain
	default:
		return GoalGeneral
	}
}

// NutritionFocus returns the dietary emphasis matching the goal, used when
// the final stage asks the model for nutrition recommendations.
func (g FitnessGoal) NutritionFocus() string {
	switch g {
	case GoalStrength, GoalMuscleGain:
		return "caloric surplus with high protein intake"
	case GoalWeightLoss:
		return "moderate caloric deficit while preserving protein"
	case GoalCardio:
		return "carbohydrate timing around training sessions"
	case GoalFlexibility:
		return "balanced maintenance intake with hydration emphasis"
	default:
		return "balanced maintenance intake"
	}
}

// ExperienceLevel is the closed set of training experience levels.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// ParseExperienceLevel maps free-text experience input to a closed variant.
// Unrecognized input maps to LevelBeginner, the conservative default for
// exercise programming.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch normalized := strings.ToLower(strings.TrimSpace(s)); {
	case strings.Contains(normalized, "advanced") || strings.Contains(normalized, "expert"):
		return LevelAdvanced
	case strings.Contains(normalized, "intermediate"):
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

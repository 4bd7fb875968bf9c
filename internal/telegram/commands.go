package telegram

import (
	"errors"
	"strconv"
	"strings"

	"macrofit-backend/internal/planner"
)

var errBadCommand = errors.New("malformed command")

// parseMealPlanCommand parses "/mealplan <calories> <meals> <favorite foods...>".
func parseMealPlanCommand(text string) (planner.MealPlanRequest, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return planner.MealPlanRequest{}, errBadCommand
	}

	calories, err := strconv.Atoi(fields[1])
	if err != nil {
		return planner.MealPlanRequest{}, errBadCommand
	}
	meals, err := strconv.Atoi(fields[2])
	if err != nil {
		return planner.MealPlanRequest{}, errBadCommand
	}
	if calories < 1200 || calories > 5000 || meals < 2 || meals > 6 {
		return planner.MealPlanRequest{}, errBadCommand
	}

	return planner.MealPlanRequest{
		IdealCalories: calories,
		NumberOfMeals: meals,
		FavoriteFoods: strings.Join(fields[3:], " "),
	}, nil
}

// parseWorkoutCommand parses "/workout <goal> <level> <per-week> <minutes>".
func parseWorkoutCommand(text string) (planner.WorkoutPlanRequest, error) {
	fields := strings.Fields(text)
	if len(fields) < 5 {
		return planner.WorkoutPlanRequest{}, errBadCommand
	}

	perWeek, err := strconv.Atoi(fields[3])
	if err != nil {
		return planner.WorkoutPlanRequest{}, errBadCommand
	}
	duration, err := strconv.Atoi(fields[4])
	if err != nil {
		return planner.WorkoutPlanRequest{}, errBadCommand
	}
	if perWeek < 2 || perWeek > 6 || duration < 30 || duration > 120 {
		return planner.WorkoutPlanRequest{}, errBadCommand
	}

	return planner.WorkoutPlanRequest{
		FitnessGoal:     fields[1],
		ExperienceLevel: fields[2],
		WorkoutsPerWeek: perWeek,
		WorkoutDuration: duration,
	}, nil
}

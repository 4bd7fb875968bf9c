package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func validWorkoutRequest() WorkoutPlanRequest {
	return WorkoutPlanRequest{
		FitnessGoal:        "muscle_gain",
		ExperienceLevel:    "intermediate",
		WorkoutsPerWeek:    4,
		WorkoutDuration:    60,
		AvailableEquipment: "full_gym",
		Injuries:           "lower back",
		Preferences:        "no burpees",
	}
}

func TestGenerateWorkoutPlanChainsFourStages(t *testing.T) {
	gen := &fakeTextGen{
		responses: []string{"split-analysis", "weekly-structure", "routines", "final-plan"},
	}
	planner := newTestPlanner(gen)

	result, err := planner.GenerateWorkoutPlan(context.Background(), validWorkoutRequest())
	if err != nil {
		t.Fatalf("GenerateWorkoutPlan failed: %v", err)
	}

	if len(gen.calls) != 4 {
		t.Fatalf("Expected exactly 4 model calls, got %d", len(gen.calls))
	}
	if result != "final-plan" {
		t.Errorf("Expected final stage output verbatim, got %q", result)
	}

	if !strings.Contains(gen.calls[1].Prompt, "split-analysis") {
		t.Error("Structure prompt does not contain the analysis output")
	}
	if !strings.Contains(gen.calls[2].Prompt, "split-analysis") || !strings.Contains(gen.calls[2].Prompt, "weekly-structure") {
		t.Error("Detail prompt does not contain both analysis and structure outputs")
	}
	if !strings.Contains(gen.calls[3].Prompt, "routines") {
		t.Error("Final prompt does not contain the detailed routines")
	}

	// Workout-specific content is interpolated.
	if !strings.Contains(gen.calls[0].Prompt, "muscle_gain") {
		t.Error("Analysis prompt does not contain the fitness goal")
	}
	if !strings.Contains(gen.calls[0].Prompt, "60 minutes") {
		t.Error("Analysis prompt does not contain the workout duration")
	}
	if !strings.Contains(gen.calls[0].Prompt, "lower back") {
		t.Error("Analysis prompt does not contain the injuries")
	}
	if !strings.Contains(gen.calls[3].Prompt, `"workoutsPerWeek": 4`) {
		t.Error("Final prompt does not restate workouts per week")
	}
	if !strings.Contains(gen.calls[3].Prompt, `"experienceLevel": "intermediate"`) {
		t.Error("Final prompt does not restate the experience level")
	}
	if !strings.Contains(gen.calls[3].Prompt, "caloric surplus") {
		t.Error("Final prompt does not carry the goal-derived nutrition focus")
	}

	if !strings.Contains(gen.calls[0].System, "fitness trainer") {
		t.Errorf("Unexpected analysis system instruction: %q", gen.calls[0].System)
	}
}

func TestGenerateWorkoutPlanStageFailurePropagates(t *testing.T) {
	gen := &fakeTextGen{
		responses: []string{"split-analysis", "", "routines", "final-plan"},
		errs:      []error{nil, errors.New("timeout")},
	}
	planner := newTestPlanner(gen)

	result, err := planner.GenerateWorkoutPlan(context.Background(), validWorkoutRequest())
	if err != nil {
		t.Fatalf("Expected the workflow to survive a stage failure, got %v", err)
	}
	if len(gen.calls) != 4 {
		t.Fatalf("Expected 4 calls, got %d", len(gen.calls))
	}
	if !strings.Contains(gen.calls[2].Prompt, placeholderStructureFailed) {
		t.Error("Detail prompt does not carry the structure placeholder")
	}
	if result != "final-plan" {
		t.Errorf("Expected final output, got %q", result)
	}
}

func TestParseFitnessGoal(t *testing.T) {
	cases := []struct {
		in   string
		want FitnessGoal
	}{
		{"muscle_gain", GoalMuscleGain},
		{"Muscle Gain", GoalMuscleGain},
		{"hypertrophy", GoalMuscleGain},
		{"strength", GoalStrength},
		{"weight-loss", GoalWeightLoss},
		{"lose weight", GoalWeightLoss},
		{"cardio", GoalCardio},
		{"endurance running", GoalCardio},
		{"flexibility", GoalFlexibility},
		{"something unrecognized", GoalGeneral},
	}
	for _, tc := range cases {
		if got := ParseFitnessGoal(tc.in); got != tc.want {
			t.Errorf("ParseFitnessGoal(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseExperienceLevel(t *testing.T) {
	cases := []struct {
		in   string
		want ExperienceLevel
	}{
		{"beginner", LevelBeginner},
		{"Intermediate", LevelIntermediate},
		{"advanced lifter", LevelAdvanced},
		{"expert", LevelAdvanced},
		{"no idea", LevelBeginner},
	}
	for _, tc := range cases {
		if got := ParseExperienceLevel(tc.in); got != tc.want {
			t.Errorf("ParseExperienceLevel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

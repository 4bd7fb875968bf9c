package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"macrofit-backend/internal/llm"
	"macrofit-backend/internal/logger"
)

// fakeTextGen scripts one response (or error) per call and records every
// prompt it receives, in order.
type fakeTextGen struct {
	responses []string
	errs      []error
	calls     []recordedCall
}

type recordedCall struct {
	System string
	Prompt string
}

func (f *fakeTextGen) GenerateContent(ctx context.Context, system, prompt string) (llm.ContentResponse, error) {
	i := len(f.calls)
	f.calls = append(f.calls, recordedCall{System: system, Prompt: prompt})

	if i < len(f.errs) && f.errs[i] != nil {
		return llm.ContentResponse{}, f.errs[i]
	}
	if i < len(f.responses) {
		return llm.ContentResponse{Content: f.responses[i]}, nil
	}
	return llm.ContentResponse{Content: "unscripted"}, nil
}

func newTestPlanner(gen llm.TextGenerator) *Planner {
	return NewPlanner(gen, nil, logger.NewNop())
}

func validMealRequest() MealPlanRequest {
	return MealPlanRequest{
		IdealCalories:       2000,
		FavoriteFoods:       "chicken, rice, broccoli",
		NumberOfMeals:       3,
		DietaryRestrictions: "gluten_free",
		Allergies:           "peanuts",
	}
}

func TestGenerateMealPlanChainsFourStages(t *testing.T) {
	gen := &fakeTextGen{
		responses: []string{"analysis-out", "structure-out", "detail-out", "final-out"},
	}
	planner := newTestPlanner(gen)

	result, err := planner.GenerateMealPlan(context.Background(), validMealRequest())
	if err != nil {
		t.Fatalf("GenerateMealPlan failed: %v", err)
	}

	if len(gen.calls) != 4 {
		t.Fatalf("Expected exactly 4 model calls, got %d", len(gen.calls))
	}
	if result != "final-out" {
		t.Errorf("Expected final stage output to be returned verbatim, got %q", result)
	}

	// Stage N's prompt must embed stage N-1's output.
	if !strings.Contains(gen.calls[1].Prompt, "analysis-out") {
		t.Error("Structure prompt does not contain the analysis output")
	}
	if !strings.Contains(gen.calls[2].Prompt, "analysis-out") || !strings.Contains(gen.calls[2].Prompt, "structure-out") {
		t.Error("Detail prompt does not contain both analysis and structure outputs")
	}
	if !strings.Contains(gen.calls[3].Prompt, "detail-out") {
		t.Error("Final prompt does not contain the detailed plan output")
	}

	// Request fields are interpolated into the prompts.
	if !strings.Contains(gen.calls[0].Prompt, "2000") {
		t.Error("Analysis prompt does not contain the calorie target")
	}
	if !strings.Contains(gen.calls[0].Prompt, "chicken, rice, broccoli") {
		t.Error("Analysis prompt does not contain the favorite foods")
	}
	if !strings.Contains(gen.calls[0].Prompt, "gluten_free") {
		t.Error("Analysis prompt does not contain the dietary restrictions")
	}
	if !strings.Contains(gen.calls[3].Prompt, `"dailyCalories": 2000`) {
		t.Error("Final prompt does not restate the calorie target")
	}

	// Each stage carries its own system instruction.
	if !strings.Contains(gen.calls[0].System, "nutritionist") {
		t.Errorf("Unexpected analysis system instruction: %q", gen.calls[0].System)
	}
	if !strings.Contains(gen.calls[2].System, "chef") {
		t.Errorf("Unexpected detail system instruction: %q", gen.calls[2].System)
	}
}

func TestGenerateMealPlanOmitsEmptyOptionalFields(t *testing.T) {
	gen := &fakeTextGen{responses: []string{"a", "b", "c", "d"}}
	planner := newTestPlanner(gen)

	req := validMealRequest()
	req.DietaryRestrictions = ""
	req.Allergies = ""

	if _, err := planner.GenerateMealPlan(context.Background(), req); err != nil {
		t.Fatalf("GenerateMealPlan failed: %v", err)
	}
	if strings.Contains(gen.calls[0].Prompt, "Dietary restrictions") {
		t.Error("Analysis prompt mentions dietary restrictions although none were given")
	}
	if strings.Contains(gen.calls[0].Prompt, "Allergies") {
		t.Error("Analysis prompt mentions allergies although none were given")
	}
}

func TestGenerateMealPlanFirstStageFailurePropagates(t *testing.T) {
	gen := &fakeTextGen{
		responses: []string{"", "structure-out", "detail-out", "final-out"},
		errs:      []error{errors.New("provider unavailable")},
	}
	planner := newTestPlanner(gen)

	result, err := planner.GenerateMealPlan(context.Background(), validMealRequest())
	if err != nil {
		t.Fatalf("Expected the workflow to survive a stage failure, got %v", err)
	}

	if len(gen.calls) != 4 {
		t.Fatalf("Expected all 4 stages to run after a stage failure, got %d calls", len(gen.calls))
	}

	// The placeholder replaces the analysis output and contaminates every
	// downstream prompt.
	for i := 1; i < 4; i++ {
		if !strings.Contains(gen.calls[i].Prompt, placeholderAnalysisFailed) {
			t.Errorf("Stage %d prompt does not carry the analysis placeholder", i+1)
		}
	}
	if result != "final-out" {
		t.Errorf("Expected final output to be returned, got %q", result)
	}
}

func TestGenerateMealPlanAllStagesFail(t *testing.T) {
	failure := errors.New("provider down")
	gen := &fakeTextGen{
		errs: []error{failure, failure, failure, failure},
	}
	planner := newTestPlanner(gen)

	result, err := planner.GenerateMealPlan(context.Background(), validMealRequest())
	if err != nil {
		t.Fatalf("Expected no workflow-level error, got %v", err)
	}
	if len(gen.calls) != 4 {
		t.Fatalf("Expected 4 calls even when every stage fails, got %d", len(gen.calls))
	}
	if result != placeholderFinalFailed {
		t.Errorf("Expected the final placeholder as result, got %q", result)
	}
}

package planner

import (
	"context"
	_ "embed"
)

//go:embed meal_analysis_prompt.md
var mealAnalysisPrompt string

//go:embed meal_structure_prompt.md
var mealStructurePrompt string

//go:embed meal_detail_prompt.md
var mealDetailPrompt string

//go:embed meal_final_prompt.md
var mealFinalPrompt string

// Stage names recorded in the metrics store.
const (
	StageMealAnalysis  = "meal_analysis"
	StageMealStructure = "meal_structure"
	StageMealDetail    = "meal_detail"
	StageMealFinal     = "meal_final"
)

const (
	systemMealAnalysis  = "You are a professional nutritionist. Provide detailed, accurate analysis."
	systemMealStructure = "You are a meal planning expert. Create structured, balanced meal plans."
	systemMealDetail    = "You are a professional chef and nutritionist. Create detailed, practical recipes."
	systemMealFinal     = "You are a meal planning expert. Create comprehensive, user-friendly meal plans."
)

// Placeholder outputs substituted for a stage whose model call failed. The
// analysis, structure and final placeholders are shared between the meal and
// workout workflows.
const (
	placeholderAnalysisFailed   = `{"error": "Analysis failed"}`
	placeholderStructureFailed  = `{"error": "Structure generation failed"}`
	placeholderMealDetailFailed = `{"error": "Detailed plan generation failed"}`
	placeholderFinalFailed      = `{"error": "Final plan generation failed"}`
)

type mealStructureData struct {
	Request  MealPlanRequest
	Analysis string
}

type mealDetailData struct {
	Request   MealPlanRequest
	Analysis  string
	Structure string
}

type mealFinalData struct {
	Request  MealPlanRequest
	Detailed string
}

// GenerateMealPlan produces the final plan text by chaining four model calls:
// requirements analysis, weekly structure, detailed recipes, and the final
// deliverable with shopping list and prep tips. The returned text is the last
// stage's output verbatim; it is not parsed or validated server-side.
func (p *Planner) GenerateMealPlan(ctx context.Context, req MealPlanRequest) (string, error) {
	p.log.Info("generating meal plan",
		"calories", req.IdealCalories,
		"meals", req.NumberOfMeals,
	)

	prompt, err := buildPrompt(StageMealAnalysis, mealAnalysisPrompt, req)
	if err != nil {
		return "", err
	}
	analysis := p.runStage(ctx, StageMealAnalysis, systemMealAnalysis, prompt, placeholderAnalysisFailed)

	prompt, err = buildPrompt(StageMealStructure, mealStructurePrompt, mealStructureData{Request: req, Analysis: analysis})
	if err != nil {
		return "", err
	}
	structure := p.runStage(ctx, StageMealStructure, systemMealStructure, prompt, placeholderStructureFailed)

	prompt, err = buildPrompt(StageMealDetail, mealDetailPrompt, mealDetailData{Request: req, Analysis: analysis, Structure: structure})
	if err != nil {
		return "", err
	}
	detailed := p.runStage(ctx, StageMealDetail, systemMealDetail, prompt, placeholderMealDetailFailed)

	prompt, err = buildPrompt(StageMealFinal, mealFinalPrompt, mealFinalData{Request: req, Detailed: detailed})
	if err != nil {
		return "", err
	}
	final := p.runStage(ctx, StageMealFinal, systemMealFinal, prompt, placeholderFinalFailed)

	p.log.Info("successfully generated meal plan")
	return final, nil
}

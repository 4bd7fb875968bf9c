package planner

import (
	"context"
	_ "embed"
)

//go:embed workout_analysis_prompt.md
var workoutAnalysisPrompt string

//go:embed workout_structure_prompt.md
var workoutStructurePrompt string

//go:embed workout_detail_prompt.md
var workoutDetailPrompt string

//go:embed workout_final_prompt.md
var workoutFinalPrompt string

const (
	StageWorkoutAnalysis  = "workout_analysis"
	StageWorkoutStructure = "workout_structure"
	StageWorkoutDetail    = "workout_detail"
	StageWorkoutFinal     = "workout_final"
)

const (
	systemWorkoutAnalysis  = "You are a professional fitness trainer and exercise physiologist. Provide detailed, accurate analysis."
	systemWorkoutStructure = "You are a workout programming expert. Create structured, balanced workout plans."
	systemWorkoutDetail    = "You are a professional personal trainer and exercise specialist. Create detailed, practical workout routines."
	systemWorkoutFinal     = "You are a comprehensive fitness coach. Create complete, user-friendly workout plans."
)

const (
	placeholderRoutineDetailFailed = `{"error": "Detailed routine generation failed"}`
)

type workoutStructureData struct {
	Request  WorkoutPlanRequest
	Analysis string
}

type workoutDetailData struct {
	Request   WorkoutPlanRequest
	Analysis  string
	Structure string
}

type workoutFinalData struct {
	Request        WorkoutPlanRequest
	Detailed       string
	NutritionFocus string
}

// GenerateWorkoutPlan produces the final plan text by chaining four model
// calls: fitness profile analysis, workout split structure, detailed
// routines, and the final deliverable with progression schedule, nutrition
// and recovery guidance.
func (p *Planner) GenerateWorkoutPlan(ctx context.Context, req WorkoutPlanRequest) (string, error) {
	goal := ParseFitnessGoal(req.FitnessGoal)
	level := ParseExperienceLevel(req.ExperienceLevel)

	p.log.Info("generating workout plan",
		"goal", string(goal),
		"level", string(level),
		"workouts_per_week", req.WorkoutsPerWeek,
	)

	prompt, err := buildPrompt(StageWorkoutAnalysis, workoutAnalysisPrompt, req)
	if err != nil {
		return "", err
	}
	analysis := p.runStage(ctx, StageWorkoutAnalysis, systemWorkoutAnalysis, prompt, placeholderAnalysisFailed)

	prompt, err = buildPrompt(StageWorkoutStructure, workoutStructurePrompt, workoutStructureData{Request: req, Analysis: analysis})
	if err != nil {
		return "", err
	}
	structure := p.runStage(ctx, StageWorkoutStructure, systemWorkoutStructure, prompt, placeholderStructureFailed)

	prompt, err = buildPrompt(StageWorkoutDetail, workoutDetailPrompt, workoutDetailData{Request: req, Analysis: analysis, Structure: structure})
	if err != nil {
		return "", err
	}
	detailed := p.runStage(ctx, StageWorkoutDetail, systemWorkoutDetail, prompt, placeholderRoutineDetailFailed)

	prompt, err = buildPrompt(StageWorkoutFinal, workoutFinalPrompt, workoutFinalData{
		Request:        req,
		Detailed:       detailed,
		NutritionFocus: goal.NutritionFocus(),
	})
	if err != nil {
		return "", err
	}
	final := p.runStage(ctx, StageWorkoutFinal, systemWorkoutFinal, prompt, placeholderFinalFailed)

	p.log.Info("successfully generated workout plan")
	return final, nil
}

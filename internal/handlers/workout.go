package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/planner"
)

// WorkoutPlanGenerator runs the workout plan workflow for a validated request.
type WorkoutPlanGenerator interface {
	GenerateWorkoutPlan(ctx context.Context, req planner.WorkoutPlanRequest) (string, error)
}

type WorkoutHandler struct {
	gen WorkoutPlanGenerator
	log *logger.Logger
}

func NewWorkoutHandler(gen WorkoutPlanGenerator, log *logger.Logger) *WorkoutHandler {
	return &WorkoutHandler{gen: gen, log: log}
}

func (h *WorkoutHandler) Generate(c *gin.Context) {
	var req planner.WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	result, err := h.gen.GenerateWorkoutPlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("workout plan generation failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate workout plan. Please try again.")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
}

func (h *WorkoutHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Workout Service is running!")
}

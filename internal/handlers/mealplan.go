package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/planner"
)

// MealPlanGenerator runs the meal plan workflow for a validated request.
type MealPlanGenerator interface {
	GenerateMealPlan(ctx context.Context, req planner.MealPlanRequest) (string, error)
}

type MealPlanHandler struct {
	gen MealPlanGenerator
	log *logger.Logger
}

func NewMealPlanHandler(gen MealPlanGenerator, log *logger.Logger) *MealPlanHandler {
	return &MealPlanHandler{gen: gen, log: log}
}

// Generate validates the request, runs the workflow and returns the model's
// final output as the response body. The output is already JSON-shaped text
// from the model, so it is written through without re-encoding.
func (h *MealPlanHandler) Generate(c *gin.Context) {
	var req planner.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	result, err := h.gen.GenerateMealPlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("meal plan generation failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate meal plan. Please try again.")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
}

func (h *MealPlanHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Meal Plan Service is running!")
}

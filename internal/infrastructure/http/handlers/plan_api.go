package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/infrastructure/http/middleware"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	apperrors "github.com/lutongbahay/v2/pkg/errors"
)

// PlanHandlers serves the meal plan endpoints
type PlanHandlers struct {
	plans  inbound.PlanService
	logger *zap.Logger
}

// NewPlanHandlers creates plan API handlers
func NewPlanHandlers(plans inbound.PlanService, logger *zap.Logger) *PlanHandlers {
	return &PlanHandlers{
		plans:  plans,
		logger: logger.Named("plan-api"),
	}
}

type generatePlanRequest struct {
	Budget    float64 `json:"budget" binding:"required"`
	StartDate string  `json:"start_date"`
	Days      int     `json:"days"`
}

// GeneratePlan handles POST /v1/plans/generate
func (h *PlanHandlers) GeneratePlan(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			respondError(c, apperrors.NewBadRequestError("start_date must be YYYY-MM-DD"))
			return
		}
		startDate = parsed
	}

	plan, err := h.plans.GeneratePlan(c.Request.Context(), middleware.CallerFrom(c), inbound.GeneratePlanCommand{
		Budget:    req.Budget,
		StartDate: startDate,
		Days:      req.Days,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

type savePlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}

// SavePlan handles POST /v1/plans: commit the whole preview
func (h *PlanHandlers) SavePlan(c *gin.Context) {
	var req savePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.plans.SavePlan(c.Request.Context(), middleware.CallerFrom(c), req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

type saveSelectedDaysRequest struct {
	PlanID     uuid.UUID `json:"plan_id" binding:"required"`
	DayIndices []int     `json:"day_indices" binding:"required"`
}

// SaveSelectedDays handles POST /v1/plans/selected-days
func (h *PlanHandlers) SaveSelectedDays(c *gin.Context) {
	var req saveSelectedDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.plans.SaveSelectedDays(c.Request.Context(), middleware.CallerFrom(c), inbound.SaveSelectedDaysCommand{
		PlanID:     req.PlanID,
		DayIndices: req.DayIndices,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans handles GET /v1/plans
func (h *PlanHandlers) ListPlans(c *gin.Context) {
	list, err := h.plans.ListPlans(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetPlan handles GET /v1/plans/:id
func (h *PlanHandlers) GetPlan(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), middleware.CallerFrom(c), planID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /v1/plans/:id
func (h *PlanHandlers) DeletePlan(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.plans.DeletePlan(c.Request.Context(), middleware.CallerFrom(c), planID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type addMealRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	MealType string    `json:"meal_type" binding:"required"`
}

// AddMeal handles POST /v1/plans/:id/meals
func (h *PlanHandlers) AddMeal(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("date must be YYYY-MM-DD"))
		return
	}

	plan, err := h.plans.AddMeal(c.Request.Context(), middleware.CallerFrom(c), inbound.AddMealCommand{
		PlanID:   planID,
		RecipeID: req.RecipeID,
		Date:     date,
		MealType: mealplan.MealType(req.MealType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// RemoveMeal handles DELETE /v1/plans/:id/meals/:mealID
func (h *PlanHandlers) RemoveMeal(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	mealID, ok := pathUUID(c, "mealID")
	if !ok {
		return
	}

	plan, err := h.plans.RemoveMeal(c.Request.Context(), middleware.CallerFrom(c), planID, mealID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

type updateMealRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

// UpdateMeal handles PATCH /v1/plans/:id/meals/:mealID
func (h *PlanHandlers) UpdateMeal(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	mealID, ok := pathUUID(c, "mealID")
	if !ok {
		return
	}

	var req updateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.plans.UpdateMeal(c.Request.Context(), middleware.CallerFrom(c), inbound.UpdateMealCommand{
		PlanID:   planID,
		MealID:   mealID,
		RecipeID: req.RecipeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

type swapMealsRequest struct {
	MealIDA uuid.UUID `json:"meal_id_a" binding:"required"`
	MealIDB uuid.UUID `json:"meal_id_b" binding:"required"`
}

// SwapMeals handles POST /v1/plans/:id/meals/swap
func (h *PlanHandlers) SwapMeals(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req swapMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.plans.SwapMeals(c.Request.Context(), middleware.CallerFrom(c), inbound.SwapMealsCommand{
		PlanID:  planID,
		MealIDA: req.MealIDA,
		MealIDB: req.MealIDB,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

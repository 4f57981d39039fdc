package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/infrastructure/http/middleware"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	apperrors "github.com/lutongbahay/v2/pkg/errors"
)

// SessionHandlers serves the guest session endpoints: quota, saved
// recipes, and leftover-ingredient notes.
type SessionHandlers struct {
	sessions inbound.SessionService
	logger   *zap.Logger
}

// NewSessionHandlers creates session API handlers
func NewSessionHandlers(sessions inbound.SessionService, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{
		sessions: sessions,
		logger:   logger.Named("session-api"),
	}
}

// GetQuota handles GET /v1/session/quota
func (h *SessionHandlers) GetQuota(c *gin.Context) {
	quota, err := h.sessions.GetQuota(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quota)
}

// SaveRecipe handles POST /v1/session/recipes/:id
func (h *SessionHandlers) SaveRecipe(c *gin.Context) {
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.sessions.SaveRecipe(c.Request.Context(), middleware.CallerFrom(c), recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnsaveRecipe handles DELETE /v1/session/recipes/:id
func (h *SessionHandlers) UnsaveRecipe(c *gin.Context) {
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.sessions.UnsaveRecipe(c.Request.Context(), middleware.CallerFrom(c), recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSavedRecipes handles GET /v1/session/recipes
func (h *SessionHandlers) ListSavedRecipes(c *gin.Context) {
	list, err := h.sessions.ListSavedRecipes(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": list})
}

type addIngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// AddIngredient handles POST /v1/session/ingredients
func (h *SessionHandlers) AddIngredient(c *gin.Context) {
	var req addIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	entry, err := h.sessions.AddIngredient(c.Request.Context(), middleware.CallerFrom(c), inbound.AddIngredientCommand{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RemoveIngredient handles DELETE /v1/session/ingredients/:id
func (h *SessionHandlers) RemoveIngredient(c *gin.Context) {
	ingredientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.sessions.RemoveIngredient(c.Request.Context(), middleware.CallerFrom(c), ingredientID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListIngredients handles GET /v1/session/ingredients
func (h *SessionHandlers) ListIngredients(c *gin.Context) {
	list, err := h.sessions.ListIngredients(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": list})
}

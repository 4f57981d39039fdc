package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/infrastructure/http/middleware"
	"github.com/lutongbahay/v2/internal/ports/inbound"
)

// RecipeHandlers serves the read-only catalog endpoints
type RecipeHandlers struct {
	recipes inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandlers creates recipe API handlers
func NewRecipeHandlers(recipes inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipes: recipes,
		logger:  logger.Named("recipe-api"),
	}
}

// ListRecipes handles GET /v1/recipes
func (h *RecipeHandlers) ListRecipes(c *gin.Context) {
	list, err := h.recipes.ListRecipes(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": list})
}

// GetRecipe handles GET /v1/recipes/:id
func (h *RecipeHandlers) GetRecipe(c *gin.Context) {
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

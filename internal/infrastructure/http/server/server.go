// Package server provides the HTTP server for the planning API
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/infrastructure/config"
	"github.com/lutongbahay/v2/internal/infrastructure/http/handlers"
	"github.com/lutongbahay/v2/internal/infrastructure/http/middleware"
	"github.com/lutongbahay/v2/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	engine *gin.Engine
	server *http.Server

	planService    inbound.PlanService
	recipeService  inbound.RecipeService
	sessionService inbound.SessionService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	planService inbound.PlanService,
	recipeService inbound.RecipeService,
	sessionService inbound.SessionService,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:         cfg,
		logger:         logger,
		planService:    planService,
		recipeService:  recipeService,
		sessionService: sessionService,
	}

	s.engine = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.engine,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the gin engine with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(s.logger))
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(middleware.Identify(s.config.Auth.JWTSecret, s.logger))

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/v1")
	s.setupPlanRoutes(v1)
	s.setupRecipeRoutes(v1)
	s.setupSessionRoutes(v1)

	return r
}

// setupPlanRoutes configures the meal plan endpoints
func (s *Server) setupPlanRoutes(r *gin.RouterGroup) {
	h := handlers.NewPlanHandlers(s.planService, s.logger)

	plans := r.Group("/plans")
	{
		plans.POST("/generate", h.GeneratePlan)
		plans.POST("", h.SavePlan)
		plans.POST("/selected-days", h.SaveSelectedDays)
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
		plans.DELETE("/:id", h.DeletePlan)

		plans.POST("/:id/meals", h.AddMeal)
		plans.POST("/:id/meals/swap", h.SwapMeals)
		plans.PATCH("/:id/meals/:mealID", h.UpdateMeal)
		plans.DELETE("/:id/meals/:mealID", h.RemoveMeal)
	}
}

// setupRecipeRoutes configures the catalog endpoints
func (s *Server) setupRecipeRoutes(r *gin.RouterGroup) {
	h := handlers.NewRecipeHandlers(s.recipeService, s.logger)

	recipes := r.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// setupSessionRoutes configures the guest session endpoints
func (s *Server) setupSessionRoutes(r *gin.RouterGroup) {
	h := handlers.NewSessionHandlers(s.sessionService, s.logger)

	sess := r.Group("/session")
	{
		sess.GET("/quota", h.GetQuota)
		sess.GET("/recipes", h.ListSavedRecipes)
		sess.POST("/recipes/:id", h.SaveRecipe)
		sess.DELETE("/recipes/:id", h.UnsaveRecipe)
		sess.GET("/ingredients", h.ListIngredients)
		sess.POST("/ingredients", h.AddIngredient)
		sess.DELETE("/ingredients/:id", h.RemoveIngredient)
	}
}

// handleHealth reports liveness
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

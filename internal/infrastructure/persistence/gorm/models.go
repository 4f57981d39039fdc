// Package gorm provides GORM model definitions and repository
// implementations for the durable plan store.
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null;index"`
	Description string    `gorm:"type:text"`

	Servings           int     `gorm:"default:1"`
	CookingTimeMinutes int     `gorm:"column:cooking_time_minutes;default:0"`
	CostPerServing     float64 `gorm:"column:cost_per_serving;default:0"`
	ImageURL           string  `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Ingredients []IngredientModel `gorm:"foreignKey:RecipeID"`
}

// IngredientModel represents one priced ingredient line of a recipe
type IngredientModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Quantity     string    `gorm:"type:varchar(50)"`
	Unit         string    `gorm:"type:varchar(50)"`
	Price        float64   `gorm:"default:0"`
	PricePerUnit *float64
	Notes        string `gorm:"type:text"`
}

// MealPlanModel represents the GORM model for saved meal plans
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Budget    float64   `gorm:"default:0"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Relationships
	Meals []MealModel `gorm:"foreignKey:MealPlanID"`
}

// MealModel represents one slot assignment inside a saved plan
type MealModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	MealPlanID uuid.UUID `gorm:"type:char(36);not null;index"`
	RecipeID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Date       time.Time `gorm:"not null"`
	MealType   string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time

	// Relationships
	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealModel
func (m *MealModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (RecipeModel) TableName() string {
	return "recipes"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (MealModel) TableName() string {
	return "meals"
}

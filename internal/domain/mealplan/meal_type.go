package mealplan

// MealType identifies one of the three daily meal slots.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
)

// MealTypes returns the slot types in display order.
func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}
}

// MealsPerDay is the number of slots in a plan day.
const MealsPerDay = 3

// IsValid reports whether the value is a known meal type
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// order gives the within-day sort position of the type
func (t MealType) order() int {
	switch t {
	case MealTypeBreakfast:
		return 0
	case MealTypeLunch:
		return 1
	case MealTypeDinner:
		return 2
	default:
		return 3
	}
}

package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	apperrors "github.com/lutongbahay/v2/pkg/errors"
)

type fakeCatalog struct {
	recipes []*recipe.Recipe
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCatalog) List(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	if limit > 0 && limit < len(f.recipes) {
		return f.recipes[:limit], nil
	}
	return f.recipes, nil
}

func testRecipe(name string) *recipe.Recipe {
	id := uuid.New()
	return recipe.Reconstitute(id, name, "", 4, 25*time.Minute, 30, "",
		[]recipe.Ingredient{{ID: uuid.New(), RecipeID: id, Name: name, Price: 80}}, time.Now())
}

func TestListRecipesCapsGuestCallers(t *testing.T) {
	catalog := &fakeCatalog{recipes: []*recipe.Recipe{
		testRecipe("A"), testRecipe("B"), testRecipe("C"),
	}}
	svc := NewRecipeService(catalog, 2, zap.NewNop())

	guestList, err := svc.ListRecipes(context.Background(), inbound.Caller{SessionID: "guest_x"})
	require.NoError(t, err)
	assert.Len(t, guestList, 2)

	userList, err := svc.ListRecipes(context.Background(), inbound.Caller{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Len(t, userList, 3)
}

func TestListRecipesIncludesCostBases(t *testing.T) {
	r := testRecipe("Adobo")
	svc := NewRecipeService(&fakeCatalog{recipes: []*recipe.Recipe{r}}, 0, zap.NewNop())

	list, err := svc.ListRecipes(context.Background(), inbound.Caller{UserID: uuid.New()})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 30.0, list[0].CostPerServing)
	assert.Equal(t, 80.0, list[0].TotalCost)
	assert.Len(t, list[0].Ingredients, 1)
}

func TestGetRecipe(t *testing.T) {
	r := testRecipe("Sinigang")
	svc := NewRecipeService(&fakeCatalog{recipes: []*recipe.Recipe{r}}, 0, zap.NewNop())

	dto, err := svc.GetRecipe(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, "Sinigang", dto.Name)

	_, err = svc.GetRecipe(context.Background(), uuid.New())
	assert.True(t, apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/google/uuid"
)

const ConfirmDeleteRecipe = "Are you sure you want to delete this recipe?"

// RecipeTable is the admin recipe manager.
type RecipeTable struct {
	page
}

func NewRecipeTable(deps Deps) *RecipeTable {
	return &RecipeTable{page{deps: deps, path: AdminRecipesPagePath}}
}

func (t *RecipeTable) Open(ctx context.Context) error {
	if err := t.attach(ctx); err != nil {
		return err
	}
	return t.Load(ctx)
}

func (t *RecipeTable) Load(ctx context.Context) error {
	recipes, err := t.deps.Client.ListRecipes(ctx)
	if err != nil {
		t.deps.logger().Error(t.scope(ctx), "error fetching recipes", "error", err)
		return fmt.Errorf("load recipes: %w", err)
	}
	t.show(view.AdminRecipes(recipes, t.deps.Location))
	return nil
}

func (t *RecipeTable) Delete(ctx context.Context, id uuid.UUID) error {
	if !t.confirmed(ConfirmDeleteRecipe) {
		return nil
	}
	if err := t.deps.Client.DeleteRecipe(ctx, id, t.token()); err != nil {
		t.deps.logger().Error(t.scope(ctx), "error deleting recipe", "id", id, "error", err)
		return fmt.Errorf("delete recipe: %w", err)
	}
	return t.Load(ctx)
}

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Recipe is a row of the admin recipe table.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	CreatedDate Timestamp `json:"createdDate"`
}

// DetailPath is the site path of the recipe's detail page.
func (r Recipe) DetailPath() string {
	return RecipePagePath(r.ID)
}

// RecipePagePath is the site path of a recipe detail page.
func RecipePagePath(id uuid.UUID) string {
	return fmt.Sprintf("/recipes/%s", id)
}

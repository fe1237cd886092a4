package client

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/google/uuid"
)

// Client is the backend REST contract the admin pages depend on.
//
// List methods return an empty, non-nil slice when the backend answers
// 204 No Content. Mutating methods take the anti-forgery token of the
// page the action was issued from.
type Client interface {
	Close() error

	Login(ctx context.Context, username string, password []byte) error
	FetchPage(ctx context.Context, path string) (*models.PageContext, error)

	ListAllComments(ctx context.Context) ([]models.Comment, error)
	DeleteAdminComment(ctx context.Context, id uuid.UUID, token models.CSRFToken) error

	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID, token models.CSRFToken) error

	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool, token models.CSRFToken) error
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string, token models.CSRFToken) error

	Total(ctx context.Context, counter models.Counter) (int64, error)

	ListRecipeComments(ctx context.Context, recipeID uuid.UUID) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID, token models.CSRFToken) error
}

package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/google/uuid"
)

// ConfirmDeleteComment is asked before a comment is deleted.
const ConfirmDeleteComment = "Are you sure you want to delete this comment?"

// CommentSection is the comment widget of one recipe detail page.
type CommentSection struct {
	page
	recipeID uuid.UUID
	viewer   string
	owner    string
}

// NewCommentSection returns the widget for recipeID. Viewer and owner are
// unknown until Open reads them from the recipe page.
func NewCommentSection(deps Deps, recipeID uuid.UUID) *CommentSection {
	return &CommentSection{
		page:     page{deps: deps, path: models.RecipePagePath(recipeID)},
		recipeID: recipeID,
	}
}

// Open reads the viewer, the recipe owner and the anti-forgery token from
// the recipe page, then loads the comments.
func (s *CommentSection) Open(ctx context.Context) error {
	if err := s.attach(ctx); err != nil {
		return err
	}
	s.viewer = s.host.Field(models.FieldViewer)
	s.owner = s.host.Field(models.FieldRecipeOwner)
	return s.Load(ctx)
}

// Viewer is the logged-in user as the recipe page reported it.
func (s *CommentSection) Viewer() string { return s.viewer }

// Owner is the author of the recipe.
func (s *CommentSection) Owner() string { return s.owner }

// Load fetches the comments of the recipe and shows them.
func (s *CommentSection) Load(ctx context.Context) error {
	comments, err := s.deps.Client.ListRecipeComments(ctx, s.recipeID)
	if err != nil {
		s.deps.logger().Error(s.scope(ctx), "error fetching comments", "recipe", s.recipeID, "error", err)
		return fmt.Errorf("load comments: %w", err)
	}
	s.show(view.CommentList(comments, s.viewer, s.owner, s.deps.Location))
	return nil
}

// RequestDelete deletes a comment after confirmation and reloads the list.
func (s *CommentSection) RequestDelete(ctx context.Context, id uuid.UUID) error {
	if !s.confirmed(ConfirmDeleteComment) {
		return nil
	}
	if err := s.deps.Client.DeleteComment(ctx, id, s.token()); err != nil {
		s.deps.logger().Error(s.scope(ctx), "error deleting comment", "id", id, "error", err)
		return fmt.Errorf("delete comment: %w", err)
	}
	return s.Load(ctx)
}

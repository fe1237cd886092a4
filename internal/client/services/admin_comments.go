package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/google/uuid"
)

// CommentTable is the site-wide comment manager.
type CommentTable struct {
	page
}

func NewCommentTable(deps Deps) *CommentTable {
	return &CommentTable{page{deps: deps, path: AdminCommentsPagePath}}
}

// Open reads the anti-forgery token from the admin page and loads the table.
func (t *CommentTable) Open(ctx context.Context) error {
	if err := t.attach(ctx); err != nil {
		return err
	}
	return t.Load(ctx)
}

func (t *CommentTable) Load(ctx context.Context) error {
	comments, err := t.deps.Client.ListAllComments(ctx)
	if err != nil {
		t.deps.logger().Error(t.scope(ctx), "error fetching comments", "error", err)
		return fmt.Errorf("load comments: %w", err)
	}
	t.show(view.AdminComments(comments, t.deps.Location))
	return nil
}

func (t *CommentTable) Delete(ctx context.Context, id uuid.UUID) error {
	if !t.confirmed(ConfirmDeleteComment) {
		return nil
	}
	if err := t.deps.Client.DeleteAdminComment(ctx, id, t.token()); err != nil {
		t.deps.logger().Error(t.scope(ctx), "error deleting comment", "id", id, "error", err)
		return fmt.Errorf("delete comment: %w", err)
	}
	return t.Load(ctx)
}

package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// Host pages the controllers read their anti-forgery token from.
const (
	DashboardPagePath     = "/admin"
	AdminCommentsPagePath = "/admin/comments"
	AdminRecipesPagePath  = "/admin/recipes"
	AdminUsersPagePath    = "/admin/users"
)

// page is the state shared by all controllers: the host page context and
// the view that is currently on screen.
type page struct {
	deps    Deps
	path    string
	host    *models.PageContext
	current *view.Node
}

// attach fetches the host page and keeps its context for later mutations.
func (p *page) attach(ctx context.Context) error {
	pc, err := p.deps.Client.FetchPage(ctx, p.path)
	if err != nil {
		p.deps.logger().Error(p.scope(ctx), "error opening page", "error", err)
		return fmt.Errorf("open %s: %w", p.path, err)
	}
	p.host = pc
	return nil
}

// scope tags entries logged with the returned context with the host page.
func (p *page) scope(ctx context.Context) context.Context {
	return logging.ContextWith(ctx, "page", p.path)
}

func (p *page) token() models.CSRFToken {
	if p.host == nil {
		return models.CSRFToken{}
	}
	return p.host.CSRF
}

func (p *page) show(n *view.Node) {
	p.current = n
	if p.deps.Display != nil {
		p.deps.Display.Show(n)
	}
}

// Current returns the view that was last shown, nil before the first
// successful load.
func (p *page) Current() *view.Node {
	return p.current
}

// confirmed asks msg and reports the answer. Without a Confirmer nothing is
// ever confirmed.
func (p *page) confirmed(msg string) bool {
	return p.deps.Confirm != nil && p.deps.Confirm.Confirm(msg)
}

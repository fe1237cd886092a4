package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
	"github.com/dmitrijs2005/recipeadmin/internal/client/upload"
	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/google/uuid"
)

var (
	errUsage     = errors.New("usage")
	errNotLoaded = errors.New("not loaded")
)

func usage(text string) error {
	printlnFn("Usage:", text)
	return errUsage
}

func parseID(args []string, text string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, usage(text)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return uuid.Nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	return id, nil
}

// opener is a page that reads its host page before the first load.
type opener interface {
	Open(ctx context.Context) error
}

// ensureOpen opens p once so its mutations carry the page's token.
func ensureOpen(ctx context.Context, p opener, loaded bool) error {
	if loaded {
		return nil
	}
	return p.Open(ctx)
}

func (a *App) Login(ctx context.Context, args []string) error {
	userName := a.config.Username
	if len(args) > 0 {
		userName = args[0]
	}

	var err error
	if userName == "" {
		userName, err = GetSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, password); err != nil {
		a.log.Error(ctx, "login failed", "user", userName, "error", err)
		printlnFn("Login unsuccessful:", err.Error())
		return err
	}

	a.userName = userName
	a.log.Info(ctx, "logged in", "user", userName)
	printlnFn("Login successful")
	return nil
}

func (a *App) Comments(ctx context.Context, args []string) error {
	id, err := parseID(args, "comments <recipeId>")
	if err != nil {
		return err
	}
	section := services.NewCommentSection(a.deps, id)
	if err := section.Open(ctx); err != nil {
		return err
	}
	a.section = section
	return nil
}

func (a *App) DeleteComment(ctx context.Context, args []string) error {
	id, err := parseID(args, "delcomment <commentId>")
	if err != nil {
		return err
	}
	if a.section == nil {
		printlnFn("Open a recipe first: comments <recipeId>")
		return errNotLoaded
	}
	return a.section.RequestDelete(ctx, id)
}

func (a *App) AdminComments(ctx context.Context, _ []string) error {
	return a.comments.Open(ctx)
}

func (a *App) AdminDeleteComment(ctx context.Context, args []string) error {
	id, err := parseID(args, "admin-delcomment <commentId>")
	if err != nil {
		return err
	}
	if err := ensureOpen(ctx, a.comments, a.comments.Current() != nil); err != nil {
		return err
	}
	return a.comments.Delete(ctx, id)
}

func (a *App) Recipes(ctx context.Context, _ []string) error {
	return a.recipes.Open(ctx)
}

func (a *App) DeleteRecipe(ctx context.Context, args []string) error {
	id, err := parseID(args, "delrecipe <recipeId>")
	if err != nil {
		return err
	}
	if err := ensureOpen(ctx, a.recipes, a.recipes.Current() != nil); err != nil {
		return err
	}
	return a.recipes.Delete(ctx, id)
}

func (a *App) Users(ctx context.Context, _ []string) error {
	return a.users.Open(ctx)
}

func (a *App) ToggleStatus(ctx context.Context, args []string) error {
	id, err := parseID(args, "togglestatus <userId>")
	if err != nil {
		return err
	}
	u, ok := a.users.Lookup(id)
	if !ok {
		printlnFn("Unknown user, list them first: users")
		return errNotLoaded
	}
	return a.users.ToggleStatus(ctx, id, u.Active)
}

func (a *App) SetRole(ctx context.Context, args []string) error {
	id, err := parseID(args, "setrole <userId>")
	if err != nil {
		return err
	}
	if err := ensureOpen(ctx, a.users, a.users.Current() != nil); err != nil {
		return err
	}
	return a.users.UpdateRole(ctx, id)
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	return a.dashboard.Load(ctx)
}

func (a *App) CheckFile(_ context.Context, args []string) error {
	if len(args) != 2 {
		return usage("checkfile <profile|recipe> <path>")
	}
	g, ok := a.guards[args[0]]
	if !ok {
		return usage("checkfile <profile|recipe> <path>")
	}

	err := g.CheckFile(args[1])
	switch {
	case err == nil:
		printlnFn(fmt.Sprintf("Selected %s for %s upload", g.Selected(), g.Name))
	case errors.Is(err, upload.ErrTooLarge):
		// the guard has alerted already
	default:
		printlnFn("Cannot check file:", err.Error())
	}
	return err
}

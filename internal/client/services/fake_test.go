package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/google/uuid"
)

// fakeClient implements client.Client and records every call by name.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	page    *models.PageContext
	pageErr error

	comments    []models.Comment
	commentsErr error
	recipes     []models.Recipe
	recipesErr  error
	users       []models.User
	usersErr    error

	mutateErr error
	tokens    []models.CSRFToken

	statusArg *bool
	roleArg   string

	totals    map[models.Counter]int64
	totalErrs map[models.Counter]error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) mutation(name string, tok models.CSRFToken) error {
	f.record(name)
	f.tokens = append(f.tokens, tok)
	return f.mutateErr
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(context.Context, string, []byte) error {
	f.record("Login")
	return nil
}

func (f *fakeClient) FetchPage(_ context.Context, path string) (*models.PageContext, error) {
	f.record("FetchPage " + path)
	return f.page, f.pageErr
}

func (f *fakeClient) ListAllComments(context.Context) ([]models.Comment, error) {
	f.record("ListAllComments")
	return f.comments, f.commentsErr
}

func (f *fakeClient) DeleteAdminComment(_ context.Context, _ uuid.UUID, tok models.CSRFToken) error {
	return f.mutation("DeleteAdminComment", tok)
}

func (f *fakeClient) ListRecipes(context.Context) ([]models.Recipe, error) {
	f.record("ListRecipes")
	return f.recipes, f.recipesErr
}

func (f *fakeClient) DeleteRecipe(_ context.Context, _ uuid.UUID, tok models.CSRFToken) error {
	return f.mutation("DeleteRecipe", tok)
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return f.users, f.usersErr
}

func (f *fakeClient) UpdateUserStatus(_ context.Context, _ uuid.UUID, active bool, tok models.CSRFToken) error {
	f.statusArg = &active
	return f.mutation("UpdateUserStatus", tok)
}

func (f *fakeClient) UpdateUserRole(_ context.Context, _ uuid.UUID, role string, tok models.CSRFToken) error {
	f.roleArg = role
	return f.mutation("UpdateUserRole", tok)
}

func (f *fakeClient) Total(_ context.Context, c models.Counter) (int64, error) {
	f.record("Total")
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.totalErrs[c]; err != nil {
		return 0, err
	}
	return f.totals[c], nil
}

func (f *fakeClient) ListRecipeComments(context.Context, uuid.UUID) ([]models.Comment, error) {
	f.record("ListRecipeComments")
	return f.comments, f.commentsErr
}

func (f *fakeClient) DeleteComment(_ context.Context, _ uuid.UUID, tok models.CSRFToken) error {
	return f.mutation("DeleteComment", tok)
}

type fakeDisplay struct {
	shown []*view.Node
}

func (d *fakeDisplay) Show(n *view.Node) { d.shown = append(d.shown, n) }

type fakeConfirm struct {
	answer bool
	asked  []string
}

func (c *fakeConfirm) Confirm(msg string) bool {
	c.asked = append(c.asked, msg)
	return c.answer
}

type fakePrompt struct {
	answer string
	err    error
	asked  []string
}

func (p *fakePrompt) Prompt(msg string) (string, error) {
	p.asked = append(p.asked, msg)
	return p.answer, p.err
}

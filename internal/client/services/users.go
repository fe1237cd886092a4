package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/google/uuid"
)

const PromptRole = "Enter new role (e.g., User, Admin):"

// ConfirmStatusChange is the question asked before a user is activated or
// deactivated.
func ConfirmStatusChange(activate bool) string {
	verb := "deactivate"
	if activate {
		verb = "activate"
	}
	return fmt.Sprintf("Are you sure you want to %s this user?", verb)
}

// UserTable is the admin user manager.
type UserTable struct {
	page
	users []models.User
}

func NewUserTable(deps Deps) *UserTable {
	return &UserTable{page: page{deps: deps, path: AdminUsersPagePath}}
}

func (t *UserTable) Open(ctx context.Context) error {
	if err := t.attach(ctx); err != nil {
		return err
	}
	return t.Load(ctx)
}

func (t *UserTable) Load(ctx context.Context) error {
	users, err := t.deps.Client.ListUsers(ctx)
	if err != nil {
		t.deps.logger().Error(t.scope(ctx), "error fetching users", "error", err)
		return fmt.Errorf("load users: %w", err)
	}
	t.users = users
	t.show(view.AdminUsers(users))
	return nil
}

// Lookup finds a user in the last loaded list.
func (t *UserTable) Lookup(id uuid.UUID) (models.User, bool) {
	for _, u := range t.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ToggleStatus flips the active flag of a user whose current state is
// currentlyActive.
func (t *UserTable) ToggleStatus(ctx context.Context, id uuid.UUID, currentlyActive bool) error {
	next := !currentlyActive
	if !t.confirmed(ConfirmStatusChange(next)) {
		return nil
	}
	if err := t.deps.Client.UpdateUserStatus(ctx, id, next, t.token()); err != nil {
		t.deps.logger().Error(t.scope(ctx), "error updating user status", "id", id, "error", err)
		return fmt.Errorf("update status: %w", err)
	}
	return t.Load(ctx)
}

// UpdateRole asks for a new role and stores it. An empty answer changes
// nothing.
func (t *UserTable) UpdateRole(ctx context.Context, id uuid.UUID) error {
	if t.deps.Prompt == nil {
		return nil
	}
	role, err := t.deps.Prompt.Prompt(PromptRole)
	if err != nil {
		return fmt.Errorf("read role: %w", err)
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return nil
	}
	if err := t.deps.Client.UpdateUserRole(ctx, id, role, t.token()); err != nil {
		t.deps.logger().Error(t.scope(ctx), "error updating user role", "id", id, "error", err)
		return fmt.Errorf("update role: %w", err)
	}
	return t.Load(ctx)
}

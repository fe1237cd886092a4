package models

import "github.com/google/uuid"

// User is a row of the admin user table.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`
}

// StatusLabel is the text shown in the status column.
func (u User) StatusLabel() string {
	if u.Active {
		return "Active"
	}
	return "Inactive"
}

// StatusRequest is the body of PUT /api/admin/users/{id}/status.
type StatusRequest struct {
	IsActive bool `json:"isActive"`
}

// RoleRequest is the body of PUT /api/admin/users/{id}/role.
type RoleRequest struct {
	Role string `json:"role"`
}

// File: internal/dtos/user.go
package dtos

import (
	"github.com/graceworks/churchos/internal/domain"
)

// UserResponse defines what fields to expose in user API responses.
// The password hash is never serialized.
type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BranchID   *uint  `json:"branch_id"`
	BranchName string `json:"branch_name,omitempty"`
}

// NewUserResponse maps a domain user to its API shape.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		BranchID: u.BranchID,
	}
}

// SessionRequest is the login payload.
type SessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterRequest redeems an invitation code to create an account.
type RegisterRequest struct {
	Code     string `json:"code" validate:"required,len=6"`
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SessionResponse carries the signed session token plus the user it
// identifies.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, userID uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAllWithBranch is the admin directory listing, each row joined
	// with its branch name.
	FindAllWithBranch(ctx context.Context) ([]dtos.UserResponse, error)
	UpdateRole(ctx context.Context, userID uint, role string) error
}

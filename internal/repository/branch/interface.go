// File: internal/repository/branch/interface.go
package branch

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
)

// BranchRepository covers churches and their branches.
type BranchRepository interface {
	FindAll(ctx context.Context) ([]domain.Branch, error)
	FindByID(ctx context.Context, branchID uint) (*domain.Branch, error)
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	FirstChurch(ctx context.Context) (*domain.Church, error)
}

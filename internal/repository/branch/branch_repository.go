// File: internal/repository/branch/branch_repository.go
package branch

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

var ErrBranchNotFound = errors.New("branch not found")

type gormBranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &gormBranchRepository{db: db}
}

func (r *gormBranchRepository) FindAll(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	if err := r.db.WithContext(ctx).Find(&branches).Error; err != nil {
		log.Printf("[BranchRepository] Database error listing branches: %v", err)
		return nil, errors.New("database error listing branches")
	}
	return branches, nil
}

func (r *gormBranchRepository) FindByID(ctx context.Context, branchID uint) (*domain.Branch, error) {
	if branchID == 0 {
		return nil, errors.New("invalid branch ID")
	}

	var branch domain.Branch
	err := r.db.WithContext(ctx).First(&branch, branchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		log.Printf("[BranchRepository] Database error finding branch ID %d: %v", branchID, err)
		return nil, errors.New("database error fetching branch")
	}
	return &branch, nil
}

func (r *gormBranchRepository) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	if branch == nil || branch.Name == "" || branch.ChurchID == 0 {
		return nil, errors.New("church ID and branch name are required")
	}

	if err := r.db.WithContext(ctx).Create(branch).Error; err != nil {
		log.Printf("[BranchRepository] Database error creating branch %s: %v", branch.Name, err)
		return nil, errors.New("database error creating branch")
	}
	return branch, nil
}

// FirstChurch returns the tenant record. The deployment model is one
// church per database; multi-church support would extend this.
func (r *gormBranchRepository) FirstChurch(ctx context.Context) (*domain.Church, error) {
	var church domain.Church
	err := r.db.WithContext(ctx).First(&church).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no church configured")
		}
		log.Printf("[BranchRepository] Database error fetching church: %v", err)
		return nil, errors.New("database error fetching church")
	}
	return &church, nil
}

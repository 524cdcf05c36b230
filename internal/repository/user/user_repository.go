// File: internal/repository/user/user_repository.go
package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user cannot be nil")
	}
	if err := user.IsValid(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Printf("[UserRepository] Database error creating user %s: %v", user.Email, err)
		return nil, errors.New("database error creating user")
	}
	return user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepository] Database error finding user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching user")
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepository] Database error finding user by email: %v", err)
		return nil, errors.New("database error fetching user")
	}
	return &user, nil
}

func (r *gormUserRepository) FindAllWithBranch(ctx context.Context) ([]dtos.UserResponse, error) {
	var users []dtos.UserResponse
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.email, users.role, users.branch_id, branches.name AS branch_name").
		Joins("LEFT JOIN branches ON users.branch_id = branches.id").
		Scan(&users).Error
	if err != nil {
		log.Printf("[UserRepository] Database error listing users: %v", err)
		return nil, errors.New("database error listing users")
	}
	return users, nil
}

func (r *gormUserRepository) UpdateRole(ctx context.Context, userID uint, role string) error {
	if userID == 0 {
		return errors.New("invalid user ID")
	}
	if !domain.IsValidRole(role) {
		return errors.New("unknown role: " + role)
	}

	result := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		log.Printf("[UserRepository] Database error updating role for user ID %d: %v", userID, result.Error)
		return errors.New("database error updating role")
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

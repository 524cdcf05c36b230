// File: internal/repository/volunteer/volunteer_repository.go
package volunteer

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type gormVolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &gormVolunteerRepository{db: db}
}

func (r *gormVolunteerRepository) CreateNeed(ctx context.Context, need *domain.VolunteerNeed) (*domain.VolunteerNeed, error) {
	if need == nil || need.BranchID == 0 || need.RoleName == "" {
		return nil, errors.New("branch ID and role name are required")
	}
	if need.RequiredCount < 1 {
		need.RequiredCount = 1
	}

	if err := r.db.WithContext(ctx).Create(need).Error; err != nil {
		log.Printf("[VolunteerRepository] Database error creating need %q: %v", need.RoleName, err)
		return nil, errors.New("database error creating volunteer need")
	}
	return need, nil
}

func (r *gormVolunteerRepository) OpenNeedsByBranch(ctx context.Context, branchID uint) ([]dtos.VolunteerNeedResponse, error) {
	if branchID == 0 {
		return nil, errors.New("invalid branch ID")
	}

	var needs []dtos.VolunteerNeedResponse
	err := r.db.WithContext(ctx).
		Table("volunteer_needs").
		Select(`volunteer_needs.id, volunteer_needs.branch_id, volunteer_needs.event_id,
			events.title AS event_title, events.start_time AS event_time,
			volunteer_needs.role_name, volunteer_needs.description, volunteer_needs.required_count,
			(SELECT COUNT(*) FROM volunteer_signups WHERE volunteer_signups.need_id = volunteer_needs.id) AS current_count,
			volunteer_needs.deadline, volunteer_needs.status`).
		Joins("LEFT JOIN events ON volunteer_needs.event_id = events.id").
		Where("volunteer_needs.branch_id = ? AND volunteer_needs.status = ?", branchID, domain.NeedOpen).
		Order("events.start_time asc").
		Scan(&needs).Error
	if err != nil {
		log.Printf("[VolunteerRepository] Database error listing needs for branch ID %d: %v", branchID, err)
		return nil, errors.New("database error listing volunteer needs")
	}
	return needs, nil
}

func (r *gormVolunteerRepository) CreateSignup(ctx context.Context, signup *domain.VolunteerSignup) (*domain.VolunteerSignup, error) {
	if signup == nil || signup.NeedID == 0 || signup.UserID == 0 {
		return nil, errors.New("need ID and user ID are required")
	}

	if err := r.db.WithContext(ctx).Create(signup).Error; err != nil {
		log.Printf("[VolunteerRepository] Database error creating signup need=%d user=%d: %v", signup.NeedID, signup.UserID, err)
		return nil, errors.New("database error creating signup")
	}
	return signup, nil
}

func (r *gormVolunteerRepository) FindUserSignups(ctx context.Context, userID uint) ([]dtos.VolunteerSignupResponse, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var signups []dtos.VolunteerSignupResponse
	err := r.db.WithContext(ctx).
		Table("volunteer_signups").
		Select(`volunteer_signups.id, volunteer_signups.need_id, volunteer_needs.role_name,
			events.title AS event_title, events.start_time AS event_time,
			volunteer_signups.signed_up_at, volunteer_signups.status`).
		Joins("JOIN volunteer_needs ON volunteer_signups.need_id = volunteer_needs.id").
		Joins("LEFT JOIN events ON volunteer_needs.event_id = events.id").
		Where("volunteer_signups.user_id = ?", userID).
		Order("events.start_time asc").
		Scan(&signups).Error
	if err != nil {
		log.Printf("[VolunteerRepository] Database error listing signups for user ID %d: %v", userID, err)
		return nil, errors.New("database error listing signups")
	}
	return signups, nil
}

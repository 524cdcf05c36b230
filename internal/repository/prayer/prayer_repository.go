// File: internal/repository/prayer/prayer_repository.go
package prayer

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

type gormPrayerRepository struct {
	db *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) PrayerRepository {
	return &gormPrayerRepository{db: db}
}

func (r *gormPrayerRepository) Create(ctx context.Context, request *domain.PrayerRequest) (*domain.PrayerRequest, error) {
	if request == nil || strings.TrimSpace(request.Content) == "" {
		return nil, errors.New("prayer request content cannot be empty")
	}
	if request.BranchID == 0 {
		return nil, errors.New("branch ID is required")
	}

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		log.Printf("[PrayerRepository] Database error creating prayer request: %v", err)
		return nil, errors.New("database error creating prayer request")
	}
	return request, nil
}

func (r *gormPrayerRepository) FindAll(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("prayer_requests").
		Select(`prayer_requests.id, prayer_requests.user_id, users.name AS user_name,
			prayer_requests.branch_id, prayer_requests.content, prayer_requests.is_anonymous,
			prayer_requests.created_at`).
		Joins("LEFT JOIN users ON prayer_requests.user_id = users.id").
		Order("prayer_requests.created_at desc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[PrayerRepository] Database error listing prayer requests: %v", err)
		return nil, errors.New("database error listing prayer requests")
	}
	return rows, nil
}

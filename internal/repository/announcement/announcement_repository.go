// File: internal/repository/announcement/announcement_repository.go
package announcement

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

type gormAnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &gormAnnouncementRepository{db: db}
}

func (r *gormAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if a == nil || a.Title == "" || a.Content == "" || a.SenderID == 0 {
		return nil, errors.New("sender, title and content are required")
	}
	if a.Type != domain.AnnouncementChurch && a.Type != domain.AnnouncementBranch {
		return nil, errors.New("unknown announcement type: " + a.Type)
	}
	if a.Type == domain.AnnouncementBranch && a.BranchID == nil {
		return nil, errors.New("branch announcements require a branch ID")
	}

	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		log.Printf("[AnnouncementRepository] Database error creating announcement %q: %v", a.Title, err)
		return nil, errors.New("database error creating announcement")
	}
	return a, nil
}

func (r *gormAnnouncementRepository) FindScoped(ctx context.Context, branchID *uint, elevated bool) ([]Row, error) {
	query := r.db.WithContext(ctx).
		Table("announcements").
		Select(`announcements.id, announcements.sender_id, users.name AS sender_name,
			announcements.branch_id, branches.name AS branch_name, announcements.title,
			announcements.content, announcements.type, announcements.created_at`).
		Joins("JOIN users ON announcements.sender_id = users.id").
		Joins("LEFT JOIN branches ON announcements.branch_id = branches.id")

	if !elevated {
		var id uint
		if branchID != nil {
			id = *branchID
		}
		query = query.Where("announcements.type = ? OR announcements.branch_id = ?", domain.AnnouncementChurch, id)
	}

	var rows []Row
	if err := query.Order("announcements.created_at desc").Scan(&rows).Error; err != nil {
		log.Printf("[AnnouncementRepository] Database error listing announcements: %v", err)
		return nil, errors.New("database error listing announcements")
	}
	return rows, nil
}

// File: internal/repository/audit/audit_repository.go
package audit

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

const defaultLimit = 100

type gormAuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &gormAuditRepository{db: db}
}

func (r *gormAuditRepository) Record(ctx context.Context, entry *domain.AuditLog) error {
	if entry == nil || entry.UserID == 0 || entry.Action == "" {
		return errors.New("user ID and action are required")
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("[AuditRepository] Database error recording action %q: %v", entry.Action, err)
		return errors.New("database error recording audit entry")
	}
	return nil
}

func (r *gormAuditRepository) Recent(ctx context.Context, limit int) ([]dtos.AuditLogResponse, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultLimit
	}

	var logs []dtos.AuditLogResponse
	err := r.db.WithContext(ctx).
		Table("audit_logs").
		Select(`audit_logs.id, audit_logs.user_id, users.name AS user_name, audit_logs.action,
			audit_logs.target_type, audit_logs.target_id, audit_logs.details, audit_logs.created_at AS timestamp`).
		Joins("JOIN users ON audit_logs.user_id = users.id").
		Order("audit_logs.created_at desc").
		Limit(limit).
		Scan(&logs).Error
	if err != nil {
		log.Printf("[AuditRepository] Database error listing audit logs: %v", err)
		return nil, errors.New("database error listing audit logs")
	}
	return logs, nil
}

// File: internal/repository/announcement/interface.go
package announcement

import (
	"context"
	"time"

	"github.com/graceworks/churchos/internal/domain"
)

// Row is an announcement joined with its sender and branch names.
type Row struct {
	ID         uint
	SenderID   uint
	SenderName string
	BranchID   *uint
	BranchName string
	Title      string
	Content    string
	Type       string
	CreatedAt  time.Time
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// FindScoped lists everything for elevated requesters; otherwise
	// church-wide announcements plus the requester's branch, newest first.
	FindScoped(ctx context.Context, branchID *uint, elevated bool) ([]Row, error)
}

// File: internal/repository/prayer/interface.go
package prayer

import (
	"context"
	"time"

	"github.com/graceworks/churchos/internal/domain"
)

// Row is a prayer request joined with the author's name. The service
// layer blanks the author for anonymous requests before serving it.
type Row struct {
	ID          uint
	UserID      *uint
	UserName    string
	BranchID    uint
	Content     string
	IsAnonymous bool
	CreatedAt   time.Time
}

type PrayerRepository interface {
	Create(ctx context.Context, request *domain.PrayerRequest) (*domain.PrayerRequest, error)
	FindAll(ctx context.Context) ([]Row, error)
}

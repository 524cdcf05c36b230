// File: internal/repository/audit/interface.go
package audit

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditLog) error
	Recent(ctx context.Context, limit int) ([]dtos.AuditLogResponse, error)
}

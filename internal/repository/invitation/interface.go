// File: internal/repository/invitation/interface.go
package invitation

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.Invitation) (*domain.Invitation, error)
	FindAll(ctx context.Context) ([]dtos.InvitationResponse, error)
	FindByCode(ctx context.Context, code string) (*domain.Invitation, error)
	MarkUsed(ctx context.Context, invitationID uint) error
}

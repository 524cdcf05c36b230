// File: internal/repository/event/interface.go
package event

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, eventID uint) (*domain.Event, error)
	// FindScoped lists every event for elevated requesters. Otherwise
	// it returns the requester's branch events, events of groups the
	// requester belongs to, and church-wide events (no group).
	FindScoped(ctx context.Context, branchID *uint, userID uint, elevated bool) ([]dtos.EventResponse, error)
	RecordAttendance(ctx context.Context, eventID, userID uint) error
	UpdateNotes(ctx context.Context, eventID uint, notes string) error
	UpdateAISummary(ctx context.Context, eventID uint, summary string) error
}

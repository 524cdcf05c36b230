// File: internal/repository/event/event_repository.go
package event

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

var ErrEventNotFound = errors.New("event not found")

type gormEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil || event.Title == "" || event.BranchID == 0 {
		return nil, errors.New("branch ID and title are required")
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		log.Printf("[EventRepository] Database error creating event %q: %v", event.Title, err)
		return nil, errors.New("database error creating event")
	}
	return event, nil
}

func (r *gormEventRepository) FindByID(ctx context.Context, eventID uint) (*domain.Event, error) {
	if eventID == 0 {
		return nil, errors.New("invalid event ID")
	}

	var event domain.Event
	err := r.db.WithContext(ctx).First(&event, eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		log.Printf("[EventRepository] Database error finding event ID %d: %v", eventID, err)
		return nil, errors.New("database error fetching event")
	}
	return &event, nil
}

func (r *gormEventRepository) FindScoped(ctx context.Context, branchID *uint, userID uint, elevated bool) ([]dtos.EventResponse, error) {
	query := r.db.WithContext(ctx).
		Table("events").
		Select(`events.id, events.branch_id, branches.name AS branch_name, events.group_id,
			groups.name AS group_name, events.title, events.description, events.start_time,
			events.location, events.meeting_url, events.meeting_notes, events.ai_summary`).
		Joins("JOIN branches ON events.branch_id = branches.id").
		Joins("LEFT JOIN groups ON events.group_id = groups.id")

	if !elevated {
		query = query.Where(
			"events.branch_id = ? OR events.group_id IN (SELECT group_id FROM group_members WHERE user_id = ?) OR events.group_id IS NULL",
			branchIDOrZero(branchID), userID,
		)
	}

	var events []dtos.EventResponse
	if err := query.Order("events.start_time asc").Scan(&events).Error; err != nil {
		log.Printf("[EventRepository] Database error listing events: %v", err)
		return nil, errors.New("database error listing events")
	}
	return events, nil
}

func (r *gormEventRepository) RecordAttendance(ctx context.Context, eventID, userID uint) error {
	if eventID == 0 || userID == 0 {
		return errors.New("event ID and user ID are required")
	}

	record := domain.MeetingAttendance{EventID: eventID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Printf("[EventRepository] Database error recording attendance event=%d user=%d: %v", eventID, userID, err)
		return errors.New("database error recording attendance")
	}
	return nil
}

func (r *gormEventRepository) UpdateNotes(ctx context.Context, eventID uint, notes string) error {
	return r.updateColumn(ctx, eventID, "meeting_notes", notes)
}

func (r *gormEventRepository) UpdateAISummary(ctx context.Context, eventID uint, summary string) error {
	return r.updateColumn(ctx, eventID, "ai_summary", summary)
}

func (r *gormEventRepository) updateColumn(ctx context.Context, eventID uint, column, value string) error {
	if eventID == 0 {
		return errors.New("invalid event ID")
	}

	result := r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", eventID).Update(column, value)
	if result.Error != nil {
		log.Printf("[EventRepository] Database error updating %s for event ID %d: %v", column, eventID, result.Error)
		return errors.New("database error updating event")
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func branchIDOrZero(branchID *uint) uint {
	if branchID == nil {
		return 0
	}
	return *branchID
}

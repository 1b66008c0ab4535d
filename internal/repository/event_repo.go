package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Save(ctx context.Context, event *models.Event) (*models.Event, error)
	// FindByDescription returns nil, nil when no event matches.
	FindByDescription(ctx context.Context, description string) (*models.Event, error)
	FindByDateRange(ctx context.Context, start, end *time.Time) ([]models.Event, error)
	FindByParticipantNameSurnameRole(ctx context.Context, name, surname string, role models.Role) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Save upserts the event together with its logistics items.
func (r *eventRepository) Save(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) FindByDescription(ctx context.Context, description string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Logistics").
		Where("description = ?", description).
		Order("id ASC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Preload always yields an empty slice; an event without rows has no set yet.
	if len(event.Logistics) == 0 {
		event.Logistics = nil
	}
	return &event, nil
}

// FindByDateRange returns events lying within [start, end]. A nil bound is
// not applied.
func (r *eventRepository) FindByDateRange(ctx context.Context, start, end *time.Time) ([]models.Event, error) {
	q := r.db.WithContext(ctx).Preload("Logistics")
	if start != nil {
		q = q.Where("start_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("end_date <= ?", *end)
	}

	var events []models.Event
	if err := q.Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByParticipantNameSurnameRole(ctx context.Context, name, surname string, role models.Role) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Logistics").
		Where(`EXISTS (
			SELECT 1 FROM participants p
			WHERE p.name = ? AND p.surname = ? AND p.role = ?
			AND events.participants @> jsonb_build_array(p.id)
		)`, name, surname, role).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

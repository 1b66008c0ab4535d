package repository

import (
	"context"
	"errors"

	"github.com/Eursukkul/events-planner/internal/models"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	// FindByID returns nil, nil when the participant does not exist.
	FindByID(ctx context.Context, id int) (*models.Participant, error)
	Save(ctx context.Context, participant *models.Participant) (*models.Participant, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) FindByID(ctx context.Context, id int) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.WithContext(ctx).First(&participant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) Save(ctx context.Context, participant *models.Participant) (*models.Participant, error) {
	if err := r.db.WithContext(ctx).Save(participant).Error; err != nil {
		return nil, err
	}
	return participant, nil
}

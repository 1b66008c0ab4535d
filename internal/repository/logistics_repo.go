package repository

import (
	"context"

	"github.com/Eursukkul/events-planner/internal/models"
	"gorm.io/gorm"
)

type LogisticsRepository interface {
	Save(ctx context.Context, logistics *models.Logistics) (*models.Logistics, error)
}

type logisticsRepository struct {
	db *gorm.DB
}

func NewLogisticsRepository(db *gorm.DB) LogisticsRepository {
	return &logisticsRepository{db: db}
}

func (r *logisticsRepository) Save(ctx context.Context, logistics *models.Logistics) (*models.Logistics, error) {
	if err := r.db.WithContext(ctx).Save(logistics).Error; err != nil {
		return nil, err
	}
	return logistics, nil
}

package handler

import (
	"context"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
)

// --- Mock AssociationService ---

type mockAssociationService struct {
	registerFn      func(ctx context.Context, p *models.Participant) (*models.Participant, error)
	linkEventFn     func(ctx context.Context, e *models.Event, participantID int) (*models.Event, error)
	linkAllFn       func(ctx context.Context, e *models.Event) (*models.Event, error)
	linkLogisticsFn func(ctx context.Context, l *models.Logistics, description string) (*models.Logistics, error)
	findReservedFn  func(ctx context.Context, start, end *time.Time) ([]*models.Logistics, error)
}

func (m *mockAssociationService) RegisterParticipant(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	return m.registerFn(ctx, p)
}
func (m *mockAssociationService) LinkEventToParticipant(ctx context.Context, e *models.Event, participantID int) (*models.Event, error) {
	return m.linkEventFn(ctx, e, participantID)
}
func (m *mockAssociationService) LinkEventToAllItsParticipants(ctx context.Context, e *models.Event) (*models.Event, error) {
	return m.linkAllFn(ctx, e)
}
func (m *mockAssociationService) LinkLogisticsToEvent(ctx context.Context, l *models.Logistics, description string) (*models.Logistics, error) {
	return m.linkLogisticsFn(ctx, l, description)
}
func (m *mockAssociationService) FindReservedLogistics(ctx context.Context, start, end *time.Time) ([]*models.Logistics, error) {
	return m.findReservedFn(ctx, start, end)
}

// --- Mock CostService ---

type mockCostService struct {
	recomputeFn func(ctx context.Context) error
}

func (m *mockCostService) RecomputeCosts(ctx context.Context) error {
	return m.recomputeFn(ctx)
}

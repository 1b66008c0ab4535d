package service

import (
	"context"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
)

// --- Mock ParticipantRepository ---

type mockParticipantRepo struct {
	findByIDFn func(ctx context.Context, id int) (*models.Participant, error)
	saveFn     func(ctx context.Context, p *models.Participant) (*models.Participant, error)

	findCalls []int
	saveCalls int
}

func (m *mockParticipantRepo) FindByID(ctx context.Context, id int) (*models.Participant, error) {
	m.findCalls = append(m.findCalls, id)
	return m.findByIDFn(ctx, id)
}
func (m *mockParticipantRepo) Save(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	m.saveCalls++
	return m.saveFn(ctx, p)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	saveFn              func(ctx context.Context, e *models.Event) (*models.Event, error)
	findByDescriptionFn func(ctx context.Context, description string) (*models.Event, error)
	findByDateRangeFn   func(ctx context.Context, start, end *time.Time) ([]models.Event, error)
	findByParticipantFn func(ctx context.Context, name, surname string, role models.Role) ([]models.Event, error)

	saved []*models.Event
}

func (m *mockEventRepo) Save(ctx context.Context, e *models.Event) (*models.Event, error) {
	m.saved = append(m.saved, e)
	if m.saveFn == nil {
		return e, nil
	}
	return m.saveFn(ctx, e)
}
func (m *mockEventRepo) FindByDescription(ctx context.Context, description string) (*models.Event, error) {
	return m.findByDescriptionFn(ctx, description)
}
func (m *mockEventRepo) FindByDateRange(ctx context.Context, start, end *time.Time) ([]models.Event, error) {
	return m.findByDateRangeFn(ctx, start, end)
}
func (m *mockEventRepo) FindByParticipantNameSurnameRole(ctx context.Context, name, surname string, role models.Role) ([]models.Event, error) {
	return m.findByParticipantFn(ctx, name, surname, role)
}

// --- Mock LogisticsRepository ---

type mockLogisticsRepo struct {
	saved []*models.Logistics
}

func (m *mockLogisticsRepo) Save(ctx context.Context, l *models.Logistics) (*models.Logistics, error) {
	m.saved = append(m.saved, l)
	return l, nil
}

// --- Mock Publisher ---

type published struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	err  error
	sent []published
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.sent = append(m.sent, published{routingKey: routingKey, payload: payload})
	return m.err
}

func participantsByID(ps ...*models.Participant) func(ctx context.Context, id int) (*models.Participant, error) {
	byID := make(map[int]*models.Participant, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	return func(ctx context.Context, id int) (*models.Participant, error) {
		return byID[id], nil
	}
}

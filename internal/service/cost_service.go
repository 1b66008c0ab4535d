package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/repository"
	"github.com/Eursukkul/events-planner/pkg/metrics"
)

// CostFilter selects the events whose cost is recomputed: those with a
// participant matching all three fields.
type CostFilter struct {
	Name    string
	Surname string
	Role    models.Role
}

// Validate rejects a filter whose role is not a known participant role.
func (f CostFilter) Validate() error {
	if !f.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, f.Role)
	}
	return nil
}

type CostService interface {
	RecomputeCosts(ctx context.Context) error
}

type costService struct {
	events    repository.EventRepository
	filter    CostFilter
	publisher Publisher
}

func NewCostService(events repository.EventRepository, filter CostFilter, publisher Publisher) CostService {
	return &costService{events: events, filter: filter, publisher: publisher}
}

type costUpdated struct {
	EventID     int     `json:"event_id"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// RecomputeCosts overwrites the cost of every selected event with the total
// of its reserved logistics and saves it. The first failing save ends the run.
func (s *costService) RecomputeCosts(ctx context.Context) (err error) {
	started := time.Now()
	recomputed := 0
	defer func() { metrics.RecordCostRun(started, recomputed, err) }()

	events, err := s.events.FindByParticipantNameSurnameRole(ctx, s.filter.Name, s.filter.Surname, s.filter.Role)
	if err != nil {
		return fmt.Errorf("find events for %s %s (%s): %w", s.filter.Name, s.filter.Surname, s.filter.Role, err)
	}

	for i := range events {
		event := &events[i]
		log.Printf("[CostJob] recomputing %q", event.Description)

		event.Cost = event.ReservedCost()
		if _, err := s.events.Save(ctx, event); err != nil {
			return fmt.Errorf("save event %d: %w", event.ID, err)
		}
		recomputed++
		log.Printf("[CostJob] cost of %q is %.2f", event.Description, event.Cost)

		if s.publisher != nil {
			msg := costUpdated{EventID: event.ID, Description: event.Description, Cost: event.Cost}
			if err := s.publisher.Publish("event.cost_updated", msg); err != nil {
				log.Printf("[CostJob] publish event.cost_updated %d: %v", event.ID, err)
			}
		}
	}
	return nil
}

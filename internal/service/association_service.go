package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/repository"
	"github.com/Eursukkul/events-planner/pkg/metrics"
	"github.com/google/uuid"
)

type AssociationService interface {
	RegisterParticipant(ctx context.Context, participant *models.Participant) (*models.Participant, error)
	LinkEventToParticipant(ctx context.Context, event *models.Event, participantID int) (*models.Event, error)
	LinkEventToAllItsParticipants(ctx context.Context, event *models.Event) (*models.Event, error)
	LinkLogisticsToEvent(ctx context.Context, logistics *models.Logistics, eventDescription string) (*models.Logistics, error)
	FindReservedLogistics(ctx context.Context, start, end *time.Time) ([]*models.Logistics, error)
}

type associationService struct {
	participants repository.ParticipantRepository
	events       repository.EventRepository
	logistics    repository.LogisticsRepository
	publisher    Publisher
}

func NewAssociationService(
	participants repository.ParticipantRepository,
	events repository.EventRepository,
	logistics repository.LogisticsRepository,
	publisher Publisher,
) AssociationService {
	return &associationService{
		participants: participants,
		events:       events,
		logistics:    logistics,
		publisher:    publisher,
	}
}

func (s *associationService) RegisterParticipant(ctx context.Context, participant *models.Participant) (_ *models.Participant, err error) {
	defer func() { metrics.RecordAssociation("register_participant", err) }()

	if participant == nil {
		return nil, fmt.Errorf("%w: participant is required", ErrInvalidInput)
	}

	existing, err := s.participants.FindByID(ctx, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("find participant %d: %w", participant.ID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: id %d", ErrParticipantExists, participant.ID)
	}

	saved, err := s.participants.Save(ctx, participant)
	if err != nil {
		return nil, fmt.Errorf("save participant %d: %w", participant.ID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("participant.registered", saved); err != nil {
			log.Printf("[AssociationService] publish participant.registered %d: %v", saved.ID, err)
		}
	}
	return saved, nil
}

// LinkEventToParticipant adds the event to the participant's event set and
// saves the event. The participant itself is not saved.
func (s *associationService) LinkEventToParticipant(ctx context.Context, event *models.Event, participantID int) (_ *models.Event, err error) {
	defer func() { metrics.RecordAssociation("link_event_participant", err) }()

	if event == nil {
		return nil, fmt.Errorf("%w: event is required", ErrInvalidInput)
	}

	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("find participant %d: %w", participantID, err)
	}
	if participant == nil {
		return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, participantID)
	}

	participant.AddEvent(event.ID)

	saved, err := s.events.Save(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("save event %d: %w", event.ID, err)
	}
	return saved, nil
}

// LinkEventToAllItsParticipants adds the event to the event set of every
// participant it references, then saves the event once. A missing
// participant aborts the call before the event is saved; participants
// visited earlier keep the added membership.
func (s *associationService) LinkEventToAllItsParticipants(ctx context.Context, event *models.Event) (_ *models.Event, err error) {
	defer func() { metrics.RecordAssociation("link_event_all_participants", err) }()

	if event == nil {
		return nil, fmt.Errorf("%w: event is required", ErrInvalidInput)
	}

	for id := range event.Participants {
		participant, err := s.participants.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find participant %d: %w", id, err)
		}
		if participant == nil {
			return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, id)
		}
		participant.AddEvent(event.ID)
	}

	saved, err := s.events.Save(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("save event %d: %w", event.ID, err)
	}
	return saved, nil
}

// LinkLogisticsToEvent attaches logistics to the event found by description
// and saves the logistics item. The event is saved only when this creates
// its logistics set.
func (s *associationService) LinkLogisticsToEvent(ctx context.Context, logistics *models.Logistics, eventDescription string) (_ *models.Logistics, err error) {
	defer func() { metrics.RecordAssociation("link_logistics_event", err) }()

	event, err := s.events.FindByDescription(ctx, eventDescription)
	if err != nil {
		return nil, fmt.Errorf("find event %q: %w", eventDescription, err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: description %q", ErrEventNotFound, eventDescription)
	}
	if logistics == nil {
		return nil, fmt.Errorf("%w: logistics is required", ErrInvalidInput)
	}
	if logistics.ID == uuid.Nil {
		logistics.ID = uuid.New()
	}

	// The foreign key lets storage see the link even when the event is not saved.
	eventID := event.ID
	logistics.EventID = &eventID

	if event.Logistics == nil {
		event.Logistics = []*models.Logistics{logistics}
		if _, err := s.events.Save(ctx, event); err != nil {
			return nil, fmt.Errorf("save event %d: %w", event.ID, err)
		}
	} else {
		event.AddLogistics(logistics)
	}

	saved, err := s.logistics.Save(ctx, logistics)
	if err != nil {
		return nil, fmt.Errorf("save logistics %s: %w", logistics.ID, err)
	}
	return saved, nil
}

// FindReservedLogistics collects the reserved logistics of every event in
// the date range. It returns nil, without error, as soon as one of those
// events has no logistics at all; when no event matches it returns an empty,
// non-nil slice.
func (s *associationService) FindReservedLogistics(ctx context.Context, start, end *time.Time) ([]*models.Logistics, error) {
	events, err := s.events.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("find events by date range: %w", err)
	}

	reserved := make([]*models.Logistics, 0)
	for _, event := range events {
		if len(event.Logistics) == 0 {
			return nil, nil
		}
		for _, l := range event.Logistics {
			if l.Reserved {
				reserved = append(reserved, l)
			}
		}
	}
	return reserved, nil
}

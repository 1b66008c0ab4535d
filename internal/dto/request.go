package dto

import (
	"fmt"
	"time"

	"github.com/Eursukkul/events-planner/internal/models"
)

const DateLayout = "2006-01-02"

type RegisterParticipantRequest struct {
	ID      int    `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=ORGANIZER INVITEE SPEAKER"`
}

func (r RegisterParticipantRequest) ToModel() *models.Participant {
	return &models.Participant{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
		Role:    models.Role(r.Role),
	}
}

type EventRequest struct {
	ID           int     `json:"id" validate:"required"`
	Description  string  `json:"description"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Cost         float64 `json:"cost"`
	Participants []int   `json:"participants"`
}

func (r EventRequest) ToModel() (*models.Event, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}

	event := &models.Event{
		ID:          r.ID,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		Cost:        r.Cost,
	}
	if r.Participants != nil {
		event.Participants = models.NewIDSet(r.Participants...)
	}
	return event, nil
}

type LogisticsRequest struct {
	Description string  `json:"description"`
	Reserved    bool    `json:"reserved"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

func (r LogisticsRequest) ToModel() *models.Logistics {
	return &models.Logistics{
		Description: r.Description,
		Reserved:    r.Reserved,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}

// ParseDate parses an optional YYYY-MM-DD value. Nil or empty input yields nil.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package dto

import (
	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/google/uuid"
)

type ParticipantResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role"`
	Events  []int  `json:"events"`
}

type EventResponse struct {
	ID           int                 `json:"id"`
	Description  string              `json:"description"`
	StartDate    *string             `json:"start_date,omitempty"`
	EndDate      *string             `json:"end_date,omitempty"`
	Cost         float64             `json:"cost"`
	Participants []int               `json:"participants"`
	Logistics    []LogisticsResponse `json:"logistics"`
}

type LogisticsResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Reserved    bool      `json:"reserved"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToParticipantResponse(p *models.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Role:    string(p.Role),
		Events:  p.Events.IDs(),
	}
}

func ToEventResponse(e *models.Event) EventResponse {
	resp := EventResponse{
		ID:           e.ID,
		Description:  e.Description,
		Cost:         e.Cost,
		Participants: e.Participants.IDs(),
		Logistics:    ToLogisticsResponses(e.Logistics),
	}
	if e.StartDate != nil {
		s := e.StartDate.Format(DateLayout)
		resp.StartDate = &s
	}
	if e.EndDate != nil {
		s := e.EndDate.Format(DateLayout)
		resp.EndDate = &s
	}
	return resp
}

func ToLogisticsResponse(l *models.Logistics) LogisticsResponse {
	return LogisticsResponse{
		ID:          l.ID,
		Description: l.Description,
		Reserved:    l.Reserved,
		UnitPrice:   l.UnitPrice,
		Quantity:    l.Quantity,
	}
}

func ToLogisticsResponses(items []*models.Logistics) []LogisticsResponse {
	resp := make([]LogisticsResponse, len(items))
	for i, l := range items {
		resp[i] = ToLogisticsResponse(l)
	}
	return resp
}

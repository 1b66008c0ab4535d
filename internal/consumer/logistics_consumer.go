package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
)

// LogisticsReserved is the payload of logistics.* messages.
type LogisticsReserved struct {
	EventDescription string            `json:"event_description"`
	Logistics        *models.Logistics `json:"logistics"`
}

type LogisticsConsumer struct {
	svc service.AssociationService
}

func NewLogisticsConsumer(svc service.AssociationService) *LogisticsConsumer {
	return &LogisticsConsumer{svc: svc}
}

// Start links each incoming logistics item to its event until msgs closes.
func (lc *LogisticsConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			lc.handleMessage(context.Background(), msg)
		}
		log.Println("[LogisticsConsumer] channel closed, stopping consumer")
	}()
}

func (lc *LogisticsConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var payload LogisticsReserved
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		log.Printf("[LogisticsConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	saved, err := lc.svc.LinkLogisticsToEvent(ctx, payload.Logistics, payload.EventDescription)
	if err != nil {
		log.Printf("[LogisticsConsumer] failed to link logistics to %q: %v", payload.EventDescription, err)
		// Retrying cannot fix a bad payload or an unknown event.
		requeue := !errors.Is(err, service.ErrNotFound) && !errors.Is(err, service.ErrInvalidInput)
		msg.Nack(false, requeue)
		return
	}

	log.Printf("[LogisticsConsumer] linked logistics %s to %q", saved.ID, payload.EventDescription)
	msg.Ack(false)
}

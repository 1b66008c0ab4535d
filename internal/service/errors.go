package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrParticipantExists = errors.New("participant already exists")
	ErrNotFound          = errors.New("not found")

	ErrParticipantNotFound = fmt.Errorf("participant %w", ErrNotFound)
	ErrEventNotFound       = fmt.Errorf("event %w", ErrNotFound)
)

// Publisher sends domain notifications. The service tolerates a nil Publisher.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

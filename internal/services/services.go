package services

import "fridgeapi/internal/repositories"

// ErrNotFound is returned when the entity addressed by an operation does not exist.
var ErrNotFound = repositories.ErrNotFound

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

package idgen

import (
	"github.com/google/uuid"

	"eventsapi/internal/domain"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator producing random (v4) UUID strings.
func NewUUIDGenerator() domain.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

package utils

import "github.com/google/uuid"

// UUIDGenerator produces note identifiers. UUIDv7 keeps ids time-ordered,
// which matches the update-recency access pattern of the notes list.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

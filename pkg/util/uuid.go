package util

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID string, used for request IDs
func GenerateUUID() string {
	return uuid.NewString()
}

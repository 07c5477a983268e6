package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (version 4) UUID string.
// uuid.New panics if the system's random source fails.
func GenerateID() string {
	return uuid.New().String()
}

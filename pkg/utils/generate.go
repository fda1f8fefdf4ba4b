package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// IsValidRequestID accepts only UUID-shaped ids coming from callers.
func IsValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

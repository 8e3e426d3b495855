package models

import (
	"github.com/google/uuid"
)

// NewID returns the string identifier used by every table.
func NewID() string {
	return uuid.NewString()
}

func ensureID(id *string) {
	if *id == "" {
		*id = NewID()
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a row of the students table.
type Student struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"` // bcrypt hash, never serialized
	Name         string    `json:"name"`
	MatricNumber *string   `json:"matricNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasMatricNumber reports whether a matric number has been assigned.
func (s *Student) HasMatricNumber() bool {
	return s.MatricNumber != nil && *s.MatricNumber != ""
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a persisted refresh token.
type RefreshToken struct {
	Token      uuid.UUID `json:"token"`
	StudentID  uuid.UUID `json:"studentId"`
	ExpiryDate time.Time `json:"expiryDate"`
	IsRevoked  bool      `json:"isRevoked"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsExpired reports whether the token is past its expiry date.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiryDate)
}

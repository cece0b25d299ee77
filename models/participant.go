package models

import (
	"time"
)

// Participant is a roster member. The roster is loaded once at startup
// and is immutable for the lifetime of the session.
type Participant struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

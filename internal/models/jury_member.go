package models

import (
	"time"

	"github.com/google/uuid"
)

// JuryMember is the roster entry used for score attribution. The roster
// decides when an application counts as fully scored, so an empty roster
// must never be treated as "everyone has voted".
type JuryMember struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

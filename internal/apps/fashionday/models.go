package fashionday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is a fashion-day edition. Casting opens and closes per event;
// walk-in registration at the venue goes through the casting kiosk.
type Event struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string                      `gorm:"size:255;not null" json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	Venue        string                      `gorm:"size:255" json:"venue"`
	City         string                      `gorm:"size:100" json:"city"`
	StartsAt     time.Time                   `gorm:"not null;index" json:"starts_at"`
	EndsAt       *time.Time                  `json:"ends_at,omitempty"`
	CastingOpens *time.Time                  `json:"casting_opens,omitempty"`
	CastingEnds  *time.Time                  `json:"casting_ends,omitempty"`
	GalleryURLs  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"gallery_urls"`
	Published    bool                        `gorm:"default:false;index" json:"published"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// CastingOpen reports whether the event accepts casting applications at t.
func (e *Event) CastingOpen(t time.Time) bool {
	if e.CastingOpens == nil || t.Before(*e.CastingOpens) {
		return false
	}
	if e.CastingEnds != nil && t.After(*e.CastingEnds) {
		return false
	}
	return true
}

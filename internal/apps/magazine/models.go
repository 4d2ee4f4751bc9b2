package magazine

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Article is a magazine entry shown on the public site once published.
type Article struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Slug        string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt     string                      `gorm:"type:text" json:"excerpt"`
	Body        string                      `gorm:"type:text" json:"body"`
	CoverURL    string                      `json:"cover_url"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Published   bool                        `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time                  `json:"published_at,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

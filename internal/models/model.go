package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Model levels. Promotion always starts a model at LevelBeginner
// regardless of the experience declared on the casting form.
const (
	LevelBeginner     = "Débutant"
	LevelIntermediate = "Intermédiaire"
	LevelConfirmed    = "Confirmé"
)

// Model is a published (or draft) model profile. Profiles are created by
// the promotion engine from an accepted casting application, or directly
// by an admin. SourceApplicationID links back to the originating
// application; it is nil for hand-created profiles.
type Model struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string                      `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Username            string                      `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Level               string                      `gorm:"size:50;default:'Débutant'" json:"level"`
	Email               string                      `gorm:"size:255" json:"email"`
	Phone               string                      `gorm:"size:50" json:"phone"`
	Gender              string                      `gorm:"size:20" json:"gender"`
	Height              string                      `gorm:"size:20" json:"height"`
	Weight              string                      `gorm:"size:20" json:"weight"`
	Chest               string                      `gorm:"size:20" json:"chest"`
	Waist               string                      `gorm:"size:20" json:"waist"`
	Hips                string                      `gorm:"size:20" json:"hips"`
	ShoeSize            string                      `gorm:"size:20" json:"shoe_size"`
	EyeColor            string                      `gorm:"size:50" json:"eye_color"`
	HairColor           string                      `gorm:"size:50" json:"hair_color"`
	ImageURL            string                      `json:"image_url"`
	PortfolioImages     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"portfolio_images"`
	Categories          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"categories"`
	Experience          string                      `gorm:"type:text" json:"experience"`
	Journey             string                      `gorm:"type:text" json:"journey"`
	QuizScores          datatypes.JSON              `gorm:"type:jsonb;default:'{}'" json:"quiz_scores"`
	Distinctions        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"distinctions"`
	IsPublic            bool                        `gorm:"default:false" json:"is_public"`
	SourceApplicationID *uuid.UUID                  `gorm:"type:uuid;uniqueIndex" json:"source_application_id,omitempty"`
	UserID              *uuid.UUID                  `gorm:"type:uuid;index" json:"-"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

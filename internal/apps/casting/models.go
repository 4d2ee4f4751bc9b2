package casting

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Experience levels declared on the casting form.
const (
	ExperienceNone         = "none"
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceProfessional = "professional"
)

// ScoreRecord is one jury member's evaluation. Only Overall participates
// in aggregation.
type ScoreRecord struct {
	Overall float64 `json:"overall"`
	Comment string  `json:"comment,omitempty"`
}

// ScoreSheet maps a jury member id to their score record, one entry per
// member who has voted.
type ScoreSheet map[string]ScoreRecord

// CastingApplication is a candidate profile, submitted through the public
// form or registered on site at the venue. Rows are written individually
// with an optimistic version check, never as part of a whole-collection
// snapshot.
type CastingApplication struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"size:100;not null" json:"last_name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Email       string     `gorm:"size:255" json:"email"`
	Phone       string     `gorm:"size:50" json:"phone"`
	Nationality string     `gorm:"size:100" json:"nationality"`
	City        string     `gorm:"size:100" json:"city"`
	Gender      string     `gorm:"size:20" json:"gender"`

	HeightCm  int    `json:"height_cm"`
	WeightKg  int    `json:"weight_kg"`
	ChestCm   int    `json:"chest_cm"`
	WaistCm   int    `json:"waist_cm"`
	HipsCm    int    `json:"hips_cm"`
	ShoeSize  string `gorm:"size:20" json:"shoe_size"`
	EyeColor  string `gorm:"size:50" json:"eye_color"`
	HairColor string `gorm:"size:50" json:"hair_color"`

	Experience  string         `gorm:"size:20;default:'none'" json:"experience"`
	SocialLinks datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"social_links"`
	PortraitURL string         `json:"portrait_url"`
	FullBodyURL string         `json:"full_body_url"`
	ProfileURL  string         `json:"profile_url"`

	// SubmissionDate is set once at creation and never updated.
	SubmissionDate time.Time `gorm:"not null;index" json:"submission_date"`
	Status         string    `gorm:"size:30;not null;default:'Nouveau';index" json:"status"`
	// PassageNumber is assigned at most once, strictly increasing across
	// all applications, never reused after a deletion.
	PassageNumber *int                           `gorm:"uniqueIndex" json:"passage_number,omitempty"`
	Scores        datatypes.JSONType[ScoreSheet] `gorm:"type:jsonb" json:"scores"`

	// PromotedModelID is set only by a successful promotion. A status of
	// Accepté without it means the admin accepted manually.
	PromotedModelID *uuid.UUID `gorm:"type:uuid" json:"promoted_model_id,omitempty"`

	// Version is compared-and-swapped on every update.
	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name the way promotion matches against
// existing model profiles.
func (a *CastingApplication) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// ScoreSheetValue returns the decoded score sheet, never nil.
func (a *CastingApplication) ScoreSheetValue() ScoreSheet {
	sheet := a.Scores.Data()
	if sheet == nil {
		sheet = ScoreSheet{}
	}
	return sheet
}

func ValidExperience(s string) bool {
	switch s {
	case ExperienceNone, ExperienceBeginner, ExperienceIntermediate, ExperienceProfessional:
		return true
	}
	return false
}

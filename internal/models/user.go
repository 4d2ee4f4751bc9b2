package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the role middleware.
const (
	RoleAdmin = "admin"
	RoleJury  = "jury"
	RoleModel = "model"
)

// User is a login account for the admin, jury and model dashboards.
// Model accounts are created by the promotion engine with a generated
// matricule username; the plaintext initial password is never stored.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username    string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"size:20;default:'model'" json:"role"`
	DisplayName string         `gorm:"size:255" json:"display_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

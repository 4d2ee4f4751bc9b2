package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting is a key/value row for public site content (agency info,
// social links, contact details). Values are arbitrary JSON so the
// frontend decides the shape per key.
type SiteSetting struct {
	Key       string         `gorm:"size:100;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

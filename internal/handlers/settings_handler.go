package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsHandler serves the public site content (agency info, socials,
// contact) as a key/value map, with admin write access. Adapted from the
// per-app remote-config pattern: one settings namespace, arbitrary JSON
// values per key.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// GetSettings returns all settings as a key → value map (public).
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var settings []models.SiteSetting
	if err := h.db.Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}

	result := make(map[string]interface{}, len(settings))
	for _, s := range settings {
		var value interface{}
		if err := json.Unmarshal(s.Value, &value); err != nil {
			value = string(s.Value)
		}
		result[s.Key] = value
	}
	return c.JSON(result)
}

// SetKey upserts one setting (admin only). The body is stored verbatim
// as the key's JSON value.
func (h *SettingsHandler) SetKey(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Body must be valid JSON",
		})
	}

	setting := models.SiteSetting{
		Key:   key,
		Value: datatypes.JSON(append([]byte(nil), body...)),
	}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save setting",
		})
	}

	return c.JSON(fiber.Map{"message": "Setting saved", "key": key})
}

// DeleteKey removes one setting (admin only). Missing keys are a no-op.
func (h *SettingsHandler) DeleteKey(c *fiber.Ctx) error {
	key := c.Params("key")
	if err := h.db.Delete(&models.SiteSetting{}, "key = ?", key).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete setting",
		})
	}
	return c.JSON(fiber.Map{"message": "Setting deleted", "key": key})
}

// SeedDefaults inserts the baseline keys a fresh deployment needs,
// without overwriting existing values.
func (h *SettingsHandler) SeedDefaults() {
	defaults := map[string]string{
		"agency_info": `{"name":"PMM","tagline":"","about":""}`,
		"contact":     `{"email":"","phone":"","address":""}`,
		"socials":     `{"instagram":"","facebook":"","tiktok":""}`,
	}
	for key, value := range defaults {
		setting := models.SiteSetting{Key: key, Value: datatypes.JSON(value)}
		h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting)
	}
}

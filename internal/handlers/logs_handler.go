package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/models"
	"gorm.io/gorm"
)

// LogsHandler exposes the system_logs table to the admin dashboard.
type LogsHandler struct {
	db *gorm.DB
}

func NewLogsHandler(db *gorm.DB) *LogsHandler {
	return &LogsHandler{db: db}
}

func (h *LogsHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 200 {
		limit = 200
	}

	q := h.db.Model(&models.SystemLog{}).Order("timestamp DESC")
	if level := c.Query("level", ""); level != "" {
		q = q.Where("level = ?", level)
	}
	if area := c.Query("area", ""); area != "" {
		q = q.Where("area = ?", area)
	}

	var total int64
	q.Count(&total)

	var logs []models.SystemLog
	if err := q.Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch logs",
		})
	}

	return c.JSON(fiber.Map{
		"logs":   logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

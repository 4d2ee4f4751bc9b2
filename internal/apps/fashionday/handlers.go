package fashionday

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/dto"
	"gorm.io/datatypes"
)

type Handler struct {
	service *EventService
}

func NewHandler(service *EventService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPublished(c *fiber.Ctx) error {
	var (
		events []Event
		err    error
	)
	if c.QueryBool("upcoming", false) {
		events, err = h.service.Upcoming(time.Now())
	} else {
		events, err = h.service.ListPublished()
	}
	if err != nil {
		return internalError(c, "Failed to fetch events")
	}
	return c.JSON(fiber.Map{"events": events, "total": len(events)})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	event, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch event")
	}

	return c.JSON(fiber.Map{
		"event":        event,
		"casting_open": event.CastingOpen(time.Now()),
	})
}

func (h *Handler) ListAll(c *fiber.Ctx) error {
	events, err := h.service.ListAll()
	if err != nil {
		return internalError(c, "Failed to fetch events")
	}
	return c.JSON(fiber.Map{"events": events, "total": len(events)})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var event Event
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if event.Title == "" || event.StartsAt.IsZero() {
		return badRequest(c, "title and starts_at are required")
	}

	if err := h.service.Create(&event); err != nil {
		return internalError(c, "Failed to create event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

type UpdateEventRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Venue        *string    `json:"venue"`
	City         *string    `json:"city"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	CastingOpens *time.Time `json:"casting_opens"`
	CastingEnds  *time.Time `json:"casting_ends"`
	GalleryURLs  *[]string  `json:"gallery_urls"`
	Published    *bool      `json:"published"`
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Venue != nil {
		fields["venue"] = *req.Venue
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.StartsAt != nil {
		fields["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		fields["ends_at"] = *req.EndsAt
	}
	if req.CastingOpens != nil {
		fields["casting_opens"] = *req.CastingOpens
	}
	if req.CastingEnds != nil {
		fields["casting_ends"] = *req.CastingEnds
	}
	if req.GalleryURLs != nil {
		fields["gallery_urls"] = datatypes.NewJSONSlice(*req.GalleryURLs)
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}

	if err := h.service.Update(id, fields); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to update event")
	}
	return c.JSON(fiber.Map{"message": "Event updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	if err := h.service.Delete(id); err != nil {
		return internalError(c, "Failed to delete event")
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}

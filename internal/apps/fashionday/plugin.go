package fashionday

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin wires fashion-day events: the public program and the admin CRUD.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "fashionday" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Event{}}
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewEventService(db))
	router.Get("/events", h.ListPublished)
	router.Get("/events/:id", h.Get)
}

// RegisterRoutes registers nothing: events have no jury/model surface.
func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewEventService(db))
	router.Get("/events", h.ListAll)
	router.Post("/events", h.Create)
	router.Put("/events/:id", h.Update)
	router.Delete("/events/:id", h.Delete)
}

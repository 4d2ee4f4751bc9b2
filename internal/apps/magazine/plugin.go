package magazine

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin wires the magazine: public reading plus the admin editorial CRUD.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "magazine" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Article{}}
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewArticleService(db))
	router.Get("/magazine/articles", h.ListPublished)
	router.Get("/magazine/articles/:slug", h.GetBySlug)
}

// RegisterRoutes registers nothing: the magazine has no jury/model surface.
func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewArticleService(db))
	router.Get("/magazine/articles", h.ListAll)
	router.Post("/magazine/articles", h.Create)
	router.Put("/magazine/articles/:id", h.Update)
	router.Delete("/magazine/articles/:id", h.Delete)
}

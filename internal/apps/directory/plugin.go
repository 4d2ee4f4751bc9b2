package directory

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin wires the model directory: the public book, the model
// self-service dashboard and the admin roster screens.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "directory" }

// Models returns nil: profiles live in the shared models package because
// the casting promotion engine writes them too.
func (p *Plugin) Models() []interface{} { return nil }

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewModelService(db))
	router.Get("/models", h.ListPublic)
	router.Get("/models/:id", h.GetPublic)
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewModelService(db))
	router.Get("/profile", h.MyProfile)
	router.Put("/profile", h.UpdateMyProfile)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewModelService(db))
	router.Get("/models", h.ListAll)
	router.Get("/models/:id", h.AdminGet)
	router.Post("/models", h.AdminCreate)
	router.Put("/models/:id", h.AdminUpdate)
	router.Delete("/models/:id", h.AdminDelete)
}

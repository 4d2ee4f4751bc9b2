package casting

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin wires the casting pipeline: public submission, the jury scoring
// dashboard and the admin evaluation/promotion screens.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "casting" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&CastingApplication{},
	}
}

func (p *Plugin) handler(db *gorm.DB, cfg *config.Config) *Handler {
	store := NewApplicationStore(db)
	roster := NewRosterService(db)
	promo := NewPromotionService(db, cfg)
	return NewHandler(store, roster, promo)
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := p.handler(db, cfg)
	router.Post("/casting/applications", h.SubmitApplication)
}

// RegisterRoutes mounts the jury scoring routes.
func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := p.handler(db, cfg)
	router.Get("/casting/scoring", h.ListForScoring)
	router.Put("/casting/applications/:id/score", h.SubmitScore)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := p.handler(db, cfg)

	router.Get("/casting/applications", h.ListApplications)
	router.Get("/casting/applications/:id", h.GetApplication)
	router.Patch("/casting/applications/:id", h.PatchApplication)
	router.Delete("/casting/applications/:id", h.DeleteApplication)
	router.Put("/casting/applications/:id/status", h.SetStatus)
	router.Post("/casting/applications/:id/promote", h.Promote)
	router.Post("/casting/register", h.RegisterWalkIn)
	router.Get("/casting/ranking", h.Ranking)

	router.Get("/casting/jury", h.ListJury)
	router.Post("/casting/jury", h.CreateJury)
	router.Delete("/casting/jury/:id", h.DeleteJury)
}

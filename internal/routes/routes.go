package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pmmagency/agency-backend/internal/apps"
	"github.com/pmmagency/agency-backend/internal/config"
	"github.com/pmmagency/agency-backend/internal/handlers"
	"github.com/pmmagency/agency-backend/internal/middleware"
	"github.com/pmmagency/agency-backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	healthHandler *handlers.HealthHandler,
	settingsHandler *handlers.SettingsHandler,
	logsHandler *handlers.LogsHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Public site content
	api.Get("/settings", settingsHandler.GetSettings)

	// Auth is public with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Admin surface (JWT + admin role)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Get("/users", usersHandler.List)
	admin.Post("/users", usersHandler.Create)
	admin.Put("/users/:id/password", usersHandler.ResetPassword)
	admin.Delete("/users/:id", usersHandler.Delete)
	admin.Put("/settings/:key", settingsHandler.SetKey)
	admin.Delete("/settings/:key", settingsHandler.DeleteKey)
	admin.Get("/logs", logsHandler.List)

	// Authenticated plugin surface: jury and model dashboards share the
	// group; each handler checks the finer-grained role it needs.
	protected := api.Group("/p",
		middleware.JWTProtected(cfg),
		middleware.RoleRequired(db, models.RoleAdmin, models.RoleJury, models.RoleModel),
	)

	for _, p := range plugins {
		p.RegisterRoutes(protected, db, cfg)
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api, db, cfg)
		}
		if ap, ok := p.(apps.AdminPlugin); ok {
			ap.RegisterAdminRoutes(admin, db, cfg)
		}
	}
}

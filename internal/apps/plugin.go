package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature area must implement.
type Plugin interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the feature's authenticated routes on the
	// given Fiber group. The group already has JWT middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// PublicPlugin extends Plugin with unauthenticated route registration
// (marketing pages, public forms).
type PublicPlugin interface {
	Plugin

	// RegisterPublicRoutes mounts routes reachable without a token.
	RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with admin-only route registration.
type AdminPlugin interface {
	Plugin

	// RegisterAdminRoutes mounts admin-only routes on the given Fiber
	// group. The group has both JWT and admin middleware applied.
	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowlytix/distribution-service/internal/api/http/handlers"
	"github.com/flowlytix/distribution-service/internal/auth"
	"github.com/flowlytix/distribution-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Areas          *handlers.AreasHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)

	protectedAuth := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protectedAuth.Post("/logout", cfg.Auth.Logout)
	protectedAuth.Post("/password/change", cfg.Auth.ChangePassword)

	adminOnly := auth.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Post("", adminOnly, cfg.Users.Create)

	areas := app.Group("/areas", cfg.AuthMiddleware.Handle)
	areas.Get("", cfg.Areas.List)
	areas.Get("/:id", cfg.Areas.Get)
	areas.Post("", adminOnly, cfg.Areas.Create)
	areas.Patch("/:id", auth.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager), cfg.Areas.Update)
}

package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, h *Handler, authMW fiber.Handler) {
	api := app.Group("/api")
	api.Get("/health", h.Health)

	authGrp := api.Group("/auth")
	authGrp.Post("/register", h.Register)
	authGrp.Post("/login", h.Login)

	m := api.Group("/media", authMW)
	m.Post("/", h.Upload)
	m.Get("/search", h.Search)
	m.Get("/", h.List)
	m.Get("/:id", h.GetByID)
	m.Put("/:id", h.Update)
	m.Delete("/:id", h.Delete)
}

// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"postline/internal/app/http/accounts"
	"postline/internal/app/http/middleware"
	"postline/internal/app/http/posts"
	"postline/internal/ports/api"
	"postline/internal/ports/ratelimit"
	svc "postline/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// limiter может быть nil - тогда ограничение частоты запросов выключено.
func SetupRouter(
	app *fiber.App,
	accountUseCase api.AccountUseCase,
	postUseCase api.PostUseCase,
	tokenSvc svc.TokenService,
	limiter ratelimit.Limiter,
) {
	accountHandler := accounts.NewHandler(accountUseCase, tokenSvc)
	postHandler := posts.NewHandler(postUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	if limiter != nil {
		authRoutes.Use(middleware.NewRateLimitMiddleware(limiter))
	}
	authRoutes.Post("/signup", accountHandler.Signup)
	authRoutes.Post("/login", accountHandler.Login)

	// Защищенные маршруты.
	postRoutes := apiV1.Group("/posts")
	postRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	postRoutes.Post("/", postHandler.Create)
	postRoutes.Get("/", postHandler.List)
	postRoutes.Delete("/:id", postHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

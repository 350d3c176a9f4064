package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jordanveksler/stayspot-backend/internal/config"
	"github.com/jordanveksler/stayspot-backend/internal/handlers"
	"github.com/jordanveksler/stayspot-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	spotHandler *handlers.SpotHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Spots. The literal /spots/current route must register before the
	// parameterized /spots/:spotId one.
	api.Get("/spots", spotHandler.List)
	api.Get("/spots/current", middleware.JWTProtected(cfg), spotHandler.ListCurrent)
	api.Get("/spots/:spotId", spotHandler.Get)
	api.Post("/spots", middleware.JWTProtected(cfg), spotHandler.Create)
	api.Put("/spots/:spotId", middleware.JWTProtected(cfg), spotHandler.Update)
	api.Delete("/spots/:spotId", middleware.JWTProtected(cfg), spotHandler.Delete)
	api.Post("/spots/:spotId/images", middleware.JWTProtected(cfg), spotHandler.AddImage)

	// Reviews
	api.Get("/spots/:spotId/reviews", reviewHandler.ListForSpot)
	api.Post("/spots/:spotId/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Get("/reviews/current", middleware.JWTProtected(cfg), reviewHandler.ListCurrent)
	api.Put("/reviews/:reviewId", middleware.JWTProtected(cfg), reviewHandler.Update)
	api.Delete("/reviews/:reviewId", middleware.JWTProtected(cfg), reviewHandler.Delete)
	api.Post("/reviews/:reviewId/images", middleware.JWTProtected(cfg), reviewHandler.AddImage)

	// Images are deleted by their own id; ownership runs through the parent.
	api.Delete("/spot-images/:imageId", middleware.JWTProtected(cfg), spotHandler.DeleteImage)
	api.Delete("/review-images/:imageId", middleware.JWTProtected(cfg), reviewHandler.DeleteImage)
}

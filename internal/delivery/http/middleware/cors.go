package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// allowOrigins - список origin через запятую
func CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Authorization," + RequestIDHeader,
		ExposeHeaders:    RequestIDHeader,
		AllowCredentials: true,
	})
}

package authRoutes

import (
	authControllers "trainhub/controllers/auth"
	authValidators "trainhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", authValidators.Register(), authControllers.Register)
	api.Post("/login", authValidators.Login(), authControllers.Login)
}

package reportRoutes

import (
	reportControllers "trainhub/controllers/report"
	"trainhub/middleware"
	reportValidators "trainhub/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Post("/reports", reportValidators.SubmitReport(), reportControllers.SubmitReport)
	api.Get("/reports", reportValidators.QueryReports(), reportControllers.QueryReports)
}

package adminRoutes

import (
	adminControllers "trainhub/controllers/admin"
	statsControllers "trainhub/controllers/stats"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Get("/stats", statsControllers.GlobalStats)

	admin := api.Group("/admin")
	admin.Get("/stats", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin), statsControllers.AdminStats)
	admin.Get("/export/users", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin), adminControllers.ExportUsers)
	admin.Get("/export/reports", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin), adminControllers.ExportReports)
	admin.Get("/export/all", middleware.RequireRole(models.RoleAdmin), adminControllers.ExportAll)
}

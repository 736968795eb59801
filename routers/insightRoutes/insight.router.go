package insightRoutes

import (
	insightsControllers "trainhub/controllers/insights"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

func SetupInsightRoutes(app *fiber.App) {
	ai := app.Group("/api/ai", middleware.JWTMiddleware)

	ai.Get("/student-analysis", insightsControllers.StudentAnalysis)
	ai.Get("/batch-recommendations", insightsControllers.BatchRecommendations)
	ai.Get("/completion-prediction/:batchId", insightsControllers.CompletionPrediction)
	ai.Get("/class-insights/:batchId", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin), insightsControllers.ClassInsights)
}

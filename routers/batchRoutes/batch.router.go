package batchRoutes

import (
	batchControllers "trainhub/controllers/batch"
	"trainhub/middleware"
	"trainhub/models"
	batchValidators "trainhub/validators/batch"

	"github.com/gofiber/fiber/v2"
)

func SetupBatchRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Get("/batches", batchValidators.ListBatches(), batchControllers.GetAllBatches)
	api.Post("/batches", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin), batchValidators.CreateBatch(), batchControllers.CreateBatch)
	api.Get("/my-batches", batchControllers.GetMyBatches)
	api.Post("/batches/:id/enroll", batchValidators.BatchID(), batchControllers.EnrollInBatch)
	api.Get("/batches/:id/participants", batchValidators.BatchID(), batchControllers.GetParticipants)
}

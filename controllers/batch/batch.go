package batchController

import (
	"log"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	batchValidator "trainhub/validators/batch"

	"github.com/gofiber/fiber/v2"
)

// BatchSummary is a batch annotated with its current enrollment count
// and the resolved instructor name.
type BatchSummary struct {
	models.Batch
	EnrolledCount  int64  `json:"enrolled_count"`
	InstructorName string `json:"instructor_name"`
}

func CreateBatch(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	reqData, ok := c.Locals("validatedBatch").(*batchValidator.CreateBatchRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	status := reqData.Status
	if status == "" {
		status = models.BatchStatusUpcoming
	}
	maxParticipants := 100
	if reqData.MaxParticipants != nil {
		maxParticipants = *reqData.MaxParticipants
	}

	batch := models.Batch{
		Name:            reqData.Name,
		InstructorID:    userID,
		Duration:        reqData.Duration,
		StartDate:       reqData.StartDate,
		Status:          status,
		MaxParticipants: maxParticipants,
	}

	if err := database.Database.Db.Create(&batch).Error; err != nil {
		log.Printf("Error creating batch: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create batch!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Batch created successfully.", batch)
}

func GetAllBatches(c *fiber.Ctx) error {
	db := database.Database.Db

	statusFilter, _ := c.Locals("statusFilter").(string)

	query := db.Model(&models.Batch{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var batches []models.Batch
	if err := query.Order("start_date").Find(&batches).Error; err != nil {
		log.Printf("Error fetching batches: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch batches!")
	}

	// Batch sets are small (tens), per-row annotation queries are fine.
	summaries := make([]BatchSummary, len(batches))
	for i, b := range batches {
		var count int64
		db.Model(&models.Enrollment{}).Where("batch_id = ?", b.ID).Count(&count)

		var instructor models.User
		instructorName := ""
		if b.InstructorID != 0 {
			if err := db.First(&instructor, b.InstructorID).Error; err == nil {
				instructorName = instructor.Name
			}
		}

		summaries[i] = BatchSummary{Batch: b, EnrolledCount: count, InstructorName: instructorName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batches fetched successfully.", summaries)
}

func GetMyBatches(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Batch").Order("created_at desc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	type enrolledBatch struct {
		models.Batch
		EnrolledAt string `json:"enrolled_at"`
	}

	result := make([]enrolledBatch, len(enrollments))
	for i, e := range enrollments {
		result[i] = enrolledBatch{
			Batch:      e.Batch,
			EnrolledAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enrolled batches fetched successfully.", result)
}

func GetParticipants(c *fiber.Ctx) error {
	batchID, ok := c.Locals("batchID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var batch models.Batch
	if err := db.First(&batch, batchID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found!")
	}

	var participants []models.User
	if err := db.Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("enrollments.batch_id = ? AND enrollments.deleted_at IS NULL", batchID).
		Order("users.name").
		Find(&participants).Error; err != nil {
		log.Printf("Error fetching participants: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch participants!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Participants fetched successfully.", participants)
}

package batchController

import (
	"errors"
	"log"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errBatchNotFound   = errors.New("batch not found")
	errBatchFull       = errors.New("batch full")
	errAlreadyEnrolled = errors.New("already enrolled")
)

// EnrollInBatch inserts an enrollment under a capacity guard. The batch
// row is locked for the duration of the transaction so the count and the
// insert cannot interleave with a concurrent enroll on the same batch.
func EnrollInBatch(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	batchID, ok := c.Locals("batchID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var enrollment models.Enrollment

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var batch models.Batch
		if err := database.WithRowLock(tx).First(&batch, batchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBatchNotFound
			}
			return err
		}

		var existing models.Enrollment
		if err := tx.Where("user_id = ? AND batch_id = ?", userID, batch.ID).First(&existing).Error; err == nil {
			return errAlreadyEnrolled
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&models.Enrollment{}).Where("batch_id = ?", batch.ID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(batch.MaxParticipants) {
			return errBatchFull
		}

		enrollment = models.Enrollment{UserID: userID, BatchID: batch.ID}
		return tx.Create(&enrollment).Error
	})

	switch {
	case err == nil:
		return middleware.JsonResponse(c, fiber.StatusCreated, "Enrolled in batch successfully.", enrollment)
	case errors.Is(err, errBatchNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found!")
	case errors.Is(err, errBatchFull):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Batch is full!")
	case errors.Is(err, errAlreadyEnrolled), errors.Is(err, gorm.ErrDuplicatedKey):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this batch!")
	default:
		log.Printf("Error enrolling user %d in batch %d: %v", userID, batchID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll in batch!")
	}
}

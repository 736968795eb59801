package reportController

import (
	"errors"
	"log"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	reportValidator "trainhub/validators/report"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errNotEnrolled = errors.New("not enrolled")

// SubmitReport upserts the report keyed on (user, batch, date). A second
// submission for the same key overwrites the stored fields and advances
// UpdatedAt; the row id and CreatedAt are preserved.
func SubmitReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	reqData, ok := c.Locals("validatedReport").(*reportValidator.SubmitReportRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var report models.DailyReport

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := tx.Where("user_id = ? AND batch_id = ?", userID, reqData.BatchID).First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotEnrolled
			}
			return err
		}

		err := tx.Where("user_id = ? AND batch_id = ? AND report_date = ?",
			userID, reqData.BatchID, reqData.ReportDate).First(&report).Error
		if err == nil {
			updates := map[string]interface{}{
				"tasks_completed": reqData.TasksCompleted,
				"challenges":      reqData.Challenges,
				"hours_worked":    *reqData.HoursWorked,
				"notes":           reqData.Notes,
			}
			return tx.Model(&report).Updates(updates).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		report = models.DailyReport{
			UserID:         userID,
			BatchID:        reqData.BatchID,
			ReportDate:     reqData.ReportDate,
			TasksCompleted: reqData.TasksCompleted,
			Challenges:     reqData.Challenges,
			HoursWorked:    *reqData.HoursWorked,
			Notes:          reqData.Notes,
		}
		return tx.Create(&report).Error
	})

	switch {
	case err == nil:
		return middleware.JsonResponse(c, fiber.StatusOK, "Report submitted successfully.", report)
	case errors.Is(err, errNotEnrolled):
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Not enrolled in this batch!")
	default:
		log.Printf("Error submitting report for user %d: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit report!")
	}
}

// QueryReports lists reports with optional filters. Students only ever
// see their own rows; the user_id filter is overridden server-side, not
// trusted from the caller.
func QueryReports(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedReportQuery").(*reportValidator.QueryReportsRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	filterUserID := reqData.UserID
	if role == models.RoleStudent {
		filterUserID = userID
	}

	query := database.Database.Db.Model(&models.DailyReport{})
	if filterUserID != 0 {
		query = query.Where("user_id = ?", filterUserID)
	}
	if reqData.BatchID != 0 {
		query = query.Where("batch_id = ?", reqData.BatchID)
	}
	if reqData.StartDate != "" {
		query = query.Where("report_date >= ?", reqData.StartDate)
	}
	if reqData.EndDate != "" {
		query = query.Where("report_date <= ?", reqData.EndDate)
	}

	var reports []models.DailyReport
	if err := query.Order("report_date desc, created_at desc").Limit(reqData.Limit).Find(&reports).Error; err != nil {
		log.Printf("Error querying reports: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reports!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Reports fetched successfully.", reports)
}

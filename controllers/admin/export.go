package adminController

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

func sendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// ExportUsers dumps all users as CSV. Password hashes are never exported.
func ExportUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("id").Find(&users).Error; err != nil {
		log.Printf("Error fetching users for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export users!")
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			fmt.Sprint(u.ID),
			u.Username,
			u.Email,
			u.Name,
			u.Role,
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	header := []string{"id", "username", "email", "name", "role", "created_at"}
	return sendCSV(c, "users.csv", header, rows)
}

// ExportReports dumps all reports as CSV with resolved user and batch names.
func ExportReports(c *fiber.Ctx) error {
	var reports []models.DailyReport
	if err := database.Database.Db.Preload("User").Preload("Batch").
		Order("report_date desc, id").Find(&reports).Error; err != nil {
		log.Printf("Error fetching reports for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export reports!")
	}

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			fmt.Sprint(r.ID),
			r.User.Username,
			r.Batch.Name,
			r.ReportDate,
			r.TasksCompleted,
			r.Challenges,
			fmt.Sprint(r.HoursWorked),
			r.Notes,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	header := []string{"id", "username", "batch", "report_date", "tasks_completed",
		"challenges", "hours_worked", "notes", "created_at", "updated_at"}
	return sendCSV(c, "reports.csv", header, rows)
}

// ExportAll dumps every table as one JSON document.
func ExportAll(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	var batches []models.Batch
	var enrollments []models.Enrollment
	var reports []models.DailyReport

	if err := db.Order("id").Find(&users).Error; err != nil {
		log.Printf("Error fetching users for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export data!")
	}
	if err := db.Order("id").Find(&batches).Error; err != nil {
		log.Printf("Error fetching batches for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export data!")
	}
	if err := db.Order("id").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export data!")
	}
	if err := db.Order("id").Find(&reports).Error; err != nil {
		log.Printf("Error fetching reports for export: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export data!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Export generated successfully.", fiber.Map{
		"users":       users,
		"batches":     batches,
		"enrollments": enrollments,
		"reports":     reports,
	})
}

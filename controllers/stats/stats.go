package statsController

import (
	"log"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"golang.org/x/sync/errgroup"
)

// GlobalStats returns overall row counts. The counts are independent, so
// they are issued concurrently and joined before responding.
func GlobalStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var users, batches, enrollments, reports int64

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.User{}).Count(&users).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Batch{}).Count(&batches).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Enrollment{}).Count(&enrollments).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.DailyReport{}).Count(&reports).Error
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error gathering stats: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to gather stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Stats fetched successfully.", fiber.Map{
		"users":       users,
		"batches":     batches,
		"enrollments": enrollments,
		"reports":     reports,
	})
}

// AdminStats returns extended aggregates for teacher/admin dashboards.
func AdminStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var students, teachers, admins int64
	var activeBatches, upcomingBatches, completedBatches int64
	var reportsToday int64
	var avgHours float64

	today := now.BeginningOfDay().Format("2006-01-02")

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&students).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleTeacher).Count(&teachers).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Batch{}).Where("status = ?", models.BatchStatusActive).Count(&activeBatches).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Batch{}).Where("status = ?", models.BatchStatusUpcoming).Count(&upcomingBatches).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Batch{}).Where("status = ?", models.BatchStatusCompleted).Count(&completedBatches).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.DailyReport{}).Where("report_date = ?", today).Count(&reportsToday).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.DailyReport{}).
			Select("COALESCE(AVG(hours_worked), 0)").Scan(&avgHours).Error
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error gathering admin stats: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to gather stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Admin stats fetched successfully.", fiber.Map{
		"users": fiber.Map{
			"students": students,
			"teachers": teachers,
			"admins":   admins,
		},
		"batches": fiber.Map{
			"active":    activeBatches,
			"upcoming":  upcomingBatches,
			"completed": completedBatches,
		},
		"reports_today": reportsToday,
		"average_hours": avgHours,
	})
}

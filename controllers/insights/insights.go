package insightsController

import (
	"log"
	"math"
	"strconv"
	"time"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	"trainhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Engagement tiers for class insights.
const (
	EngagementHigh   = "High"
	EngagementMedium = "Medium"
	EngagementLow    = "Low"
)

// Performance tiers for student analysis.
const (
	TierExcellent        = "excellent"
	TierGood             = "good"
	TierAverage          = "average"
	TierNeedsImprovement = "needs improvement"
)

type reportStats struct {
	Count      int64
	TotalHours float64
	AvgHours   float64
}

func gatherReportStats(db *gorm.DB, where string, args ...interface{}) (reportStats, error) {
	var stats reportStats

	row := struct {
		Count int64
		Total float64
	}{}
	err := db.Model(&models.DailyReport{}).
		Select("COUNT(*) as count, COALESCE(SUM(hours_worked), 0) as total").
		Where(where, args...).
		Scan(&row).Error
	if err != nil {
		return stats, err
	}

	stats.Count = row.Count
	stats.TotalHours = row.Total
	if row.Count > 0 {
		stats.AvgHours = row.Total / float64(row.Count)
	}
	return stats, nil
}

// predictCompletion maps report count and average hours to a fixed
// probability bucket.
func predictCompletion(count int64, avgHours float64) int {
	switch {
	case count >= 15 && avgHours >= 6:
		return 95
	case count >= 10 && avgHours >= 5:
		return 80
	case count >= 5 && avgHours >= 4:
		return 60
	case count >= 1:
		return 40
	default:
		return 20
	}
}

func performanceTier(count int64, avgHours float64) string {
	switch {
	case count >= 15 && avgHours >= 6:
		return TierExcellent
	case count >= 10 && avgHours >= 5:
		return TierGood
	case count >= 5 && avgHours >= 3:
		return TierAverage
	default:
		return TierNeedsImprovement
	}
}

// consistencyPercent is reports divided by the inclusive day span between
// the first and last report, capped at 100.
func consistencyPercent(count int64, firstDate, lastDate string) float64 {
	if count == 0 {
		return 0
	}
	first, err1 := time.Parse("2006-01-02", firstDate)
	last, err2 := time.Parse("2006-01-02", lastDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	spanDays := int(last.Sub(first).Hours()/24) + 1
	if spanDays < 1 {
		spanDays = 1
	}
	return math.Min(float64(count)/float64(spanDays)*100, 100)
}

func buildRecommendations(stats reportStats, consistency float64) []string {
	var recs []string
	if stats.AvgHours < 4 {
		recs = append(recs, "Try to increase your daily working hours for better progress.")
	}
	if stats.Count < 5 {
		recs = append(recs, "Submit daily reports more regularly to build a track record.")
	}
	if consistency < 50 {
		recs = append(recs, "Report on more of your working days to improve consistency.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great work! Keep up your current pace.")
	}
	return recs
}

// StudentAnalysis returns rule-based progress metrics for the caller.
func StudentAnalysis(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	db := database.Database.Db

	stats, err := gatherReportStats(db, "user_id = ?", userID)
	if err != nil {
		log.Printf("Error gathering report stats: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to analyze reports!")
	}

	var firstDate, lastDate string
	var challenges []string
	if stats.Count > 0 {
		db.Model(&models.DailyReport{}).Where("user_id = ?", userID).
			Select("MIN(report_date)").Scan(&firstDate)
		db.Model(&models.DailyReport{}).Where("user_id = ?", userID).
			Select("MAX(report_date)").Scan(&lastDate)
		db.Model(&models.DailyReport{}).Where("user_id = ? AND challenges != ''", userID).
			Pluck("challenges", &challenges)
	}

	consistency := consistencyPercent(stats.Count, firstDate, lastDate)

	return middleware.JsonResponse(c, fiber.StatusOK, "Student analysis generated.", fiber.Map{
		"report_count":     stats.Count,
		"total_hours":      stats.TotalHours,
		"average_hours":    round2(stats.AvgHours),
		"consistency":      round2(consistency),
		"performance_tier": performanceTier(stats.Count, stats.AvgHours),
		"recommendations":  buildRecommendations(stats, consistency),
		"top_challenges":   utils.ExtractKeywords(challenges, 5),
	})
}

// BatchRecommendations lists up to 3 batches the caller is not enrolled
// in that still have remaining capacity.
func BatchRecommendations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	db := database.Database.Db

	var batches []models.Batch
	if err := db.Order("id").Find(&batches).Error; err != nil {
		log.Printf("Error fetching batches: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch batches!")
	}

	var enrolledIDs []uint
	db.Model(&models.Enrollment{}).Where("user_id = ?", userID).Pluck("batch_id", &enrolledIDs)
	enrolled := make(map[uint]bool, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = true
	}

	type recommendation struct {
		models.Batch
		SeatsLeft int64 `json:"seats_left"`
	}

	recommendations := []recommendation{}
	for _, b := range batches {
		if enrolled[b.ID] {
			continue
		}
		var count int64
		db.Model(&models.Enrollment{}).Where("batch_id = ?", b.ID).Count(&count)
		seatsLeft := int64(b.MaxParticipants) - count
		if seatsLeft <= 0 {
			continue
		}
		recommendations = append(recommendations, recommendation{Batch: b, SeatsLeft: seatsLeft})
		if len(recommendations) == 3 {
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batch recommendations generated.", recommendations)
}

// CompletionPrediction estimates the caller's completion probability for
// one batch.
func CompletionPrediction(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil || batchID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Batch id must be a positive integer!")
	}

	db := database.Database.Db

	var batch models.Batch
	if err := db.First(&batch, batchID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found!")
	}

	stats, err := gatherReportStats(db, "user_id = ? AND batch_id = ?", userID, batchID)
	if err != nil {
		log.Printf("Error gathering report stats: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute prediction!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Completion prediction generated.", fiber.Map{
		"batch_id":               batch.ID,
		"report_count":           stats.Count,
		"average_hours":          round2(stats.AvgHours),
		"completion_probability": predictCompletion(stats.Count, stats.AvgHours),
	})
}

// ClassInsights returns per-student aggregates for a batch.
func ClassInsights(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil || batchID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Batch id must be a positive integer!")
	}

	db := database.Database.Db

	var batch models.Batch
	if err := db.First(&batch, batchID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found!")
	}

	var enrollments []models.Enrollment
	if err := db.Where("batch_id = ?", batchID).Preload("User").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	type studentInsight struct {
		UserID         uint    `json:"user_id"`
		Name           string  `json:"name"`
		ReportCount    int64   `json:"report_count"`
		TotalHours     float64 `json:"total_hours"`
		AverageHours   float64 `json:"average_hours"`
		Engagement     string  `json:"engagement"`
		NeedsAttention bool    `json:"needsAttention"`
	}

	insights := make([]studentInsight, len(enrollments))
	for i, e := range enrollments {
		stats, err := gatherReportStats(db, "user_id = ? AND batch_id = ?", e.UserID, batchID)
		if err != nil {
			log.Printf("Error gathering report stats: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute insights!")
		}

		engagement := EngagementLow
		if stats.Count >= 15 {
			engagement = EngagementHigh
		} else if stats.Count >= 10 {
			engagement = EngagementMedium
		}

		insights[i] = studentInsight{
			UserID:         e.UserID,
			Name:           e.User.Name,
			ReportCount:    stats.Count,
			TotalHours:     stats.TotalHours,
			AverageHours:   round2(stats.AvgHours),
			Engagement:     engagement,
			NeedsAttention: stats.Count < 5,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Class insights generated.", fiber.Map{
		"batch":    batch,
		"students": insights,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package insightsController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"trainhub/config"
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	insightRoutes "trainhub/routers/insightRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	insightRoutes.SetupInsightRoutes(app)
	return app
}

func createUser(t *testing.T, role string) (models.User, string) {
	t.Helper()
	suffix := uuid.NewString()[:8]
	user := models.User{
		Username: "user_" + suffix,
		Email:    "user_" + suffix + "@example.com",
		Password: "irrelevant-hash",
		Name:     "User " + suffix,
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return user, token
}

func createBatch(t *testing.T, maxParticipants int) models.Batch {
	t.Helper()
	batch := models.Batch{
		Name:            "Batch " + uuid.NewString()[:8],
		Status:          models.BatchStatusActive,
		MaxParticipants: maxParticipants,
	}
	require.NoError(t, database.Database.Db.Create(&batch).Error)
	return batch
}

func enrollUser(t *testing.T, userID, batchID uint) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		UserID: userID, BatchID: batchID,
	}).Error)
}

// seedReports inserts count reports of hoursEach, one per day starting at
// 2026-01-01.
func seedReports(t *testing.T, userID, batchID uint, count int, hoursEach float64) {
	t.Helper()
	for i := 0; i < count; i++ {
		report := models.DailyReport{
			UserID:         userID,
			BatchID:        batchID,
			ReportDate:     fmt.Sprintf("2026-01-%02d", i+1),
			TasksCompleted: "daily work",
			HoursWorked:    hoursEach,
		}
		require.NoError(t, database.Database.Db.Create(&report).Error)
	}
}

func get(t *testing.T, app *fiber.App, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestStudentAnalysis(t *testing.T) {
	app := setup(t)
	user, token := createUser(t, models.RoleStudent)
	batch := createBatch(t, 100)
	enrollUser(t, user.ID, batch.ID)

	// 5 reports over 2026-01-01..05, then a gap: last report on 2026-01-10
	seedReports(t, user.ID, batch.ID, 4, 6)
	require.NoError(t, database.Database.Db.Create(&models.DailyReport{
		UserID: user.ID, BatchID: batch.ID, ReportDate: "2026-01-10",
		TasksCompleted: "late entry", HoursWorked: 6,
		Challenges: "debugging deadlocks, debugging flaky networking",
	}).Error)

	status, body := get(t, app, "/api/ai/student-analysis", token)
	require.Equal(t, http.StatusOK, status, "analysis failed: %v", body)

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 5, data["report_count"])
	assert.EqualValues(t, 30, data["total_hours"])
	assert.EqualValues(t, 6, data["average_hours"])
	// 5 reports over a 10-day inclusive span
	assert.EqualValues(t, 50, data["consistency"])
	assert.Equal(t, "average", data["performance_tier"])
	assert.NotEmpty(t, data["recommendations"])

	keywords := data["top_challenges"].([]interface{})
	require.NotEmpty(t, keywords)
	assert.Equal(t, "debugging", keywords[0].(map[string]interface{})["word"])
}

func TestStudentAnalysisNoReports(t *testing.T) {
	app := setup(t)
	_, token := createUser(t, models.RoleStudent)

	status, body := get(t, app, "/api/ai/student-analysis", token)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["report_count"])
	assert.EqualValues(t, 0, data["consistency"])
	assert.Equal(t, "needs improvement", data["performance_tier"])
}

func TestCompletionPredictionEndpoint(t *testing.T) {
	app := setup(t)
	batch := createBatch(t, 100)

	cases := []struct {
		count int
		hours float64
		want  float64
	}{
		{16, 6.5, 95},
		{12, 5.2, 80},
		{7, 4.1, 60},
		{2, 3, 40},
		{0, 0, 20},
	}
	for _, tc := range cases {
		user, token := createUser(t, models.RoleStudent)
		enrollUser(t, user.ID, batch.ID)
		seedReports(t, user.ID, batch.ID, tc.count, tc.hours)

		status, body := get(t, app,
			fmt.Sprintf("/api/ai/completion-prediction/%d", batch.ID), token)
		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, tc.want, data["completion_probability"],
			"count=%d hours=%v", tc.count, tc.hours)
	}
}

func TestCompletionPredictionUnknownBatch(t *testing.T) {
	app := setup(t)
	_, token := createUser(t, models.RoleStudent)

	status, _ := get(t, app, "/api/ai/completion-prediction/424242", token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBatchRecommendations(t *testing.T) {
	app := setup(t)
	user, token := createUser(t, models.RoleStudent)

	enrolled := createBatch(t, 100)
	enrollUser(t, user.ID, enrolled.ID)

	full := createBatch(t, 1)
	other, _ := createUser(t, models.RoleStudent)
	enrollUser(t, other.ID, full.ID)

	open1 := createBatch(t, 100)
	open2 := createBatch(t, 100)
	open3 := createBatch(t, 100)
	createBatch(t, 100) // fourth open batch, beyond the cap

	status, body := get(t, app, "/api/ai/batch-recommendations", token)
	require.Equal(t, http.StatusOK, status)

	recs := body["data"].([]interface{})
	require.Len(t, recs, 3, "capped at 3 recommendations")
	gotIDs := make([]float64, 0, 3)
	for _, r := range recs {
		gotIDs = append(gotIDs, r.(map[string]interface{})["ID"].(float64))
	}
	assert.Equal(t, []float64{float64(open1.ID), float64(open2.ID), float64(open3.ID)}, gotIDs)
}

func TestClassInsightsEngagementTiers(t *testing.T) {
	app := setup(t)
	_, teacherToken := createUser(t, models.RoleTeacher)
	batch := createBatch(t, 100)

	counts := []int{15, 14, 9, 4}
	users := make([]models.User, len(counts))
	for i, n := range counts {
		user, _ := createUser(t, models.RoleStudent)
		enrollUser(t, user.ID, batch.ID)
		seedReports(t, user.ID, batch.ID, n, 5)
		users[i] = user
	}

	status, body := get(t, app,
		fmt.Sprintf("/api/ai/class-insights/%d", batch.ID), teacherToken)
	require.Equal(t, http.StatusOK, status, "insights failed: %v", body)

	data := body["data"].(map[string]interface{})
	students := data["students"].([]interface{})
	require.Len(t, students, 4)

	byUser := make(map[float64]map[string]interface{}, len(students))
	for _, s := range students {
		entry := s.(map[string]interface{})
		byUser[entry["user_id"].(float64)] = entry
	}

	expect := []struct {
		user           models.User
		tier           string
		needsAttention bool
	}{
		{users[0], "High", false},
		{users[1], "Medium", false},
		{users[2], "Low", false},
		{users[3], "Low", true},
	}
	for _, e := range expect {
		entry := byUser[float64(e.user.ID)]
		require.NotNil(t, entry)
		assert.Equal(t, e.tier, entry["engagement"], "user %d", e.user.ID)
		assert.Equal(t, e.needsAttention, entry["needsAttention"], "user %d", e.user.ID)
	}
}

func TestClassInsightsForbiddenForStudent(t *testing.T) {
	app := setup(t)
	_, token := createUser(t, models.RoleStudent)
	batch := createBatch(t, 100)

	status, body := get(t, app,
		fmt.Sprintf("/api/ai/class-insights/%d", batch.ID), token)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Access denied!", body["error"])
}

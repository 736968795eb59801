package reportValidator

import (
	"strings"

	"trainhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var validate = validator.New()

// Result-size bound for report queries. The default keeps responses
// small; the maximum prevents a caller-supplied limit from turning into
// an unbounded scan.
const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 500
)

type SubmitReportRequest struct {
	BatchID        uint     `json:"batch_id" validate:"required"`
	ReportDate     string   `json:"report_date" validate:"omitempty,datetime=2006-01-02"`
	TasksCompleted string   `json:"tasks_completed" validate:"required"`
	Challenges     string   `json:"challenges"`
	HoursWorked    *float64 `json:"hours_worked" validate:"required,gte=0"`
	Notes          string   `json:"notes"`
}

type QueryReportsRequest struct {
	BatchID   uint   `query:"batch_id"`
	UserID    uint   `query:"user_id"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1"`
}

// SubmitReport validator middleware. A missing report_date defaults to
// today, which is the key the upsert uses for "today's report".
func SubmitReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReportRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errs := fieldErrors(validate.Struct(reqData)); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		if reqData.ReportDate == "" {
			reqData.ReportDate = now.BeginningOfDay().Format("2006-01-02")
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}

// QueryReports validates filters and clamps the limit.
func QueryReports() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QueryReportsRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		if errs := fieldErrors(validate.Struct(reqData)); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		if reqData.Limit == 0 {
			reqData.Limit = DefaultQueryLimit
		}
		if reqData.Limit > MaxQueryLimit {
			reqData.Limit = MaxQueryLimit
		}

		c.Locals("validatedReportQuery", reqData)
		return c.Next()
	}
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	errs := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errs[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		return errs
	}
	errs["request"] = "Invalid request data!"
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "datetime":
		return "Date must be in YYYY-MM-DD format!"
	case "gte":
		return "Value must be at least " + fe.Param() + "!"
	default:
		return "Invalid value!"
	}
}

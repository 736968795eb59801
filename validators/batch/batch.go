package batchValidator

import (
	"strconv"
	"strings"

	"trainhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateBatchRequest struct {
	Name            string `json:"name" validate:"required"`
	Duration        string `json:"duration"`
	StartDate       string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Status          string `json:"status" validate:"omitempty,oneof=active upcoming completed"`
	MaxParticipants *int   `json:"max_participants" validate:"omitempty,gt=0"`
}

// CreateBatch validator middleware
func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBatchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errs := fieldErrors(validate.Struct(reqData)); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

// ListBatches validates the optional status query filter.
func ListBatches() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if status != "" && status != "active" && status != "upcoming" && status != "completed" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Value must be one of: active upcoming completed",
			})
		}
		c.Locals("statusFilter", status)
		return c.Next()
	}
}

// BatchID validates the :id path parameter and stores it as a uint.
func BatchID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Batch id must be a positive integer!",
			})
		}
		c.Locals("batchID", uint(id))
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
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "gt":
		return "Value must be greater than " + fe.Param() + "!"
	default:
		return "Invalid value!"
	}
}

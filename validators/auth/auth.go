package authValidator

import (
	"strings"

	"trainhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errs := fieldErrors(validate.Struct(reqData)); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errs := fieldErrors(validate.Struct(reqData)); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedLogin", reqData)
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
	case "email":
		return "Invalid email!"
	case "min":
		return "Value is too short!"
	case "max":
		return "Value is too long!"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	default:
		return "Invalid value!"
	}
}

package authController

import (
	"errors"
	"log"

	"trainhub/config"
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	authValidator "trainhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Check if username or email already exists
	var existing models.User
	if err := db.Where("username = ? OR email = ?", reqData.Username, reqData.Email).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Username or email already registered!")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking existing user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleStudent
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Name:     reqData.Name,
		Role:     role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Username or email already registered!")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Unknown username and wrong password return the same message so the
	// endpoint cannot be used to enumerate usernames.
	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

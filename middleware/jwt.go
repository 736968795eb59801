package middleware

import (
	"fmt"
	"strings"
	"time"

	"trainhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed token embedding the user's identity and
// role. The role is read back from the token on every request, so role
// changes only take effect after re-authentication.
func GenerateJWT(userID uint, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token")
	}

	// JWT number claims decode as float64
	userID, ok := claims["id"].(float64)
	if !ok {
		return ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	c.Locals("userId", uint(userID))
	c.Locals("username", username)
	c.Locals("role", role)

	return c.Next()
}

// RequireRole returns a middleware that rejects callers whose
// token-embedded role is not in the allowed set.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Access token required")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return ErrorResponse(c, fiber.StatusForbidden, "Access denied!")
	}
}

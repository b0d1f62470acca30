package handlers

import (
	"strings"

	"advisory-service/internal/services"
	"advisory-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type Middleware struct {
	jwtService *services.JWTService
}

func NewMiddleware(jwtService *services.JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// RequireAuth validates the bearer token and stores the caller identity in
// request locals. Token issuance belongs to the identity provider; this
// service only verifies.
func (m *Middleware) RequireAuth(c fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("MISSING_TOKEN", "authorization header required"))
	}

	tokenString := authHeader
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[7:]
	}

	claims, err := m.jwtService.VerifyToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("INVALID_TOKEN", "token validation failed"))
	}

	c.Locals("user_id", claims.UserID)
	return c.Next()
}

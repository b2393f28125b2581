package middleware

import (
	"strings"

	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	blacklisted, err := utils.IsTokenBlacklisted(tokenStr)
	if err == nil && blacklisted {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been revoked"})
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("refId", claims.RefID)

	return c.Next()
}

// RequireManager ใช้ต่อท้าย AuthJWT กับ route ที่เป็นของ manager เท่านั้น
func RequireManager(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleManager {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Manager role required"})
	}
	return c.Next()
}

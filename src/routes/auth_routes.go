package routes

import (
	"Backend-AttendEase-007/src/controllers"
	"Backend-AttendEase-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes กำหนดเส้นทางสำหรับ Auth API
func AuthRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}

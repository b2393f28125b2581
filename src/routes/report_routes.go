package routes

import (
	"Backend-AttendEase-007/src/controllers"
	"Backend-AttendEase-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReportRoutes กำหนดเส้นทางสำหรับ Report API (manager เท่านั้น)
func ReportRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthJWT, middleware.RequireManager)

	reportRoutes.Get("/export", controllers.ExportReport)
}

package routes

import (
	"Backend-AttendEase-007/src/controllers"
	"Backend-AttendEase-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// DashboardRoutes กำหนดเส้นทางสำหรับ Manager Dashboard API
func DashboardRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthJWT, middleware.RequireManager)

	dashboardRoutes.Get("/summary", controllers.GetDailySummary)
	dashboardRoutes.Get("/weekly", controllers.GetWeeklyTrend)
}

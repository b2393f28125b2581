package routes

import (
	"Backend-AttendEase-007/src/controllers"
	"Backend-AttendEase-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AttendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func AttendanceRoutes(router fiber.Router) {
	attendanceRoutes := router.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthJWT)

	attendanceRoutes.Post("/checkin", controllers.CheckIn)
	attendanceRoutes.Post("/checkout", controllers.CheckOut)
	attendanceRoutes.Get("/today", controllers.GetTodayStatus)
	attendanceRoutes.Get("/stats", controllers.GetMonthlyStats)
	attendanceRoutes.Get("/history", controllers.GetHistory)
	attendanceRoutes.Get("/recent", controllers.GetRecentHistory)

	// หน้า all-employees ของ manager
	attendanceRoutes.Get("/by-date", middleware.RequireManager, controllers.GetAttendanceByDate)
}

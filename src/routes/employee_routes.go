package routes

import (
	"Backend-AttendEase-007/src/controllers"
	"Backend-AttendEase-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// EmployeeRoutes กำหนดเส้นทางสำหรับ Employee API
func EmployeeRoutes(router fiber.Router) {
	employeeRoutes := router.Group("/employees")
	employeeRoutes.Use(middleware.AuthJWT)

	employeeRoutes.Get("/roster", middleware.RequireManager, controllers.GetRoster)
	employeeRoutes.Get("/", controllers.GetEmployees)
	employeeRoutes.Get("/:id", controllers.GetEmployeeByID)

	employeeRoutes.Post("/", middleware.RequireManager, controllers.CreateEmployee)
	employeeRoutes.Put("/:id", middleware.RequireManager, controllers.UpdateEmployee)
	employeeRoutes.Delete("/:id", middleware.RequireManager, controllers.DeleteEmployee)
}

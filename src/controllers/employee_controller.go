package controllers

import (
	"net/http"
	"strconv"

	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/employees"
	"Backend-AttendEase-007/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=employee manager"`
}

// CreateEmployee godoc
// @Summary Create an employee profile
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /employees [post]
func CreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	employee := models.Employee{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Role:       req.Role,
	}
	if err := employees.CreateEmployee(c.Context(), &employee); err != nil {
		if err == employees.ErrDuplicateCode {
			return utils.HandleError(c, http.StatusConflict, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(employee)
}

// GetEmployees godoc
// @Summary Get employees
// @Description Paginated employee list with search on name / employeeId / department
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employees [get]
func GetEmployees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	employeeList, total, err := employees.GetEmployees(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.NewPaginatedResponse(employeeList, total, params))
}

// GetRoster godoc
// @Summary Get the employee roster
// @Description All active employees with role=employee, in roster order
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/roster [get]
func GetRoster(c *fiber.Ctx) error {
	roster, err := employees.Roster(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"total":  len(roster),
		"roster": roster,
	})
}

// GetEmployeeByID godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [get]
func GetEmployeeByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := employees.GetEmployeeByID(c.Context(), id)
	if err != nil {
		if err == employees.ErrEmployeeNotFound {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(employee)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param body body EmployeeRequest true "Employee data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [put]
func UpdateEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	employee := models.Employee{
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
	}
	if err := employees.UpdateEmployee(c.Context(), id, &employee); err != nil {
		if err == employees.ErrEmployeeNotFound {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Employee updated successfully"})
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func DeleteEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	if err := employees.DeleteEmployee(c.Context(), id); err != nil {
		if err == employees.ErrEmployeeNotFound {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

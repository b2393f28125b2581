package controllers

import (
	"net/http"
	"strings"

	"Backend-AttendEase-007/src/services"
	"Backend-AttendEase-007/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	EmployeeID string `json:"employeeId" validate:"required"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=employee manager"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new employee account
// @Description Create an employee profile and its login user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	if req.Role == "" {
		req.Role = "employee"
	}

	user, err := services.RegisterUser(c.Context(), req.Name, req.Email, req.Password, req.EmployeeID, req.Department, req.Role)
	if err != nil {
		if err == services.ErrEmailTaken {
			return utils.HandleError(c, http.StatusConflict, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Login
// @Description Authenticate and receive access + refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} services.AuthTokens
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	tokens, err := services.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return utils.HandleError(c, http.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(tokens)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body map[string]string true "userId and refreshToken"
// @Success 200 {object} services.AuthTokens
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.RefreshToken == "" {
		return utils.HandleError(c, http.StatusBadRequest, "userId and refreshToken are required")
	}

	tokens, err := services.RefreshTokens(c.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid or expired refresh token")
	}

	return c.JSON(tokens)
}

// Logout godoc
// @Summary Logout
// @Description Revoke the refresh token and blacklist the access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	if err := services.LogoutUser(userID, token); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/dashboard"
	"Backend-AttendEase-007/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDailySummary godoc
// @Summary Get manager dashboard summary for a date
// @Description Roster-wide present/late counts plus absence derived from employees with no record
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (yyyy-MM-dd), defaults to today"
// @Success 200 {object} models.DailySummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /dashboard/summary [get]
func GetDailySummary(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}

	summary, err := dashboard.ManagerSummary(c.Context(), date)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(summary)
}

// GetWeeklyTrend godoc
// @Summary Get weekly attendance trend
// @Description Per-day present/absent/late counts for the last N days, oldest first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Reference date (yyyy-MM-dd), defaults to today"
// @Param days query int false "Window size (default 7)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /dashboard/weekly [get]
func GetWeeklyTrend(c *fiber.Ctx) error {
	dateStr, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}
	referenceDate, _ := time.Parse(models.DateLayout, dateStr)

	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days <= 0 || days > 31 {
		days = 7
	}

	trend, err := dashboard.WeeklyTrend(c.Context(), referenceDate, days)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"days": days, "trend": trend})
}

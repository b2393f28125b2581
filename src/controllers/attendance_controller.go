package controllers

import (
	"net/http"
	"strconv"
	"time"

	"Backend-AttendEase-007/src/jobs"
	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/attendance"
	"Backend-AttendEase-007/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// employeeID ดึง Employee ID ของผู้ใช้ที่ login อยู่จาก JWT claims
func employeeID(c *fiber.Ctx) (primitive.ObjectID, error) {
	refID, _ := c.Locals("refId").(string)
	return primitive.ObjectIDFromHex(refID)
}

// parseDateQuery อ่าน query วันที่ (yyyy-MM-dd) — ไม่ส่งมาใช้ fallback
func parseDateQuery(c *fiber.Ctx, key, fallback string) (string, bool) {
	value := c.Query(key, fallback)
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return "", false
	}
	return value, true
}

// CheckIn godoc
// @Summary Check in for today
// @Description Create today's attendance record (status is fixed to present at creation)
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/checkin [post]
func CheckIn(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	now := time.Now()
	record, err := attendance.CheckIn(c.Context(), userID, now)
	if err != nil {
		if err == attendance.ErrAlreadyCheckedIn {
			return utils.HandleError(c, http.StatusConflict, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	jobs.EnqueueDashboardSnapshot(record.Date)

	// derive stats ใหม่จาก dataset เดียว ไม่ต้องให้ client ยิง fetch ซ้ำ 3 รอบ
	stats, err := monthlyStatsFor(c, userID, now)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Checked in successfully",
		"record":  record,
		"stats":   stats,
	})
}

// CheckOut godoc
// @Summary Check out for today
// @Description Close today's record with checkOutTime and frozen totalHours
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /attendance/checkout [post]
func CheckOut(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	now := time.Now()
	record, err := attendance.CheckOut(c.Context(), userID, now)
	if err != nil {
		switch err {
		case attendance.ErrNotCheckedIn:
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		case attendance.ErrAlreadyCheckedOut:
			return utils.HandleError(c, http.StatusConflict, err.Error())
		case attendance.ErrInvalidDuration:
			// ข้อมูลเพี้ยน (checkOut < checkIn) — รายงานตรง ๆ ไม่ clamp
			return utils.HandleError(c, http.StatusUnprocessableEntity, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	jobs.EnqueueDashboardSnapshot(record.Date)

	stats, err := monthlyStatsFor(c, userID, now)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Checked out successfully",
		"record":  record,
		"stats":   stats,
	})
}

func monthlyStatsFor(c *fiber.Ctx, userID primitive.ObjectID, referenceDate time.Time) (models.MonthlyStats, error) {
	records, err := attendance.MonthRecords(c.Context(), userID, referenceDate)
	if err != nil {
		return models.MonthlyStats{}, err
	}
	return attendance.MonthlyStats(records, referenceDate), nil
}

// GetTodayStatus godoc
// @Summary Get today's attendance status
// @Description Returns today's record, or record=null when there is none (absent so far)
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (yyyy-MM-dd), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/today [get]
func GetTodayStatus(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	date, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}

	record, err := attendance.TodayStatus(c.Context(), userID, date)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"date": date, "record": record})
}

// GetMonthlyStats godoc
// @Summary Get monthly attendance stats
// @Description Present/absent/late counts and total hours for the month containing the reference date
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Reference date (yyyy-MM-dd), defaults to today"
// @Success 200 {object} models.MonthlyStats
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/stats [get]
func GetMonthlyStats(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	dateStr, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}
	referenceDate, _ := time.Parse(models.DateLayout, dateStr)

	stats, err := monthlyStatsFor(c, userID, referenceDate)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(stats)
}

// GetHistory godoc
// @Summary Get month attendance history
// @Description All records of the month containing the reference date, for the calendar view
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Reference date (yyyy-MM-dd), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/history [get]
func GetHistory(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	dateStr, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}
	referenceDate, _ := time.Parse(models.DateLayout, dateStr)

	records, err := attendance.MonthRecords(c.Context(), userID, referenceDate)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	start, end := attendance.MonthRange(referenceDate)
	return c.JSON(fiber.Map{
		"start":   start,
		"end":     end,
		"records": records,
	})
}

// GetRecentHistory godoc
// @Summary Get recent attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of records (default 7)"
// @Success 200 {object} map[string]interface{}
// @Router /attendance/recent [get]
func GetRecentHistory(c *fiber.Ctx) error {
	userID, err := employeeID(c)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid employee reference")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "7"))
	if limit <= 0 || limit > 100 {
		limit = 7
	}

	records, err := attendance.RecentHistory(c.Context(), userID, limit)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"records": records})
}

// GetAttendanceByDate godoc
// @Summary Get all employees' attendance for a date
// @Description Records of one day joined with employee profiles, newest check-in first
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (yyyy-MM-dd), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /attendance/by-date [get]
func GetAttendanceByDate(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date", time.Now().Format(models.DateLayout))
	if !ok {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
	}

	records, err := attendance.RecordsForDateWithEmployee(c.Context(), date)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"date": date, "records": records})
}

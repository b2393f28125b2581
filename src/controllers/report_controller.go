package controllers

import (
	"net/http"

	"Backend-AttendEase-007/src/services/reports"
	"Backend-AttendEase-007/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportReport godoc
// @Summary Export attendance report
// @Description Export all attendance in a date range as CSV (default) or XLSX.
// @Description An empty range is reported as 404 "no data found" — no file is produced.
// @Tags reports
// @Produce octet-stream
// @Security BearerAuth
// @Param start query string true "Start date (yyyy-MM-dd)"
// @Param end query string true "End date (yyyy-MM-dd)"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/export [get]
func ExportReport(c *fiber.Ctx) error {
	start, okStart := parseDateQuery(c, "start", "")
	end, okEnd := parseDateQuery(c, "end", "")
	if !okStart || !okEnd {
		return utils.HandleError(c, http.StatusBadRequest, "start and end are required in yyyy-MM-dd format")
	}
	if end < start {
		return utils.HandleError(c, http.StatusBadRequest, "end date must not be before start date")
	}

	format := c.Query("format", "csv")
	if format != "csv" && format != "xlsx" {
		return utils.HandleError(c, http.StatusBadRequest, "format must be csv or xlsx")
	}

	fileName, data, err := reports.Export(c.Context(), start, end, format)
	if err != nil {
		if err == reports.ErrNoData {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	contentType := "text/csv; charset=utf-8"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}

package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"Backend-AttendEase-007/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func joinedRecord(name, empID, dept, date, status string, checkIn, checkOut *time.Time, hours float64) models.AttendanceWithEmployee {
	return models.AttendanceWithEmployee{
		AttendanceRecord: models.AttendanceRecord{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			Date:         date,
			CheckInTime:  checkIn,
			CheckOutTime: checkOut,
			Status:       status,
			TotalHours:   hours,
		},
		Employee: models.Employee{
			ID:         primitive.NewObjectID(),
			Name:       name,
			EmployeeID: empID,
			Department: dept,
			Role:       models.RoleEmployee,
		},
	}
}

func TestProjectRows(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	t.Run("FormatsTimesAndFields", func(t *testing.T) {
		rows := ProjectRows([]models.AttendanceWithEmployee{
			joinedRecord("Somchai J.", "EMP001", "Engineering", "2025-03-10", models.StatusPresent, &checkIn, &checkOut, 8.5),
		})

		assert.Len(t, rows, 1)
		assert.Equal(t, "2025-03-10", rows[0].Date)
		assert.Equal(t, "Somchai J.", rows[0].EmployeeName)
		assert.Equal(t, "EMP001", rows[0].EmployeeID)
		assert.Equal(t, "Engineering", rows[0].Department)
		assert.Equal(t, "present", rows[0].Status)
		assert.Equal(t, "09:00 AM", rows[0].CheckIn)
		assert.Equal(t, "05:30 PM", rows[0].CheckOut)
		assert.Equal(t, 8.5, rows[0].TotalHours)
	})

	t.Run("DashPlaceholderWhenTimesMissing", func(t *testing.T) {
		rows := ProjectRows([]models.AttendanceWithEmployee{
			joinedRecord("A", "EMP002", "HR", "2025-03-10", models.StatusPresent, &checkIn, nil, 0),
			joinedRecord("B", "EMP003", "HR", "2025-03-10", models.StatusAbsent, nil, nil, 0),
		})

		assert.Equal(t, "09:00 AM", rows[0].CheckIn)
		assert.Equal(t, "-", rows[0].CheckOut)
		assert.Equal(t, "-", rows[1].CheckIn)
		assert.Equal(t, "-", rows[1].CheckOut)
	})

	t.Run("EmptyInputGivesEmptyRows", func(t *testing.T) {
		assert.Empty(t, ProjectRows(nil))
	})
}

func TestBuildCSV(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC)

	t.Run("HeaderOrderIsExact", func(t *testing.T) {
		data, err := BuildCSV(nil)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "Date,Employee Name,Employee ID,Department,Status,Check In,Check Out,Total Hours", lines[0])
	})

	t.Run("RowValuesFollowHeaderOrder", func(t *testing.T) {
		rows := ProjectRows([]models.AttendanceWithEmployee{
			joinedRecord("Somchai J.", "EMP001", "Engineering", "2025-03-10", models.StatusLate, &checkIn, nil, 0),
		})
		data, err := BuildCSV(rows)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "2025-03-10,Somchai J.,EMP001,Engineering,late,08:45 AM,-,0", lines[1])
	})

	t.Run("QuotesFieldsWithEmbeddedComma", func(t *testing.T) {
		rows := []models.ReportRow{{
			Date:         "2025-03-10",
			EmployeeName: "Somchai, Jr.",
			EmployeeID:   "EMP001",
			Department:   "R&D, Platform",
			Status:       "present",
			CheckIn:      "-",
			CheckOut:     "-",
			TotalHours:   7.25,
		}}
		data, err := BuildCSV(rows)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, `2025-03-10,"Somchai, Jr.",EMP001,"R&D, Platform",present,-,-,7.25`, lines[1])
	})
}

func TestBuildXLSX(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := ProjectRows([]models.AttendanceWithEmployee{
		joinedRecord("Somchai J.", "EMP001", "Engineering", "2025-03-10", models.StatusPresent, &checkIn, nil, 0),
	})

	data, err := BuildXLSX(rows)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Date", header)

	name, err := f.GetCellValue(sheet, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Somchai J.", name)
}

func TestFileName(t *testing.T) {
	assert.Equal(t,
		"attendance_report_2025-03-01_to_2025-03-31.csv",
		FileName("2025-03-01", "2025-03-31", "csv"))
	assert.Equal(t,
		"attendance_report_2025-03-01_to_2025-03-31.xlsx",
		FileName("2025-03-01", "2025-03-31", "xlsx"))
}

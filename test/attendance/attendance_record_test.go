package attendance

import (
	"testing"
	"time"

	"Backend-AttendEase-007/src/models"
	attendanceService "Backend-AttendEase-007/src/services/attendance"
	"Backend-AttendEase-007/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAttendanceRecordLifecycle(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendance Record Lifecycle Tests")
	defer suiteResult.PrintSummary()

	// NO_RECORD → CHECKED_IN: record เกิดครั้งเดียวตอน check-in status fix เป็น present
	t.Run("TestCheckedInState", func(t *testing.T) {
		timer := test.NewTestTimer("Checked In State")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Checked In State",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Checked In State", duration, 100*time.Microsecond)
		}()

		checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		record := models.AttendanceRecord{
			ID:          primitive.NewObjectID(),
			UserID:      primitive.NewObjectID(),
			Date:        "2025-03-10",
			CheckInTime: &checkIn,
			Status:      models.StatusPresent,
			TotalHours:  0,
		}

		assert.Equal(t, models.StatusPresent, record.Status)
		assert.NotNil(t, record.CheckInTime)
		assert.Nil(t, record.CheckOutTime)
		assert.Equal(t, 0.0, record.TotalHours)
	})

	// CHECKED_IN → CHECKED_OUT: เพิ่ม checkOutTime + totalHours แล้ว freeze
	t.Run("TestCheckedOutState", func(t *testing.T) {
		timer := test.NewTestTimer("Checked Out State")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Checked Out State",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Checked Out State", duration, 100*time.Microsecond)
		}()

		checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		checkOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

		hours, err := attendanceService.WorkedHours(checkIn, checkOut)
		assert.NoError(t, err)

		record := models.AttendanceRecord{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			Date:         "2025-03-10",
			CheckInTime:  &checkIn,
			CheckOutTime: &checkOut,
			Status:       models.StatusPresent,
			TotalHours:   hours,
		}

		// checkOutTime ต้องมาพร้อม checkInTime และไม่ย้อนเวลา
		assert.NotNil(t, record.CheckInTime)
		assert.NotNil(t, record.CheckOutTime)
		assert.False(t, record.CheckOutTime.Before(*record.CheckInTime))
		assert.Equal(t, 8.5, record.TotalHours)
	})

	t.Run("TestManagerDashboardScenario", func(t *testing.T) {
		timer := test.NewTestTimer("Manager Dashboard Scenario")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Manager Dashboard Scenario",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Manager Dashboard Scenario", duration, 1*time.Millisecond)
		}()

		roster := []models.Employee{
			{ID: primitive.NewObjectID(), Name: "A", EmployeeID: "EMP001", Role: models.RoleEmployee},
			{ID: primitive.NewObjectID(), Name: "B", EmployeeID: "EMP002", Role: models.RoleEmployee},
			{ID: primitive.NewObjectID(), Name: "C", EmployeeID: "EMP003", Role: models.RoleEmployee},
			{ID: primitive.NewObjectID(), Name: "D", EmployeeID: "EMP004", Role: models.RoleEmployee},
			{ID: primitive.NewObjectID(), Name: "E", EmployeeID: "EMP005", Role: models.RoleEmployee},
		}
		records := []models.AttendanceRecord{
			{UserID: roster[0].ID, Date: "2025-03-10", Status: models.StatusPresent},
			{UserID: roster[1].ID, Date: "2025-03-10", Status: models.StatusPresent},
			{UserID: roster[2].ID, Date: "2025-03-10", Status: models.StatusLate},
		}

		summary := attendanceService.ReconcileRoster("2025-03-10", roster, records)
		assert.Equal(t, 5, summary.TotalEmployees)
		assert.Equal(t, 2, summary.PresentToday)
		assert.Equal(t, 1, summary.LateToday)
		assert.Equal(t, 2, summary.AbsentToday)
		assert.Equal(t, []string{"EMP004", "EMP005"}, []string{
			summary.AbsentEmployees[0].EmployeeID,
			summary.AbsentEmployees[1].EmployeeID,
		})
	})
}

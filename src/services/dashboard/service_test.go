package dashboard

import (
	"errors"
	"testing"
	"time"

	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/attendance"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func dayRecord(date, status string) models.AttendanceRecord {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return models.AttendanceRecord{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		Date:        date,
		CheckInTime: &checkIn,
		Status:      status,
	}
}

func TestTrendOverDays(t *testing.T) {
	// 2025-03-10 เป็นวันจันทร์
	referenceDate := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	byDate := map[string][]models.AttendanceRecord{
		"2025-03-04": {dayRecord("2025-03-04", models.StatusPresent)},
		"2025-03-07": {
			dayRecord("2025-03-07", models.StatusPresent),
			dayRecord("2025-03-07", models.StatusLate),
		},
		"2025-03-10": {
			dayRecord("2025-03-10", models.StatusPresent),
			dayRecord("2025-03-10", models.StatusAbsent),
		},
	}
	fetch := func(date string) ([]models.AttendanceRecord, error) {
		return byDate[date], nil
	}

	t.Run("FixedLengthOldestFirst", func(t *testing.T) {
		trend, err := TrendOverDays(referenceDate, 7, fetch)
		assert.NoError(t, err)
		assert.Len(t, trend, 7)

		// วันเก่าสุดก่อน ไล่ทีละวันจนถึงวันอ้างอิง
		assert.Equal(t, "2025-03-04", trend[0].Date)
		assert.Equal(t, "2025-03-10", trend[6].Date)
		for i := 1; i < len(trend); i++ {
			assert.Less(t, trend[i-1].Date, trend[i].Date)
		}
	})

	t.Run("DayLabelsMatchWeekday", func(t *testing.T) {
		trend, err := TrendOverDays(referenceDate, 7, fetch)
		assert.NoError(t, err)

		assert.Equal(t, "Tue", trend[0].Day) // 2025-03-04
		assert.Equal(t, "Fri", trend[3].Day) // 2025-03-07
		assert.Equal(t, "Mon", trend[6].Day) // 2025-03-10
	})

	t.Run("EachDayCountedIndependently", func(t *testing.T) {
		trend, err := TrendOverDays(referenceDate, 7, fetch)
		assert.NoError(t, err)

		// วันไม่มี record ต้องเป็นศูนย์ทุกช่อง ไม่ใช่ถูกข้าม
		assert.Equal(t, "2025-03-05", trend[1].Date)
		assert.Equal(t, models.DailyTrendPoint{Day: "Wed", Date: "2025-03-05"}, trend[1])

		assert.Equal(t, 1, trend[0].Present)
		assert.Equal(t, 1, trend[3].Present)
		assert.Equal(t, 1, trend[3].Late)
		assert.Equal(t, 1, trend[6].Present)
		assert.Equal(t, 1, trend[6].Absent)
	})

	t.Run("SingleDayWindow", func(t *testing.T) {
		trend, err := TrendOverDays(referenceDate, 1, fetch)
		assert.NoError(t, err)
		assert.Len(t, trend, 1)
		assert.Equal(t, "2025-03-10", trend[0].Date)
	})

	t.Run("FetchErrorPropagates", func(t *testing.T) {
		boom := errors.New("store unavailable")
		_, err := TrendOverDays(referenceDate, 7, func(string) ([]models.AttendanceRecord, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	roster := []models.Employee{
		{ID: primitive.NewObjectID(), Name: "A", EmployeeID: "EMP001", Department: "Engineering", Role: models.RoleEmployee},
		{ID: primitive.NewObjectID(), Name: "B", EmployeeID: "EMP002", Department: "HR", Role: models.RoleEmployee},
		{ID: primitive.NewObjectID(), Name: "C", EmployeeID: "EMP003", Department: "HR", Role: models.RoleEmployee},
	}
	records := []models.AttendanceRecord{
		{ID: primitive.NewObjectID(), UserID: roster[0].ID, Date: "2025-03-10", Status: models.StatusPresent},
		{ID: primitive.NewObjectID(), UserID: roster[1].ID, Date: "2025-03-10", Status: models.StatusLate},
	}

	t.Run("CacheEqualsLiveDerivation", func(t *testing.T) {
		live := attendance.ReconcileRoster("2025-03-10", roster, records)

		raw, err := encodeSnapshot(&live)
		assert.NoError(t, err)

		cached := decodeSnapshot(raw)
		assert.NotNil(t, cached)
		assert.Equal(t, live, *cached)
	})

	t.Run("CorruptSnapshotFallsThrough", func(t *testing.T) {
		// payload เพี้ยนต้องคืน nil ให้ caller ไปคำนวณสดแทน
		assert.Nil(t, decodeSnapshot([]byte("{not-json")))
	})
}

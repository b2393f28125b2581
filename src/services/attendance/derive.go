package attendance

import (
	"errors"
	"time"

	"Backend-AttendEase-007/src/models"

	"github.com/shopspring/decimal"
)

// ErrInvalidDuration checkOut มาก่อน checkIn — เป็น data integrity fault ห้าม clamp เป็น 0
var ErrInvalidDuration = errors.New("check-out time is before check-in time")

const millisPerHour = 3_600_000

// ฟังก์ชันในไฟล์นี้เป็น pure function ทั้งหมด ทำงานกับ record ที่ fetch มาแล้วเท่านั้น
// ไม่อ่าน wall clock เอง — วันอ้างอิงต้องส่งเข้ามาเป็น parameter เสมอ

// StatusForDate หา record ของวันที่ระบุจาก record ของพนักงาน 1 คน
// คืน nil เมื่อไม่มี record (= absent ของวันนั้น)
// ถ้า store หลุด invariant แล้วมีซ้ำ จะเลือกตัวแรกตามลำดับที่ได้มา ไม่ error
func StatusForDate(records []models.AttendanceRecord, date string) *models.AttendanceRecord {
	for i := range records {
		if records[i].Date == date {
			return &records[i]
		}
	}
	return nil
}

// MonthlyStats นับ record ของเดือนที่ครอบ referenceDate แยกตาม status แล้วรวมชั่วโมง
// absent ที่นี่นับเฉพาะ record ที่ status=absent จริง ๆ ไม่ใช่ absent จาก roster
// half-day ไม่ถูกนับใน 3 ช่องแรก แต่ชั่วโมงยังรวม
func MonthlyStats(records []models.AttendanceRecord, referenceDate time.Time) models.MonthlyStats {
	start, end := MonthRange(referenceDate)

	var stats models.MonthlyStats
	for _, rec := range records {
		if rec.Date < start || rec.Date > end {
			continue
		}
		switch rec.Status {
		case models.StatusPresent:
			stats.Present++
		case models.StatusAbsent:
			stats.Absent++
		case models.StatusLate:
			stats.Late++
		}
		stats.TotalHours += rec.TotalHours
	}
	return stats
}

// MonthRange คืนวันแรกและวันสุดท้ายของเดือนที่ครอบ t ในรูป yyyy-MM-dd
func MonthRange(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(models.DateLayout), last.Format(models.DateLayout)
}

// CountByStatus นับ present/absent/late จาก record ขององค์กรทั้งหมดใน 1 วัน
// (building block ของ weekly trend — แต่ละวันนับแยกกัน ไม่มี state ข้ามวัน)
func CountByStatus(records []models.AttendanceRecord) (present, absent, late int) {
	for _, rec := range records {
		switch rec.Status {
		case models.StatusPresent:
			present++
		case models.StatusAbsent:
			absent++
		case models.StatusLate:
			late++
		}
	}
	return present, absent, late
}

// WorkedHours คำนวณชั่วโมงทำงานจากเวลาเข้า-ออก
// (checkOut - checkIn) เป็น ms หารด้วย 3,600,000 ปัดแบบ half-up เหลือทศนิยม 2 ตำแหน่ง
// ค่านี้ถูกเขียนครั้งเดียวตอน check-out แล้ว freeze — ไม่คำนวณซ้ำภายหลัง
func WorkedHours(checkIn, checkOut time.Time) (float64, error) {
	if checkOut.Before(checkIn) {
		return 0, ErrInvalidDuration
	}

	ms := checkOut.Sub(checkIn).Milliseconds()
	hours := decimal.NewFromInt(ms).
		Div(decimal.NewFromInt(millisPerHour)).
		Round(2)

	f, _ := hours.Float64()
	return f, nil
}

// ReconcileRoster คำนวณสรุปของ 1 วันจาก roster เต็ม + record ของวันนั้น
//
// absent เป็น implicit (ไม่มี record = ไม่มา) เลยต้องเทียบกับ roster เสมอ
// คำนวณจาก attendance อย่างเดียวไม่ได้:
//   - AbsentToday = totalEmployees - len(records) นับจาก "การมี record" ไม่ใช่ status
//     ดังนั้น record ที่ status=absent จะไม่ถูกนับซ้ำ
//   - AbsentEmployees = พนักงานใน roster ที่ id ไม่อยู่ใน userId ของวันนั้น (ตามลำดับ roster)
func ReconcileRoster(date string, roster []models.Employee, records []models.AttendanceRecord) models.DailySummary {
	present, _, late := CountByStatus(records)

	attended := make(map[string]struct{}, len(records))
	for _, rec := range records {
		attended[rec.UserID.Hex()] = struct{}{}
	}

	absentEmployees := []models.Employee{}
	for _, emp := range roster {
		if _, ok := attended[emp.ID.Hex()]; !ok {
			absentEmployees = append(absentEmployees, emp)
		}
	}

	return models.DailySummary{
		Date:            date,
		TotalEmployees:  len(roster),
		PresentToday:    present,
		LateToday:       late,
		AbsentToday:     len(roster) - len(records),
		AbsentEmployees: absentEmployees,
	}
}

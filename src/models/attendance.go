package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะการลงเวลา
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
)

// DateLayout รูปแบบวันที่ที่เก็บใน attendance.date (yyyy-MM-dd)
const DateLayout = "2006-01-02"

// TimeOfDayLayout รูปแบบเวลาในรายงาน เช่น 09:00 AM
const TimeOfDayLayout = "03:04 PM"

// AttendanceRecord การลงเวลาเข้า-ออกงานของพนักงาน 1 คนต่อ 1 วัน
// มี record ได้มากสุด 1 รายการต่อ (userId, date) — บังคับด้วย unique index
type AttendanceRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         string             `bson:"date" json:"date"` // yyyy-MM-dd
	CheckInTime  *time.Time         `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	Status       string             `bson:"status" json:"status"`
	TotalHours   float64            `bson:"totalHours" json:"totalHours"` // คำนวณตอน check-out แล้วไม่แก้อีก
}

// AttendanceWithEmployee record ที่ join ข้อมูลพนักงานมาด้วย (ใช้กับหน้า all-employees และ reports)
type AttendanceWithEmployee struct {
	AttendanceRecord `bson:",inline"`
	Employee         Employee `bson:"employee" json:"employee"`
}

// MonthlyStats สรุปรายเดือนของพนักงาน 1 คน นับจาก status ที่บันทึกไว้จริงเท่านั้น
// (absent ตรงนี้คือ record ที่ status=absent ไม่ใช่ absent ที่คำนวณจาก roster)
type MonthlyStats struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	TotalHours float64 `json:"totalHours"`
}

// DailyTrendPoint จำนวน present/absent/late ของทั้งองค์กรใน 1 วัน
type DailyTrendPoint struct {
	Day     string `json:"day"` // Mon, Tue, ...
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// DailySummary สรุปของ manager dashboard สำหรับ 1 วัน
// AbsentToday = totalEmployees - จำนวน record ของวันนั้น (นับจากการมี record ไม่ใช่ status)
type DailySummary struct {
	Date            string     `json:"date"`
	TotalEmployees  int        `json:"totalEmployees"`
	PresentToday    int        `json:"presentToday"`
	LateToday       int        `json:"lateToday"`
	AbsentToday     int        `json:"absentToday"`
	AbsentEmployees []Employee `json:"absentEmployees"`
}

// ReportRow แถวของรายงาน export — ลำดับ field ต้องตรงกับ header เสมอ
type ReportRow struct {
	Date         string  `json:"date"`
	EmployeeName string  `json:"employeeName"`
	EmployeeID   string  `json:"employeeId"`
	Department   string  `json:"department"`
	Status       string  `json:"status"`
	CheckIn      string  `json:"checkIn"`  // hh:mm AM หรือ "-"
	CheckOut     string  `json:"checkOut"` // hh:mm AM หรือ "-"
	TotalHours   float64 `json:"totalHours"`
}

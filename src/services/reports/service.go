package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/attendance"

	"github.com/xuri/excelize/v2"
)

// ErrNoData ช่วงวันที่ที่ขอไม่มี record เลย — ต้องรายงานเป็นผลลัพธ์แยก ไม่ใช่ไฟล์ว่าง
var ErrNoData = errors.New("no data found for the selected date range")

// ReportHeader ลำดับคอลัมน์นี้คือ wire-format ของไฟล์ export ห้ามสลับ
var ReportHeader = []string{
	"Date", "Employee Name", "Employee ID", "Department",
	"Status", "Check In", "Check Out", "Total Hours",
}

// ProjectRows แปลง record ที่ join โปรไฟล์แล้วเป็นแถวรายงาน ลำดับ field ตาม header
// เวลา format เป็น hh:mm AM และใส่ "-" เมื่อยังไม่มีค่า
func ProjectRows(joined []models.AttendanceWithEmployee) []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(joined))
	for _, rec := range joined {
		row := models.ReportRow{
			Date:         rec.Date,
			EmployeeName: rec.Employee.Name,
			EmployeeID:   rec.Employee.EmployeeID,
			Department:   rec.Employee.Department,
			Status:       rec.Status,
			CheckIn:      "-",
			CheckOut:     "-",
			TotalHours:   rec.TotalHours,
		}
		if rec.CheckInTime != nil {
			row.CheckIn = rec.CheckInTime.Format(models.TimeOfDayLayout)
		}
		if rec.CheckOutTime != nil {
			row.CheckOut = rec.CheckOutTime.Format(models.TimeOfDayLayout)
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildCSV สร้างไฟล์ CSV จากแถวรายงาน
// ใช้ encoding/csv เพื่อให้ field ที่มี comma ถูก quote ถูกต้อง
func BuildCSV(rows []models.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ReportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.EmployeeName,
			row.EmployeeID,
			row.Department,
			row.Status,
			row.CheckIn,
			row.CheckOut,
			strconv.FormatFloat(row.TotalHours, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildXLSX สร้างไฟล์ Excel จากแถวรายงาน คอลัมน์ชุดเดียวกับ CSV
func BuildXLSX(rows []models.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, name := range ReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date, row.EmployeeName, row.EmployeeID, row.Department,
			row.Status, row.CheckIn, row.CheckOut, row.TotalHours,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName ชื่อไฟล์รายงานตาม convention attendance_report_<start>_to_<end>
func FileName(start, end, ext string) string {
	return fmt.Sprintf("attendance_report_%s_to_%s.%s", start, end, ext)
}

// Export ดึง record ในช่วงวันที่ แล้ว build ไฟล์ตาม format ("csv" หรือ "xlsx")
// ช่วงที่ไม่มีข้อมูลเลยคืน ErrNoData — ไม่สร้างไฟล์
func Export(ctx context.Context, start, end, format string) (string, []byte, error) {
	joined, err := attendance.RecordsForRangeWithEmployee(ctx, start, end)
	if err != nil {
		return "", nil, err
	}
	if len(joined) == 0 {
		return "", nil, ErrNoData
	}

	rows := ProjectRows(joined)

	switch format {
	case "xlsx":
		data, err := BuildXLSX(rows)
		if err != nil {
			return "", nil, err
		}
		return FileName(start, end, "xlsx"), data, nil
	default:
		data, err := BuildCSV(rows)
		if err != nil {
			return "", nil, err
		}
		return FileName(start, end, "csv"), data, nil
	}
}

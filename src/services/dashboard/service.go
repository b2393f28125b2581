package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	DB "Backend-AttendEase-007/src/database"
	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/attendance"
	"Backend-AttendEase-007/src/services/employees"
	"Backend-AttendEase-007/src/utils"

	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyPrefix = "dashboard:summary:"
	summaryTTL       = 24 * time.Hour
)

// ManagerSummary สรุปของ manager dashboard สำหรับวันที่ระบุ
// ลอง snapshot ใน Redis ก่อน ถ้าไม่มี (หรือไม่มี Redis) ค่อยคำนวณสดจาก store
func ManagerSummary(ctx context.Context, date string) (*models.DailySummary, error) {
	if cached := readSnapshot(ctx, date); cached != nil {
		return cached, nil
	}

	summary, err := deriveSummary(ctx, date)
	if err != nil {
		return nil, err
	}

	writeSnapshot(ctx, date, summary)
	return summary, nil
}

// RefreshSnapshot คำนวณสรุปของวันใหม่แล้วทับ snapshot เดิม (เรียกจาก asynq worker)
func RefreshSnapshot(ctx context.Context, date string) error {
	summary, err := deriveSummary(ctx, date)
	if err != nil {
		return err
	}
	writeSnapshot(ctx, date, summary)
	return nil
}

// deriveSummary = roster เต็ม + record ของวัน → ReconcileRoster
// fetch ครั้งเดียวแล้ว derive ทุกค่า ไม่ยิง query แยกต่อ metric
func deriveSummary(ctx context.Context, date string) (*models.DailySummary, error) {
	roster, err := employees.Roster(ctx)
	if err != nil {
		return nil, err
	}

	records, err := attendance.RecordsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	summary := attendance.ReconcileRoster(date, roster, records)
	return &summary, nil
}

// WeeklyTrend นับ present/absent/late ของแต่ละวันใน n วันล่าสุด (รวมวันนี้)
func WeeklyTrend(ctx context.Context, referenceDate time.Time, n int) ([]models.DailyTrendPoint, error) {
	return TrendOverDays(referenceDate, n, func(date string) ([]models.AttendanceRecord, error) {
		return attendance.RecordsForDate(ctx, date)
	})
}

// TrendOverDays สร้าง trend ความยาวคงที่ n เรียงวันเก่าสุดก่อน
// แต่ละวันดึงผ่าน fetch แล้วนับแยกกัน ไม่มี state ข้ามวัน
func TrendOverDays(referenceDate time.Time, n int, fetch func(date string) ([]models.AttendanceRecord, error)) ([]models.DailyTrendPoint, error) {
	trend := make([]models.DailyTrendPoint, 0, n)

	for i := n - 1; i >= 0; i-- {
		day := referenceDate.AddDate(0, 0, -i)
		date := day.Format(models.DateLayout)

		records, err := fetch(date)
		if err != nil {
			return nil, err
		}

		present, absent, late := attendance.CountByStatus(records)
		trend = append(trend, models.DailyTrendPoint{
			Day:     day.Format("Mon"),
			Date:    date,
			Present: present,
			Absent:  absent,
			Late:    late,
		})
	}
	return trend, nil
}

// readSnapshot อ่าน snapshot จาก Redis — cache เป็น best effort เท่านั้น
func readSnapshot(ctx context.Context, date string) *models.DailySummary {
	client := DB.RedisClient
	if client == nil {
		return nil
	}

	raw, err := client.Get(ctx, summaryKeyPrefix+date).Result()
	if err != nil {
		if err != redis.Nil {
			utils.LogError("dashboard", "readSnapshot", err)
		}
		return nil
	}

	return decodeSnapshot([]byte(raw))
}

func writeSnapshot(ctx context.Context, date string, summary *models.DailySummary) {
	client := DB.RedisClient
	if client == nil {
		return
	}

	raw, err := encodeSnapshot(summary)
	if err != nil {
		return
	}
	if err := client.Set(ctx, summaryKeyPrefix+date, raw, summaryTTL).Err(); err != nil {
		utils.GetLogger().WithField("date", date).Warn(fmt.Sprintf("failed to write dashboard snapshot: %v", err))
	}
}

// encodeSnapshot / decodeSnapshot เป็น wire format ของ snapshot ใน Redis
// ค่าที่อ่านกลับมาต้องเท่ากับ DailySummary ที่คำนวณสดทุก field
func encodeSnapshot(summary *models.DailySummary) ([]byte, error) {
	return json.Marshal(summary)
}

func decodeSnapshot(raw []byte) *models.DailySummary {
	var summary models.DailySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

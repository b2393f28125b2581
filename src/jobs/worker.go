package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-AttendEase-007/src/database"
	"Backend-AttendEase-007/src/services/dashboard"

	"github.com/hibiken/asynq"
)

// HandleDashboardSnapshotTask คำนวณสรุปของวันใหม่แล้วเขียนทับ snapshot ใน Redis
// งานนี้ re-derive จาก store ล้วน ๆ — ล้มเหลวได้โดยไม่กระทบ action ของผู้ใช้
func HandleDashboardSnapshotTask(ctx context.Context, t *asynq.Task) error {
	var payload SnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := dashboard.RefreshSnapshot(ctx, payload.Date); err != nil {
		log.Println("❌ Failed to refresh dashboard snapshot:", err)
		return err
	}

	log.Println("✅ Dashboard snapshot refreshed:", payload.Date)
	return nil
}

// EnqueueDashboardSnapshot ยิง task refresh snapshot แบบ best effort
// ไม่มี asynq (ไม่มี Redis) ก็เงียบ ๆ ข้ามไป
func EnqueueDashboardSnapshot(date string) {
	if database.AsynqClient == nil {
		return
	}

	task, err := NewDashboardSnapshotTask(date)
	if err != nil {
		log.Println("⚠️ Failed to build snapshot task:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue snapshot task:", err)
	}
}

// RunWorker เริ่ม asynq worker — เรียกเป็น goroutine จาก main
func RunWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDashboardSnapshot, HandleDashboardSnapshotTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}

package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeDashboardSnapshot = "attendance:snapshot"

// SnapshotPayload วันที่ (yyyy-MM-dd) ที่ต้อง refresh dashboard snapshot
type SnapshotPayload struct {
	Date string `json:"date"`
}

func NewDashboardSnapshotTask(date string) (*asynq.Task, error) {
	payload, err := json.Marshal(SnapshotPayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDashboardSnapshot, payload), nil
}

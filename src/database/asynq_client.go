package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient ใช้ยิง task refresh dashboard snapshot — nil เมื่อไม่มี Redis
var AsynqClient *asynq.Client

// InitAsynq สร้าง Asynq client เฉพาะตอนที่เชื่อม Redis สำเร็จแล้วเท่านั้น
// ต้องเรียกหลัง InitRedis เสมอ
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq Client initialized successfully")
}

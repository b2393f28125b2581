package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis เชื่อมต่อ Redis — ถ้าเชื่อมไม่ได้ระบบยังทำงานต่อได้
// (refresh token กับ dashboard cache จะถูกข้ามไป)
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // เช่น localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Running without Redis.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err, "— running without Redis")
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}

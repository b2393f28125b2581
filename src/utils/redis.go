package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-AttendEase-007/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient คืน Redis client กลางจาก database package (nil ถ้าไม่ได้เปิด Redis)
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Set(Ctx, key, refreshToken, expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้ใน Redis หรือไม่
// Returns true if Redis is not available (development mode - skip validation)
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Token ไม่มีใน Redis
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token จาก Redis (ใช้ตอน logout)
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Del(Ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(Ctx, key, "1", expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

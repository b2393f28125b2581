package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-AttendEase-007/src/database"
	"Backend-AttendEase-007/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrAlreadyCheckedIn มี record ของ (userId, date) อยู่แล้ว
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	// ErrNotCheckedIn ยังไม่ได้ check-in — ห้าม auto-create record
	ErrNotCheckedIn = errors.New("no check-in record for today")
	// ErrAlreadyCheckedOut record นี้ check-out ไปแล้ว (terminal state)
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

// CheckIn สร้าง record ของวันนั้น สถานะ fix เป็น present ตอนสร้างเสมอ
// unique index (userId, date) ที่ store เป็นตัวกันซ้ำ — service แค่แปล error
func CheckIn(ctx context.Context, userID primitive.ObjectID, at time.Time) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	checkIn := at
	record := models.AttendanceRecord{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Date:        at.Format(models.DateLayout),
		CheckInTime: &checkIn,
		Status:      models.StatusPresent,
		TotalHours:  0,
	}

	_, err := DB.AttendanceCollection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return &record, nil
}

// CheckOut ปิด record ของวันนั้น: เพิ่ม checkOutTime + totalHours แล้วไม่แตะอีก
// ถ้าเวลา check-out ย้อนก่อน check-in ถือเป็น integrity fault (ErrInvalidDuration)
func CheckOut(ctx context.Context, userID primitive.ObjectID, at time.Time) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	date := at.Format(models.DateLayout)

	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotCheckedIn
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	if record.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}
	if record.CheckInTime == nil {
		return nil, ErrNotCheckedIn
	}

	hours, err := WorkedHours(*record.CheckInTime, at)
	if err != nil {
		return nil, err
	}

	checkOut := at
	_, err = DB.AttendanceCollection.UpdateOne(ctx,
		bson.M{"_id": record.ID},
		bson.M{"$set": bson.M{"checkOutTime": checkOut, "totalHours": hours}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	record.CheckOutTime = &checkOut
	record.TotalHours = hours
	return &record, nil
}

// TodayStatus ดึง record ของพนักงานในวันที่ระบุ — ไม่มี record คืน nil (= absent)
func TodayStatus(ctx context.Context, userID primitive.ObjectID, date string) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &record, nil
}

// MonthRecords ดึง record ของพนักงาน 1 คนในเดือนที่ครอบ referenceDate เรียงตามวันที่
// ใช้ทั้งหน้า history (calendar view) และเป็น dataset เดียวให้ MonthlyStats
func MonthRecords(ctx context.Context, userID primitive.ObjectID, referenceDate time.Time) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start, end := MonthRange(referenceDate)
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := DB.AttendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode month records: %w", err)
	}
	return records, nil
}

// RecentHistory ดึง record ล่าสุด n วันของพนักงาน เรียงวันที่ใหม่สุดก่อน
func RecentHistory(ctx context.Context, userID primitive.ObjectID, n int) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := DB.AttendanceCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent history: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode recent history: %w", err)
	}
	return records, nil
}

// RecordsForDate ดึง record ขององค์กรทั้งหมดใน 1 วัน (ไม่ join)
func RecordsForDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := DB.AttendanceCollection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for date: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records for date: %w", err)
	}
	return records, nil
}

// joinEmployeeStages pipeline stage สำหรับ join โปรไฟล์พนักงานเข้ากับ record
func joinEmployeeStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "employees",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "employee",
		}},
		{"$unwind": "$employee"},
	}
}

// RecordsForDateWithEmployee ดึง record ของ 1 วันพร้อมโปรไฟล์ เรียงเวลา check-in ล่าสุดก่อน
// (หน้า all-employees ของ manager)
func RecordsForDateWithEmployee(ctx context.Context, date string) ([]models.AttendanceWithEmployee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"date": date}},
	}
	pipeline = append(pipeline, joinEmployeeStages()...)
	pipeline = append(pipeline, bson.M{"$sort": bson.M{"checkInTime": -1}})

	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch joined records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceWithEmployee
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode joined records: %w", err)
	}
	return records, nil
}

// RecordsForRangeWithEmployee ดึง record ในช่วงวันที่ [start, end] พร้อมโปรไฟล์ เรียงตามวันที่
// (dataset ของรายงาน export)
func RecordsForRangeWithEmployee(ctx context.Context, start, end string) ([]models.AttendanceWithEmployee, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"date": bson.M{"$gte": start, "$lte": end}}},
	}
	pipeline = append(pipeline, joinEmployeeStages()...)
	pipeline = append(pipeline, bson.M{"$sort": bson.M{"date": 1}})

	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceWithEmployee
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode report records: %w", err)
	}
	return records, nil
}

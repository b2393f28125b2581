package employees

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
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateCode    = errors.New("employeeId already exists")
)

// Roster ดึงพนักงานทั้งหมดที่ role=employee เรียงตามรหัสพนักงาน
// ลำดับนี้คือ "roster order" ที่ absentEmployees ใน dashboard ต้องตาม
func Roster(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "employeeId", Value: 1}})
	cursor, err := DB.EmployeeCollection.Find(ctx, bson.M{"role": models.RoleEmployee}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	defer cursor.Close(ctx)

	var roster []models.Employee
	if err = cursor.All(ctx, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return roster, nil
}

// CreateEmployee เพิ่มพนักงานใหม่
func CreateEmployee(ctx context.Context, employee *models.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if employee.Role == "" {
		employee.Role = models.RoleEmployee
	}
	employee.ID = primitive.NewObjectID()

	_, err := DB.EmployeeCollection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// GetEmployees ดึงพนักงานแบบแบ่งหน้า ค้นหาจากชื่อ / รหัส / แผนก
func GetEmployees(ctx context.Context, params models.PaginationParams) ([]models.Employee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"employeeId": regex},
			{"department": regex},
		}
	}

	total, err := DB.EmployeeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.EmployeeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employeeList []models.Employee
	if err = cursor.All(ctx, &employeeList); err != nil {
		return nil, 0, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employeeList, total, nil
}

// GetEmployeeByID ดึงพนักงานตาม ID
func GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var employee models.Employee
	err := DB.EmployeeCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

// UpdateEmployee แก้ไขข้อมูลพนักงาน (name / department / role)
func UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       employee.Name,
		"department": employee.Department,
		"role":       employee.Role,
	}}

	result, err := DB.EmployeeCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployee ลบพนักงาน — attendance record เก่ายังอยู่ (engine ไม่ลบ record)
func DeleteEmployee(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := DB.EmployeeCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// บทบาทของผู้ใช้งาน
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// Employee โปรไฟล์พนักงาน — ID ตัวนี้คือค่าที่ attendance.userId อ้างถึง
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	EmployeeID string             `bson:"employeeId" json:"employeeId"` // รหัสพนักงาน เช่น EMP001
	Department string             `bson:"department" json:"department"`
	Role       string             `bson:"role" json:"role"` // employee | manager
}

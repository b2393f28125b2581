package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User บัญชีสำหรับ login
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // รับจาก frontend ได้ แต่ไม่ส่งกลับ
	Role     string             `bson:"role" json:"role"`
	RefID    primitive.ObjectID `bson:"refId" json:"refId"` // ชี้ไปที่ Employee
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-AttendEase-007/src/database"
	"Backend-AttendEase-007/src/models"
	"Backend-AttendEase-007/src/services/employees"
	"Backend-AttendEase-007/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

const refreshTokenTTL = 7 * 24 * time.Hour

// AuthTokens ผลลัพธ์ของการ login / refresh
type AuthTokens struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// RegisterUser สร้างโปรไฟล์พนักงาน + บัญชี login ในคราวเดียว
func RegisterUser(ctx context.Context, name, email, password, employeeID, department, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// กันอีเมลซ้ำก่อน (unique index ที่ users.email เป็นตัวกันจริง)
	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	employee := models.Employee{
		Name:       name,
		EmployeeID: employeeID,
		Department: department,
		Role:       role,
	}
	if err := employees.CreateEmployee(ctx, &employee); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Role:     role,
		RefID:    employee.ID,
	}
	result, err := database.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	user.Password = ""
	return &user, nil
}

// AuthenticateUser ตรวจ email/password แล้วออก access + refresh token
func AuthenticateUser(ctx context.Context, email, password string) (*AuthTokens, error) {
	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(dbUser.Password, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, dbUser.Role, dbUser.RefID.Hex())
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(dbUser.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return nil, err
	}

	dbUser.Password = ""
	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dbUser,
	}, nil
}

// RefreshTokens ออก access token ใหม่จาก refresh token เดิม (rotate refresh ด้วย)
func RefreshTokens(ctx context.Context, userID, refreshToken string) (*AuthTokens, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	var dbUser models.User
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbUser); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, dbUser.Role, dbUser.RefID.Hex())
	if err != nil {
		return nil, err
	}

	newRefresh := uuid.NewString()
	if err := utils.StoreRefreshToken(userID, newRefresh, refreshTokenTTL); err != nil {
		return nil, err
	}

	dbUser.Password = ""
	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		User:         dbUser,
	}, nil
}

// LogoutUser ลบ refresh token และ blacklist access token ที่เหลืออายุอยู่
func LogoutUser(userID, accessToken string) error {
	if err := utils.DeleteRefreshToken(userID); err != nil {
		return err
	}
	return utils.BlacklistToken(accessToken, 24*time.Hour)
}

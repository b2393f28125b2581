package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword เข้ารหัสรหัสผ่านก่อนเก็บลง MongoDB
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword เทียบรหัสผ่านกับ hash ที่เก็บไว้
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

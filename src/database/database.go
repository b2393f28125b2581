package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	UserCollection       *mongo.Collection
	EmployeeCollection   *mongo.Collection
	AttendanceCollection *mongo.Collection
)

// DatabaseName ชื่อ database หลักของระบบ
const DatabaseName = "AttendEaseDB"

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว แล้วเตรียม collection + index
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(DatabaseName, "users")
		EmployeeCollection = GetCollection(DatabaseName, "employees")
		AttendanceCollection = GetCollection(DatabaseName, "attendances")

		connectErr = ensureIndexes()
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// ensureIndexes สร้าง unique index ที่ระบบพึ่งพา
// attendances: 1 record ต่อ (userId, date) — กัน check-in ซ้ำในวันเดียวกัน
func ensureIndexes() error {
	_, err := AttendanceCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = EmployeeCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

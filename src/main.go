package main

import (
	_ "Backend-AttendEase-007/docs"
	"Backend-AttendEase-007/src/database"
	"Backend-AttendEase-007/src/jobs"
	"Backend-AttendEase-007/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq เป็น optional — ไม่มีแล้วระบบยังใช้งานได้
	database.InitRedis()
	database.InitAsynq()
	go jobs.RunWorker()

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get port from .env
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + port)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(port)))
	if err != nil {
		log.Fatal(err)
	}

}

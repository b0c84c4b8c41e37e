package main

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/handler"
	"hotel_manager/helper"
	"hotel_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // ✅ cho phép upload tối đa 100MB
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	if _, err := helper.LoadAppSettings(database.DB); err != nil {
		log.Fatalf("Lỗi load app settings: %v", err)
	}

	handler.InitRedis()

	helper.StartCheckoutScheduler()
	defer helper.StopCheckoutScheduler()
	helper.StartPromotionScheduler()

	go func() {
		ticker := time.NewTicker(1 * time.Minute) // Chạy mỗi 1 phút
		defer ticker.Stop()

		for {
			<-ticker.C
			handler.ExpireBookingHolds()
		}
	}()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}

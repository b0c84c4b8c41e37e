package database

import (
	"fmt"
	"strconv"

	"hotel_manager/config"
	"hotel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Staff{},
		&model.Customer{},
		&model.PasswordResetToken{},
		&model.Hotel{},
		&model.RoomType{},
		&model.Room{},
		&model.RoomPhoto{},
		&model.Booking{},
		&model.Promotion{},
		&model.PromotionUsage{},
		&model.MenuItem{},
		&model.RestoOrder{},
		&model.RestoOrderItem{},
		&model.ConferenceRoom{},
		&model.ConferenceBooking{},
		&model.AppSetting{},
	)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

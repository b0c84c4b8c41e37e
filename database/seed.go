package database

import (
	"log"

	"hotel_manager/constants"
	"hotel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456hm"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456hm"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, IsActive: true, Role: constants.RoleAdmin},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	roomTypes := []model.RoomType{
		{Name: "Standard", NightlyRate: 650000, MaxGuests: 2, Description: "Phòng tiêu chuẩn, giường đôi"},
		{Name: "Deluxe", NightlyRate: 950000, MaxGuests: 2, Description: "Phòng cao cấp, view thành phố"},
		{Name: "Family", NightlyRate: 1400000, MaxGuests: 4, Description: "Phòng gia đình, 2 giường đôi"},
		{Name: "Suite", NightlyRate: 2500000, MaxGuests: 3, Description: "Suite có phòng khách riêng"},
	}
	for _, rt := range roomTypes {
		if err := db.Where(model.RoomType{Name: rt.Name}).FirstOrCreate(&rt).Error; err != nil {
			log.Println("failed to seed room type:", rt.Name, "error:", err)
		}
	}

	settings := []model.AppSetting{
		{Key: model.SettingKeyBookingPolicy, Value: `{"checkoutCutoff":"09:30","paymentHoldMinutes":15,"maxNights":30}`},
		{Key: model.SettingKeyContactInfo, Value: `{"hotline":"1900 6868","email":"contact@hotelhub.vn","address":"12 Lý Thường Kiệt, Hà Nội"}`},
	}
	for _, s := range settings {
		if err := db.Where(model.AppSetting{Key: s.Key}).FirstOrCreate(&s).Error; err != nil {
			log.Println("failed to seed setting:", s.Key, "error:", err)
		}
	}
}
